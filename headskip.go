/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jscan

import (
	"bytes"

	"github.com/minio/jscan/automaton"
)

// headSkipEligible implements spec.md §4.4's head-skip eligibility rule:
// the automaton's initial state has exactly one outgoing label
// transition. Eligibility is intentionally scoped to exactly that shape
// (no broader heuristic); see DESIGN.md.
func headSkipEligible(auto *automaton.Automaton) (label []byte, target automaton.State, ok bool) {
	ts := auto.Transitions(auto.InitialState())
	if len(ts) != 1 {
		return nil, 0, false
	}
	return ts[0].Label, ts[0].Target, true
}

// computeQuoteMask runs the quote classifier once over the whole document
// and records, per document byte, whether it lies inside a string. Used
// only by head-skip to validate raw-buffer label candidates without
// re-deriving quote state from scratch at every candidate.
func computeQuoteMask(in *AlignedInput) []bool {
	docLen := in.Len()
	mask := make([]bool, docLen)
	q := NewQuoteClassifier(in)
	for {
		blk, ok := q.Next()
		if !ok {
			return mask
		}
		for i := range blk.Bytes {
			pos := blk.Base + i
			if pos >= docLen {
				return mask
			}
			mask[pos] = (blk.Mask>>uint(i))&1 != 0
		}
	}
}

// runHeadSkip implements spec.md §4.4's head-skip optimization: rather
// than walking every structural event from the document root, it scans
// the raw buffer directly for occurrences of the single eligible label
// followed (modulo whitespace) by a colon, validating each candidate
// against a precomputed quote mask so label text embedded inside an
// unrelated string value is never mistaken for a key.
//
// Grounded in spec.md §4.4's description of head-skip and in
// original_source's head-skipping discussion (classification/depth.rs's
// resumable-classifier pattern, reused here for the subtree walk that
// follows each validated candidate).
func runHeadSkip(in *AlignedInput, auto *automaton.Automaton, cfg config, result Result, label []byte, target automaton.State) error {
	buf := in.Bytes()
	docLen := in.Len()
	inside := computeQuoteMask(in)

	search := buf[:docLen]
	pos := 0
	for {
		rel := bytes.Index(search[pos:], label)
		if rel < 0 {
			return nil
		}
		idx := pos + rel
		pos = idx + 1

		if idx > 0 && inside[idx-1] {
			continue // label text sits inside an unrelated string value
		}

		colonIdx := idx + len(label)
		for colonIdx < docLen && isASCIIWhitespace(buf[colonIdx]) {
			colonIdx++
		}
		if colonIdx >= docLen || buf[colonIdx] != ':' {
			continue
		}

		valIdx := colonIdx + 1
		for valIdx < docLen && isASCIIWhitespace(buf[valIdx]) {
			valIdx++
		}
		if valIdx >= docLen {
			continue
		}

		if auto.IsAccepting(target) {
			result.report(colonIdx)
		}

		if b := buf[valIdx]; b == '{' || b == '[' {
			sub := newExecutor(in, auto, cfg, result, NewStructuralClassifier(NewQuoteClassifierAt(in, valIdx, false, false)), target)
			if err := sub.runOnSubtree(); err != nil {
				return err
			}
			if err := sub.verifySubtreeClosed(); err != nil {
				return err
			}
			// The subtree walk has already reported every match inside
			// this value; resume the raw scan after its closing bracket.
			closeIdx, err := sub.tailSkip(valIdx, bracketKindOf(b))
			if err != nil {
				return err
			}
			pos = closeIdx + 1
		}
	}
}

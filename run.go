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

// Package jscan implements a streaming, single-pass JSONPath scan over a
// byte buffer: a small chain of block classifiers (quotes, structural
// events, depth) feeding a stackless, DFA-driven executor, grounded in
// the classifier/engine split of _examples/minio-simdjson-go and in the
// design of original_source (the rsonpath project this package's
// semantics are distilled from). See SPEC_FULL.md and DESIGN.md.
package jscan

import "github.com/minio/jscan/automaton"

// runEmptyQuery implements spec.md §9's is_empty_query fast path for the
// trivial query "$": report the offset of the document's first
// non-whitespace byte, or nothing at all for an empty (or all-whitespace)
// document.
func runEmptyQuery(in *AlignedInput, result Result) error {
	buf := in.Bytes()
	docLen := in.Len()
	for i := 0; i < docLen; i++ {
		if !isASCIIWhitespace(buf[i]) {
			result.report(i)
			return nil
		}
	}
	return nil
}

// Run walks contents against auto, reporting every match into result.
// Options select which of spec.md §6's optimizations are active; all
// combinations must produce identical reported offsets (spec.md's P5).
func Run(contents []byte, auto *automaton.Automaton, result Result, opts ...Option) error {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	in := NewAlignedInput(contents)

	if auto.IsEmptyQuery() {
		return runEmptyQuery(in, result)
	}

	if cfg.headSkip {
		if label, target, ok := headSkipEligible(auto); ok {
			return runHeadSkip(in, auto, cfg, result, label, target)
		}
	}

	e := newExecutor(in, auto, cfg, result, NewStructuralClassifier(NewQuoteClassifier(in)), auto.InitialState())
	if err := e.runOnSubtree(); err != nil {
		return err
	}
	return e.verifySubtreeClosed()
}

// Count runs auto over contents and returns the number of matches.
func Count(contents []byte, auto *automaton.Automaton, opts ...Option) (uint64, error) {
	r := NewCountResult()
	if err := Run(contents, auto, r, opts...); err != nil {
		return 0, err
	}
	return r.Get(), nil
}

// Find runs auto over contents and returns every matched byte offset, in
// the order reported.
func Find(contents []byte, auto *automaton.Automaton, opts ...Option) ([]int, error) {
	r := NewIndexResult()
	if err := Run(contents, auto, r, opts...); err != nil {
		return nil, err
	}
	return r.Offsets(), nil
}

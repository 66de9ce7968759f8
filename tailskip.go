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

// tailSkip implements spec.md §4.4's tail-skip optimization: treating the
// byte after openIdx as lying at depth 1 inside a container of kind, skip
// forward to that container's close without visiting any structural event
// in between, resume the structural classifier right after the close, and
// return the close byte's offset. openIdx is either the container's own
// opening bracket, or (for the unitary fast exit) a colon or a child's
// closing bracket directly inside the container.
//
// Grounded in original_source/classification/depth.rs's doc-comment
// skipping loop: rent a depth classifier over the same bracket kind,
// advance current_depth and look for the position where it returns to
// zero.
func (e *Executor) tailSkip(openIdx int, kind BracketKind) (closeIdx int, err error) {
	q := NewQuoteClassifierAt(e.in, openIdx+1, false, false)
	dc := NewDepthClassifier(q, kind)

	currentDepth := 1
	for {
		blk, ok := dc.Next()
		if !ok {
			return 0, &MissingClosingCharacterError{}
		}
		blk.AddDepth(currentDepth)
		if blk.EstimateLowestPossibleDepth() <= 0 {
			for blk.AdvanceToNextDepthDecrease() {
				if blk.GetDepth() == 0 {
					closeIdx = blk.base + blk.cursor - 1
					e.sc = ResumeStructuralClassification(e.in, StructResumeState{
						pos:           closeIdx + 1,
						colonsEnabled: e.sc.colonsEnabled,
						commasEnabled: e.sc.commasEnabled,
					})
					return closeIdx, nil
				}
			}
		}
		currentDepth = blk.DepthAtEnd()
	}
}

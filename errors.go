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

import "fmt"

// maxDepth is the deepest nesting the executor will track; see spec.md §1
// Non-goals ("documents nesting deeper than 255").
const maxDepth = 255

// DepthAboveLimitError is returned when depth would exceed maxDepth.
type DepthAboveLimitError struct {
	Idx   int
	Cause string
}

func (e *DepthAboveLimitError) Error() string {
	return fmt.Sprintf("jscan: depth exceeds %d at offset %d: %s", maxDepth, e.Idx, e.Cause)
}

// DepthBelowZeroError is returned for an unmatched closing bracket.
type DepthBelowZeroError struct {
	Idx   int
	Cause string
}

func (e *DepthBelowZeroError) Error() string {
	return fmt.Sprintf("jscan: unmatched closing bracket at offset %d: %s", e.Idx, e.Cause)
}

// MalformedLabelQuotesError is returned when the byte before a colon
// (skipping ASCII whitespace) is not the closing quote of a member label,
// including when that backward scan reaches the start of the buffer.
type MalformedLabelQuotesError struct {
	Idx int
}

func (e *MalformedLabelQuotesError) Error() string {
	return fmt.Sprintf("jscan: malformed label quotes before offset %d", e.Idx)
}

// MissingClosingCharacterError is returned when input ends with depth > 0.
type MissingClosingCharacterError struct{}

func (e *MissingClosingCharacterError) Error() string {
	return "jscan: input ended with an unclosed container"
}

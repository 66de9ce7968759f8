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

import "testing"

// findCloseViaDepthClassifier mirrors tailskip.go's own driving loop, used
// here to test DepthClassifier directly without going through the
// executor.
func findCloseViaDepthClassifier(t *testing.T, in *AlignedInput, openIdx int, kind BracketKind) int {
	t.Helper()
	q := NewQuoteClassifierAt(in, openIdx+1, false, false)
	dc := NewDepthClassifier(q, kind)

	currentDepth := 1
	for {
		blk, ok := dc.Next()
		if !ok {
			t.Fatalf("depth classifier exhausted before returning to depth 0")
		}
		blk.AddDepth(currentDepth)
		if blk.EstimateLowestPossibleDepth() <= 0 {
			for blk.AdvanceToNextDepthDecrease() {
				if blk.GetDepth() == 0 {
					return blk.base + blk.cursor - 1
				}
			}
		}
		currentDepth = blk.DepthAtEnd()
	}
}

func TestDepthClassifierFindsMatchingClose(t *testing.T) {
	doc := `{"a":[1,2,{"b":3}],"c":4}`
	in := NewAlignedInput([]byte(doc))

	// the outer object opens at 0, the array at 5.
	arrayOpenIdx := 5
	if doc[arrayOpenIdx] != '[' {
		t.Fatalf("test fixture bug: byte %d is %q, want '['", arrayOpenIdx, doc[arrayOpenIdx])
	}
	closeIdx := findCloseViaDepthClassifier(t, in, arrayOpenIdx, Square)
	if doc[closeIdx] != ']' || closeIdx != 17 {
		t.Fatalf("got close at %d (%q), want 17 (']')", closeIdx, doc[closeIdx])
	}
}

func TestDepthClassifierIgnoresBracketsInStrings(t *testing.T) {
	doc := `{"a":"[[[","b":1}`
	in := NewAlignedInput([]byte(doc))
	closeIdx := findCloseViaDepthClassifier(t, in, 0, Curly)
	if doc[closeIdx] != '}' {
		t.Fatalf("got close byte %q at %d, want '}'", doc[closeIdx], closeIdx)
	}
	if closeIdx != len(doc)-1 {
		t.Fatalf("got close at %d, want %d", closeIdx, len(doc)-1)
	}
}

func TestDepthClassifierSpansBlockBoundary(t *testing.T) {
	inner := make([]byte, 0, 200)
	inner = append(inner, '{')
	for i := 0; i < 100; i++ {
		inner = append(inner, '"', 'x', '"', ':', '1', ',')
	}
	inner = append(inner, '"', 'y', '"', ':', '2', '}')
	doc := string(inner)
	in := NewAlignedInput([]byte(doc))

	closeIdx := findCloseViaDepthClassifier(t, in, 0, Curly)
	if closeIdx != len(doc)-1 {
		t.Fatalf("got close at %d, want %d (last byte)", closeIdx, len(doc)-1)
	}
}

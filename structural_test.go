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

func collectEvents(doc string) []Structural {
	in := NewAlignedInput([]byte(doc))
	sc := NewStructuralClassifier(NewQuoteClassifier(in))
	var out []Structural
	for {
		ev, ok := sc.Next()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestStructuralClassifierBasic(t *testing.T) {
	doc := `{"a":1,"b":[2,3]}`
	events := collectEvents(doc)

	var tags []EventKind
	for _, ev := range events {
		tags = append(tags, ev.Tag)
	}

	want := []EventKind{
		EventOpening, // {
		EventColon,   // "a":
		EventComma,   // ,
		EventColon,   // "b":
		EventOpening, // [
		EventComma,   // ,
		EventClosing, // ]
		EventClosing, // }
	}
	if len(tags) != len(want) {
		t.Fatalf("got %d events %v, want %d events %v", len(tags), tags, len(want), want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("event %d: got %v want %v", i, tags[i], want[i])
		}
	}
}

func TestStructuralClassifierIgnoresStringContent(t *testing.T) {
	doc := `{"a":"{}[],:"}`
	events := collectEvents(doc)
	var tags []EventKind
	for _, ev := range events {
		tags = append(tags, ev.Tag)
	}
	want := []EventKind{EventOpening, EventColon, EventClosing}
	if len(tags) != len(want) {
		t.Fatalf("got %d events %v, want %d events %v", len(tags), tags, len(want), want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("event %d: got %v want %v", i, tags[i], want[i])
		}
	}
}

func TestStructuralClassifierColonsDisabled(t *testing.T) {
	doc := `{"a":1,"b":2}`
	in := NewAlignedInput([]byte(doc))
	sc := NewStructuralClassifier(NewQuoteClassifier(in))
	sc.TurnColonsOff()

	var tags []EventKind
	for {
		ev, ok := sc.Next()
		if !ok {
			break
		}
		tags = append(tags, ev.Tag)
	}
	for _, tag := range tags {
		if tag == EventColon {
			t.Fatalf("colon event emitted despite TurnColonsOff, events: %v", tags)
		}
	}
}

// TestResumeStructuralClassification exercises ResumeStructuralClassification
// the way tailskip.go actually uses it: resuming at a known, explicit byte
// offset (never via Stop() mid-block; see its doc comment).
func TestResumeStructuralClassification(t *testing.T) {
	doc := `{"a":1,"b":[2,3]}`
	resumeAt := 11 // the '[' opening "b"'s array value

	st := StructResumeState{pos: resumeAt, colonsEnabled: true, commasEnabled: true}
	resumed := ResumeStructuralClassification(NewAlignedInput([]byte(doc)), st)

	var tags []EventKind
	for {
		ev, ok := resumed.Next()
		if !ok {
			break
		}
		tags = append(tags, ev.Tag)
	}
	want := []EventKind{EventOpening, EventComma, EventClosing, EventClosing}
	if len(tags) != len(want) {
		t.Fatalf("got %d events %v, want %d events %v", len(tags), tags, len(want), want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("event %d: got %v want %v", i, tags[i], want[i])
		}
	}
}

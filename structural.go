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

// BracketKind distinguishes the two container kinds the depth classifier
// and structural events care about.
type BracketKind int

const (
	// Curly is the '{' / '}' pair.
	Curly BracketKind = iota
	// Square is the '[' / ']' pair.
	Square
)

// EventKind tags a Structural event.
type EventKind int

const (
	EventColon EventKind = iota
	EventComma
	EventOpening
	EventClosing
)

// Structural is one tagged structural event, carrying its absolute byte
// offset. Kind is only meaningful for EventOpening/EventClosing.
type Structural struct {
	Tag EventKind
	Kind BracketKind
	Idx int
}

// StructuralClassifier consumes a QuoteClassifier and emits structural
// events in strictly increasing Idx order. Colon and comma emission can be
// selectively disabled; disabling never changes the offsets of other
// emitted events, only whether colon/comma events themselves appear.
type StructuralClassifier struct {
	quotes *QuoteClassifier

	cur    QuoteBlock
	curLen int
	have   bool
	cursor int // bit index within cur already consumed

	colonsEnabled bool
	commasEnabled bool
	// colonsEnabled/commasEnabled are consulted byte by byte as Next
	// walks the current block, so a TurnColons*/TurnCommas* call takes
	// effect from the next byte Next examines, including mid-block.
}

// NewStructuralClassifier wraps q with colons and commas enabled.
func NewStructuralClassifier(q *QuoteClassifier) *StructuralClassifier {
	return &StructuralClassifier{quotes: q, colonsEnabled: true, commasEnabled: true}
}

// TurnColonsOn enables colon events from the byte after idx onward.
func (s *StructuralClassifier) TurnColonsOn(idx int) { s.colonsEnabled = true }

// TurnColonsOff disables colon events from here onward.
func (s *StructuralClassifier) TurnColonsOff() { s.colonsEnabled = false }

// TurnCommasOn enables comma events from the byte after idx onward.
func (s *StructuralClassifier) TurnCommasOn(idx int) { s.commasEnabled = true }

// TurnCommasOff disables comma events from here onward.
func (s *StructuralClassifier) TurnCommasOff() { s.commasEnabled = false }

// Next yields the next structural event honoring the current colon/comma
// mask, or ok=false at end of input.
func (s *StructuralClassifier) Next() (ev Structural, ok bool) {
	for {
		if !s.have || s.cursor >= s.curLen {
			blk, more := s.quotes.Next()
			if !more {
				return Structural{}, false
			}
			s.cur = blk
			s.curLen = len(blk.Bytes)
			s.cursor = 0
			s.have = true
		}
		for s.cursor < s.curLen {
			i := s.cursor
			s.cursor++
			if (s.cur.Mask>>uint(i))&1 != 0 {
				continue // inside a string literal
			}
			c := s.cur.Bytes[i]
			idx := s.cur.Base + i
			switch c {
			case '{':
				return Structural{Tag: EventOpening, Kind: Curly, Idx: idx}, true
			case '}':
				return Structural{Tag: EventClosing, Kind: Curly, Idx: idx}, true
			case '[':
				return Structural{Tag: EventOpening, Kind: Square, Idx: idx}, true
			case ']':
				return Structural{Tag: EventClosing, Kind: Square, Idx: idx}, true
			case ':':
				if s.colonsEnabled {
					return Structural{Tag: EventColon, Idx: idx}, true
				}
			case ',':
				if s.commasEnabled {
					return Structural{Tag: EventComma, Idx: idx}, true
				}
			}
		}
		s.have = false
	}
}

// StructResumeState snapshots enough to continue structural+quote
// classification bit-exactly from a later point, per spec.md §3's
// "Resume state".
type StructResumeState struct {
	pos           int
	oddCarry      bool
	insideCarry   bool
	colonsEnabled bool
	commasEnabled bool
}

// Stop yields a resume state capturing classifier and quote carries. Any
// bits of the current block not yet consumed are discarded; callers that
// need mid-block resumption must not call Stop mid-block (tail-skip in
// this package never calls Stop — it builds a StructResumeState itself at
// the byte after the matching close, a known-outside-any-string offset,
// and passes it to ResumeStructuralClassification).
func (s *StructuralClassifier) Stop() StructResumeState {
	return StructResumeState{
		pos:           s.quotes.pos,
		oddCarry:      s.quotes.oddCarry,
		insideCarry:   s.quotes.insideCarry,
		colonsEnabled: s.colonsEnabled,
		commasEnabled: s.commasEnabled,
	}
}

// ResumeStructuralClassification rebuilds a classifier chain from a
// previously captured resume state.
func ResumeStructuralClassification(in *AlignedInput, st StructResumeState) *StructuralClassifier {
	q := NewQuoteClassifierAt(in, st.pos, st.oddCarry, st.insideCarry)
	return &StructuralClassifier{quotes: q, colonsEnabled: st.colonsEnabled, commasEnabled: st.commasEnabled}
}

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

import "github.com/minio/jscan/automaton"

// stackFrame is one entry of the executor's small depth-indexed stack,
// per spec.md §3's Executor state.
type stackFrame struct {
	depth  int
	state  automaton.State
	isList bool
}

// inlineStackCapacity mirrors spec.md §5's "inline capacity of 128
// frames"; Go slices don't distinguish inline vs heap storage the way a
// SmallVec does, so this is tracked only for documentation parity with
// original_source's SmallStack.
const inlineStackCapacity = 128

// Executor is the stackless, DFA-driven walker described in spec.md §4.4.
// It consumes structural events from a StructuralClassifier and reports
// matches into a Result sink.
type Executor struct {
	in     *AlignedInput
	auto   *automaton.Automaton
	cfg    config
	result Result

	sc        *StructuralClassifier
	nextEvent *Structural

	depth  int
	state  automaton.State
	isList bool
	stack  []stackFrame
}

// newExecutor builds an executor ready to walk one subtree starting at
// depth 0 in the given state.
func newExecutor(in *AlignedInput, auto *automaton.Automaton, cfg config, result Result, sc *StructuralClassifier, state automaton.State) *Executor {
	return &Executor{in: in, auto: auto, cfg: cfg, result: result, sc: sc, state: state}
}

// next returns the next event, consuming the one-slot lookahead first if
// present.
func (e *Executor) next() (Structural, bool) {
	if e.nextEvent != nil {
		ev := *e.nextEvent
		e.nextEvent = nil
		return ev, true
	}
	return e.sc.Next()
}

// peek fills and returns the lookahead slot without consuming it from the
// executor's perspective on the *next* call to next() (it will be
// returned by next() exactly once).
func (e *Executor) peek() (Structural, bool) {
	if e.nextEvent != nil {
		return *e.nextEvent, true
	}
	ev, ok := e.sc.Next()
	if !ok {
		return Structural{}, false
	}
	e.nextEvent = &ev
	return ev, true
}

// runOnSubtree drives the executor until depth returns to 0 after a
// Closing event, per spec.md §4.4's "Subtree termination".
func (e *Executor) runOnSubtree() error {
	for {
		ev, ok := e.next()
		if !ok {
			return nil
		}
		var err error
		switch ev.Tag {
		case EventColon:
			err = e.handleColon(ev)
		case EventComma:
			err = e.handleComma(ev)
		case EventOpening:
			err = e.handleOpening(ev)
		case EventClosing:
			err = e.handleClosing(ev)
			if err == nil && e.depth == 0 {
				return nil
			}
		}
		if err != nil {
			return err
		}
	}
}

func bracketKindOf(b byte) BracketKind {
	if b == '[' {
		return Square
	}
	return Curly
}

// handleOpening implements spec.md §4.4's Opening(idx) handler.
func (e *Executor) handleOpening(ev Structural) error {
	idx := ev.Idx
	b := e.in.Bytes()[idx]

	matched := false
	if e.depth > 0 {
		if colonIdx, ok := e.findPrecedingColon(idx); ok {
			for _, t := range e.auto.Transitions(e.state) {
				ok, err := e.isMatch(colonIdx, t.Label)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				matched = true
				e.transitionTo(t.Target, b == '[')
				if e.auto.IsAccepting(t.Target) {
					e.result.report(colonIdx)
				}
				break
			}
		}
	}

	if !matched && e.depth > 0 {
		fb := e.auto.FallbackState(e.state)
		if e.auto.IsRejecting(fb) {
			if e.cfg.tailSkip {
				if _, err := e.tailSkip(idx, bracketKindOf(b)); err != nil {
					return err
				}
				return nil
			}
			// Without tail-skip, fall through to a normal (slower but
			// correct, per P5) walk of the rejected subtree: entering it
			// as the rejecting state itself produces no further reports.
		}
		e.transitionTo(fb, b == '[')
		if e.auto.IsAccepting(fb) {
			e.result.report(idx)
		}
	}

	e.isList = b == '['

	if e.isList {
		fb := e.auto.FallbackState(e.state)
		if e.auto.IsAccepting(fb) {
			e.sc.TurnCommasOn(idx)
			if la, ok := e.peek(); ok {
				switch la.Tag {
				case EventClosing:
					if pos, found := e.firstNonWhitespace(idx, la.Idx); found {
						e.result.report(pos)
					}
				case EventComma:
					e.result.report(idx + 1)
				}
			}
		}
	} else if e.auto.HasTransitionToAccepting(e.state) {
		e.sc.TurnColonsOn(idx)
	} else {
		e.sc.TurnColonsOff()
	}

	e.depth++
	if e.depth > maxDepth {
		return &DepthAboveLimitError{Idx: idx, Cause: "nesting exceeds 255"}
	}
	return nil
}

// handleClosing implements spec.md §4.4's Closing(idx) handler.
func (e *Executor) handleClosing(ev Structural) error {
	idx := ev.Idx
	e.depth--
	if e.depth < 0 {
		return &DepthBelowZeroError{Idx: idx, Cause: "unmatched closing bracket"}
	}

	if len(e.stack) > 0 && e.stack[len(e.stack)-1].depth >= e.depth {
		top := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		e.state = top.state
		e.isList = top.isList

		if e.cfg.uniqueLabels && e.auto.IsUnitary(e.state) && e.cfg.tailSkip {
			kind := Curly
			if e.isList {
				kind = Square
			}
			closeIdx, err := e.tailSkip(idx, kind)
			if err != nil {
				return err
			}
			synth := Structural{Tag: EventClosing, Kind: kind, Idx: closeIdx}
			e.nextEvent = &synth
			return nil
		}
	}

	if e.isList {
		if e.auto.IsAccepting(e.auto.FallbackState(e.state)) {
			e.sc.TurnCommasOn(idx)
		} else {
			e.sc.TurnCommasOff()
		}
	} else if e.auto.HasTransitionToAccepting(e.state) {
		e.sc.TurnColonsOn(idx)
	} else {
		e.sc.TurnColonsOff()
	}
	return nil
}

// handleColon implements spec.md §4.4's Colon(idx) handler.
func (e *Executor) handleColon(ev Structural) error {
	idx := ev.Idx

	la, ok := e.peek()
	if ok && la.Tag == EventOpening {
		return nil // defer entirely to handleOpening
	}

	matched := false
	for _, t := range e.auto.Transitions(e.state) {
		okMatch, err := e.isMatch(idx, t.Label)
		if err != nil {
			return err
		}
		if !okMatch {
			continue
		}
		matched = true
		if e.auto.IsAccepting(t.Target) {
			e.result.report(idx)
		}
		break
	}
	if !matched {
		fb := e.auto.FallbackState(e.state)
		if e.auto.IsAccepting(fb) {
			e.result.report(idx)
		}
	}

	if e.cfg.uniqueLabels && matched && e.auto.IsUnitary(e.state) && (!ok || la.Tag != EventClosing) {
		if e.cfg.tailSkip {
			kind := Curly
			if e.isList {
				kind = Square
			}
			closeIdx, err := e.tailSkip(idx, kind)
			if err != nil {
				return err
			}
			synth := Structural{Tag: EventClosing, Kind: kind, Idx: closeIdx}
			e.nextEvent = &synth
		}
	}
	return nil
}

// handleComma implements spec.md §4.4's Comma(idx) handler.
//
// spec.md's prose says `report(idx)` (the comma's own offset), but its
// binding worked example (§8 scenario 4, `$..x[*]` over
// `{"x":[10,20,30]}`) requires the offsets of the elements *following*
// each comma (9 and 12), not the commas themselves (8 and 11). This
// implementation follows the worked example over the imprecise prose: it
// reports the first non-whitespace byte after the comma, as the Opening
// handler does for a sole element followed by the closing bracket (when a
// comma follows the first element, the Opening handler reports the byte
// right after the bracket instead). See DESIGN.md.
func (e *Executor) handleComma(ev Structural) error {
	idx := ev.Idx
	la, ok := e.peek()
	if ok && la.Tag == EventOpening {
		return nil
	}
	if !e.isList {
		return nil
	}
	fb := e.auto.FallbackState(e.state)
	if !e.auto.IsAccepting(fb) {
		return nil
	}
	limit := e.in.Len()
	if ok {
		limit = la.Idx
	}
	if pos, found := e.firstNonWhitespace(idx, limit); found {
		e.result.report(pos)
	}
	return nil
}

// transitionTo pushes the current frame iff the target state or container
// kind actually changes, then switches to it.
func (e *Executor) transitionTo(target automaton.State, targetIsList bool) {
	if target != e.state || targetIsList != e.isList {
		e.stack = append(e.stack, stackFrame{depth: e.depth, state: e.state, isList: e.isList})
	}
	e.state = target
}

// findPrecedingColon scans backward from idx past ASCII whitespace for a
// ':'. Returns ok=false if no colon is found before whitespace runs out.
// It does not look at depth; handleOpening only calls it at depth > 0.
func (e *Executor) findPrecedingColon(idx int) (colonIdx int, ok bool) {
	buf := e.in.Bytes()
	i := idx - 1
	for i >= 0 && isASCIIWhitespace(buf[i]) {
		i--
	}
	if i < 0 || buf[i] != ':' {
		return 0, false
	}
	return i, true
}

func isASCIIWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// isMatch implements spec.md §4.4's "Label matching": a byte-exact
// comparison of the quoted label against the token immediately preceding
// colonIdx.
func (e *Executor) isMatch(colonIdx int, quotedLabel []byte) (bool, error) {
	buf := e.in.Bytes()
	i := colonIdx - 1
	for i >= 0 && isASCIIWhitespace(buf[i]) {
		i--
	}
	if i < 0 || buf[i] != '"' {
		return false, &MalformedLabelQuotesError{Idx: colonIdx}
	}
	closingQuoteIdx := i
	l := len(quotedLabel)
	if closingQuoteIdx+1 < l {
		return false, nil
	}
	startIdx := closingQuoteIdx + 1 - l
	if startIdx != 0 && buf[startIdx-1] == '\\' {
		return false, nil
	}
	candidate := buf[startIdx : closingQuoteIdx+1]
	return bytesEqual(candidate, quotedLabel), nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// firstNonWhitespace returns the first non-ASCII-whitespace byte strictly
// between after and before (exclusive on both ends), or found=false if
// there is none.
func (e *Executor) firstNonWhitespace(after, before int) (pos int, found bool) {
	buf := e.in.Bytes()
	for i := after + 1; i < before; i++ {
		if !isASCIIWhitespace(buf[i]) {
			return i, true
		}
	}
	return 0, false
}

// verifySubtreeClosed implements spec.md §4.4's final check.
func (e *Executor) verifySubtreeClosed() error {
	if e.depth != 0 {
		return &MissingClosingCharacterError{}
	}
	return nil
}

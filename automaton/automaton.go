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

// Package automaton is the external contract the executor consumes
// (spec.md §4.5): an immutable DFA over member labels, plus the small
// reference compiler that turns a minimal JSONPath subset into one.
// Query parsing/compilation is explicitly out of the executor's scope;
// this package exists so there is a real producer the executor and its
// tests can exercise, grounded in original_source's EBNF grammar (lib.rs)
// and the MainEngine/Automaton shape (engine/main.rs).
package automaton

// State identifies a node of the compiled automaton.
type State int

// Transition pairs a JSON-encoded (quoted) label with the state reached
// when that label matches.
type Transition struct {
	// Label is the label's bytes *with* surrounding double quotes, e.g.
	// `"x"` for a query segment matching key x. Matching is byte-exact
	// per spec.md §4.4 ("Label matching"); callers must quote-encode any
	// label containing characters needing JSON escaping.
	Label  []byte
	Target State
}

// stateRecord is the compiled, immutable description of one state.
type stateRecord struct {
	transitions []Transition
	fallback    State
	accepting   bool
	rejecting   bool
	unitary     bool
}

// Automaton is the immutable, compiled DFA the executor walks. States are
// numbered 0..N, N<256 per spec.md §1's Non-goal on automaton size.
type Automaton struct {
	states       []stateRecord
	initial      State
	isEmptyQuery bool
}

// InitialState returns the automaton's distinguished start state.
func (a *Automaton) InitialState() State { return a.initial }

// IsEmptyQuery reports whether this automaton represents the trivial
// query "$" with no further selectors, letting callers take the
// is_empty_query() fast path from spec.md §5/§9.
func (a *Automaton) IsEmptyQuery() bool { return a.isEmptyQuery }

// Transitions returns the state's outgoing labeled transitions.
func (a *Automaton) Transitions(s State) []Transition { return a.states[s].transitions }

// FallbackState returns the state reached when no transition matches.
func (a *Automaton) FallbackState(s State) State { return a.states[s].fallback }

// IsAccepting reports whether s is a member of the accepting set.
func (a *Automaton) IsAccepting(s State) bool { return a.states[s].accepting }

// IsRejecting reports whether s is a dead, absorbing, non-accepting sink.
func (a *Automaton) IsRejecting(s State) bool { return a.states[s].rejecting }

// IsUnitary reports whether every transition and the fallback of s lead
// to a single accepting sink with no further progress, i.e. once entered,
// nothing further scanned within the current container can change the
// result. Per spec.md §9/"Unitary state", this is a property the compiler
// establishes at construction time; it is not recomputed generically here
// (see DESIGN.md).
func (a *Automaton) IsUnitary(s State) bool { return a.states[s].unitary }

// HasTransitionToAccepting reports whether s has at least one outgoing
// transition whose target is not rejecting. This is the conservative
// definition spec.md §4.4 needs to decide whether to keep colons enabled
// while inside s: it never suppresses a colon that might still be needed,
// at the cost of occasionally leaving colons on when a precise reachability
// analysis would have turned them off. Either choice is correctness
// preserving (P5 only binds the *reported offsets*, not which classifier
// events fire internally), so a conservative approximation is sufficient
// and keeps the executor independent of any particular compiler's
// internal reachability bookkeeping.
func (a *Automaton) HasTransitionToAccepting(s State) bool {
	for _, t := range a.states[s].transitions {
		if !a.states[t.Target].rejecting {
			return true
		}
	}
	return false
}

// NumStates returns the number of compiled states.
func (a *Automaton) NumStates() int { return len(a.states) }

// Builder incrementally assembles an Automaton. States are added in
// order; transitions may only target already-added states or states added
// later by first reserving them with Reserve.
type Builder struct {
	states []stateRecord
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Reserve allocates a new state and returns its id, deferring its
// definition to a later call to Define. Useful for forward references in
// chain construction (a state's fallback often needs to name a state not
// yet fully built).
func (b *Builder) Reserve() State {
	b.states = append(b.states, stateRecord{})
	return State(len(b.states) - 1)
}

// Define fills in a previously reserved state (or defines a brand new one
// if s == Reserve()'s return value, which is the common case).
func (b *Builder) Define(s State, transitions []Transition, fallback State, accepting, rejecting, unitary bool) {
	b.states[s] = stateRecord{
		transitions: transitions,
		fallback:    fallback,
		accepting:   accepting,
		rejecting:   rejecting,
		unitary:     unitary,
	}
}

// AddState reserves and defines a state in one call, returning its id.
func (b *Builder) AddState(transitions []Transition, fallback State, accepting, rejecting, unitary bool) State {
	s := b.Reserve()
	b.Define(s, transitions, fallback, accepting, rejecting, unitary)
	return s
}

// Build finalizes the automaton with the given initial state.
func (b *Builder) Build(initial State, isEmptyQuery bool) (*Automaton, error) {
	if len(b.states) > 256 {
		return nil, &TooManyStatesError{NumStates: len(b.states)}
	}
	return &Automaton{states: b.states, initial: initial, isEmptyQuery: isEmptyQuery}, nil
}

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

package automaton

import "testing"

func TestBuilderAddStateAndTransitions(t *testing.T) {
	b := NewBuilder()
	s1 := b.AddState(nil, 0, true, false, false)
	s0 := b.AddState([]Transition{{Label: []byte(`"a"`), Target: s1}}, s1, false, false, false)

	a, err := b.Build(s0, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if a.InitialState() != s0 {
		t.Errorf("InitialState() = %v, want %v", a.InitialState(), s0)
	}
	ts := a.Transitions(s0)
	if len(ts) != 1 || string(ts[0].Label) != `"a"` || ts[0].Target != s1 {
		t.Errorf("Transitions(s0) = %+v, unexpected", ts)
	}
	if !a.IsAccepting(s1) {
		t.Errorf("IsAccepting(s1) = false, want true")
	}
	if a.IsAccepting(s0) {
		t.Errorf("IsAccepting(s0) = true, want false")
	}
	if a.FallbackState(s0) != s1 {
		t.Errorf("FallbackState(s0) = %v, want %v", a.FallbackState(s0), s1)
	}
}

func TestBuilderTooManyStates(t *testing.T) {
	b := NewBuilder()
	for i := 0; i < 257; i++ {
		b.AddState(nil, 0, false, false, false)
	}
	_, err := b.Build(0, false)
	if err == nil {
		t.Fatalf("Build with 257 states: got nil error, want TooManyStatesError")
	}
	if _, ok := err.(*TooManyStatesError); !ok {
		t.Errorf("Build error type = %T, want *TooManyStatesError", err)
	}
}

func TestHasTransitionToAccepting(t *testing.T) {
	b := NewBuilder()
	reject := b.AddState(nil, 0, false, true, false)
	b.states[reject].fallback = reject

	target := b.AddState(nil, 0, true, false, false)
	withTransition := b.AddState([]Transition{{Label: []byte(`"a"`), Target: target}}, reject, false, false, false)
	withOnlyRejectingTransition := b.AddState([]Transition{{Label: []byte(`"a"`), Target: reject}}, reject, false, false, false)

	a, err := b.Build(withTransition, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !a.HasTransitionToAccepting(withTransition) {
		t.Errorf("HasTransitionToAccepting(withTransition) = false, want true")
	}
	if a.HasTransitionToAccepting(withOnlyRejectingTransition) {
		t.Errorf("HasTransitionToAccepting(withOnlyRejectingTransition) = true, want false")
	}
}

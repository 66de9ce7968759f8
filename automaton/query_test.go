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

func TestCompileEmptyQuery(t *testing.T) {
	a, err := Compile("$")
	if err != nil {
		t.Fatalf("Compile(%q): %v", "$", err)
	}
	if !a.IsEmptyQuery() {
		t.Errorf("IsEmptyQuery() = false, want true")
	}
}

func TestCompileSingleDescendantLabel(t *testing.T) {
	a, err := Compile("$..a")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if a.IsEmptyQuery() {
		t.Fatalf("IsEmptyQuery() = true, want false")
	}
	init := a.InitialState()
	ts := a.Transitions(init)
	if len(ts) != 1 || string(ts[0].Label) != `"a"` {
		t.Fatalf("Transitions(initial) = %+v, want single transition on \"a\"", ts)
	}
	if !a.IsAccepting(ts[0].Target) {
		t.Errorf("target state not accepting")
	}
	if a.FallbackState(ts[0].Target) != init {
		t.Errorf("final state fallback = %v, want initial state %v (prevents spurious re-acceptance)", a.FallbackState(ts[0].Target), init)
	}
}

func TestCompileDescendantChain(t *testing.T) {
	a, err := Compile("$..a..b")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	init := a.InitialState()
	ts := a.Transitions(init)
	if len(ts) != 1 || string(ts[0].Label) != `"a"` {
		t.Fatalf("Transitions(initial) = %+v, want single transition on \"a\"", ts)
	}
	mid := ts[0].Target
	if a.IsAccepting(mid) {
		t.Errorf("intermediate state must not be accepting")
	}
	if a.FallbackState(mid) != mid {
		t.Errorf("intermediate state fallback = %v, want self %v", a.FallbackState(mid), mid)
	}
	midTs := a.Transitions(mid)
	if len(midTs) != 1 || string(midTs[0].Label) != `"b"` {
		t.Fatalf("Transitions(mid) = %+v, want single transition on \"b\"", midTs)
	}
	if !a.IsAccepting(midTs[0].Target) {
		t.Errorf("final state not accepting")
	}
}

func TestCompileTrailingArrayWildcard(t *testing.T) {
	a, err := Compile("$..x[*]")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	init := a.InitialState()
	ts := a.Transitions(init)
	if len(ts) != 1 || string(ts[0].Label) != `"x"` {
		t.Fatalf("Transitions(initial) = %+v, want single transition on \"x\"", ts)
	}
	last := ts[0].Target
	if a.IsAccepting(last) {
		t.Errorf("the state entered right after matching the final label must not itself be accepting")
	}
	star := a.FallbackState(last)
	if !a.IsAccepting(star) {
		t.Errorf("star state must be accepting")
	}
	if !a.IsUnitary(star) {
		t.Errorf("star state must be unitary")
	}
	reject := a.FallbackState(star)
	if a.IsAccepting(reject) || !a.IsRejecting(reject) {
		t.Errorf("star's fallback must be a non-accepting rejecting sink")
	}
	if a.FallbackState(reject) != reject {
		t.Errorf("reject state must self-loop on fallback")
	}
}

func TestCompileUnsupportedFeatures(t *testing.T) {
	cases := []string{
		"$.a",
		"$.*",
		"$..*",
		`$["a"]`,
		"$[0]",
		"$[1:2]",
	}
	for _, q := range cases {
		_, err := Compile(q)
		if err == nil {
			t.Errorf("Compile(%q): got nil error, want UnsupportedFeatureError", q)
			continue
		}
		if _, ok := err.(*UnsupportedFeatureError); !ok {
			t.Errorf("Compile(%q): error type = %T, want *UnsupportedFeatureError", q, err)
		}
	}
}

func TestCompileSyntaxError(t *testing.T) {
	_, err := Compile("$..")
	if err == nil {
		t.Fatalf("Compile(%q): got nil error, want a syntax error", "$..")
	}
	if _, ok := err.(*QuerySyntaxError); !ok {
		t.Errorf("error type = %T, want *QuerySyntaxError", err)
	}
}

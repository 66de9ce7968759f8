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

import "strings"

// Compile parses the subset of JSONPath grounded in original_source's EBNF
// (lib.rs: `query = [root] , { selector }`) that spec.md requires a
// producer for: an optional leading "$", any number of descendant-member
// segments ("..label"), and an optional trailing array-wildcard
// selector ("[*]"). Anything outside that subset — child selectors
// ("." label, "[label]"), wildcard children (".*"), filters, slices,
// unions, and numeric indices — is recognized as valid JSONPath syntax
// this compiler does not implement, and reported as
// UnsupportedFeatureError rather than a generic syntax error.
func Compile(query string) (*Automaton, error) {
	labels, trailingWildcard, err := parse(query)
	if err != nil {
		return nil, err
	}

	b := NewBuilder()

	if len(labels) == 0 && !trailingWildcard {
		s0 := b.AddState(nil, 0, true, false, true)
		return b.Build(s0, true)
	}

	n := len(labels)
	ids := make([]State, n+1)
	for i := 0; i <= n; i++ {
		ids[i] = b.Reserve()
	}

	// ids[0] is the search-from-root state; ids[i] (1<=i<n) is "matched
	// labels[i-1], searching for labels[i]". Both are non-accepting,
	// self-falling-back states: no match at this position leaves the
	// search state unchanged, so a deeper occurrence of the next expected
	// label is still found regardless of how much unrelated structure
	// intervenes.
	for i := 0; i < n; i++ {
		b.Define(ids[i], []Transition{{Label: quoteLabel(labels[i]), Target: ids[i+1]}}, ids[i], false, false, false)
	}

	last := ids[n]
	if trailingWildcard {
		reject := b.Reserve()
		star := b.Reserve()
		b.Define(reject, nil, reject, false, true, false)
		b.Define(star, nil, reject, true, false, true)
		b.Define(last, nil, star, false, false, false)
	} else {
		// Final state: accepting on its own (a direct match reports at
		// the preceding colon), self-looping on its own label so a
		// scalar-valued nested occurrence of the same label is still
		// caught via handle_colon, and falling back to ids[0] so
		// unrelated substructure restarts the whole pattern fresh
		// (supporting e.g. a nested "a" inside an already-matched "a").
		lastLabel := labels[n-1]
		b.Define(last, []Transition{{Label: quoteLabel(lastLabel), Target: last}}, ids[0], true, false, false)
	}

	return b.Build(ids[0], false)
}

// quoteLabel renders a bare label in its JSON-encoded (quoted) form, the
// byte-exact form spec.md §4.4's label matching compares against. Labels
// are expected to already be valid JSON string content; this does not
// perform general JSON string escaping (see DESIGN.md).
func quoteLabel(label string) []byte {
	out := make([]byte, 0, len(label)+2)
	out = append(out, '"')
	out = append(out, label...)
	out = append(out, '"')
	return out
}

// parse extracts the labels and trailing-wildcard flag from query,
// grounded in the `query = [root] , { selector }` grammar.
func parse(query string) (labels []string, trailingWildcard bool, err error) {
	s := query
	if strings.HasPrefix(s, "$") {
		s = s[1:]
	}

	for len(s) > 0 {
		switch {
		case strings.HasPrefix(s, ".."):
			s = s[2:]
			if strings.HasPrefix(s, "*") {
				return nil, false, untrackedFeature("descendant wildcard (..*)")
			}
			label, rest, ok := readLabel(s)
			if !ok {
				return nil, false, &QuerySyntaxError{Query: query, Pos: len(query) - len(s), Msg: "expected a label after '..'"}
			}
			labels = append(labels, label)
			s = rest
		case strings.HasPrefix(s, "[*]"):
			if len(s) != len("[*]") {
				return nil, false, untrackedFeature("array wildcard not in trailing position")
			}
			trailingWildcard = true
			s = s[3:]
		case strings.HasPrefix(s, ".*"):
			return nil, false, untrackedFeature("child wildcard selector (.*)")
		case strings.HasPrefix(s, "."):
			return nil, false, untrackedFeature("child selector (.label)")
		case strings.HasPrefix(s, "["):
			return nil, false, untrackedFeature("bracket selector ([label], slice, filter, union or numeric index)")
		default:
			return nil, false, &QuerySyntaxError{Query: query, Pos: len(query) - len(s), Msg: "unrecognized selector"}
		}
	}

	return labels, trailingWildcard, nil
}

// readLabel reads a bare (unquoted) label per the `label first , { label
// character }` production, stopping at the next '.', '[' or end of
// string.
func readLabel(s string) (label, rest string, ok bool) {
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '.' || c == '[' {
			break
		}
		i++
	}
	if i == 0 {
		return "", s, false
	}
	return s[:i], s[i:], true
}

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

import "fmt"

// UnsupportedFeatureError is returned when a query uses syntax this
// minimal compiler recognizes as valid JSONPath but does not (yet, or
// ever) compile, such as filters, slices, unions or numeric indices —
// all explicit Non-goals of spec.md §1. Grounded in
// original_source/error.rs's UnsupportedFeatureError, which distinguishes
// a tracked, planned gap from one that will never be implemented.
type UnsupportedFeatureError struct {
	Feature string
	// Issue, if non-nil, is a tracking reference for features planned but
	// not yet built. nil means the feature is an intentional Non-goal.
	Issue *string
}

func (e *UnsupportedFeatureError) Error() string {
	if e.Issue != nil {
		return fmt.Sprintf("jscan/automaton: %s is not supported yet (tracked: %s)", e.Feature, *e.Issue)
	}
	return fmt.Sprintf("jscan/automaton: %s is not supported and is not planned", e.Feature)
}

// untrackedFeature builds an UnsupportedFeatureError for a permanent
// Non-goal.
func untrackedFeature(feature string) error {
	return &UnsupportedFeatureError{Feature: feature}
}

// TooManyStatesError is returned when compiling a query would produce an
// automaton with more than 256 states (spec.md §1 Non-goal).
type TooManyStatesError struct {
	NumStates int
}

func (e *TooManyStatesError) Error() string {
	return fmt.Sprintf("jscan/automaton: query compiles to %d states, exceeding the 256-state limit", e.NumStates)
}

// QuerySyntaxError is returned for input that is not valid JSONPath at
// all (as opposed to valid-but-unsupported).
type QuerySyntaxError struct {
	Query string
	Pos   int
	Msg   string
}

func (e *QuerySyntaxError) Error() string {
	return fmt.Sprintf("jscan/automaton: invalid query %q at offset %d: %s", e.Query, e.Pos, e.Msg)
}

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

import (
	"reflect"
	"testing"

	"github.com/minio/jscan/automaton"
)

// TestBindingScenarios reproduces every worked example this package's
// semantics are required to match exactly.
func TestBindingScenarios(t *testing.T) {
	cases := []struct {
		name  string
		query string
		doc   string
		want  []int
	}{
		{"nested same label", "$..a", `{"a":1,"b":{"a":2}}`, []int{4, 15}},
		{"descendant chain", "$..a..b", `{"a":{"b":1,"c":{"b":2}}}`, []int{9, 20}},
		{"match suppresses nested array wildcard misfire", "$..x", `{"y":{"x":[1,2,3]}}`, []int{9}},
		{"trailing array wildcard reports elements", "$..x[*]", `{"x":[10,20,30]}`, []int{6, 9, 12}},
		{"label text inside an unrelated string never matches", "$..a", `"\"a\":1"`, []int{}},
		{"empty query on object", "$", `{}`, []int{0}},
		{"empty query on empty input", "$", ``, []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auto, err := automaton.Compile(tc.query)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tc.query, err)
			}
			got, err := Find([]byte(tc.doc), auto)
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			if got == nil {
				got = []int{}
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("query %q over %q: got %v, want %v", tc.query, tc.doc, got, tc.want)
			}
		})
	}
}

// TestOptimizationsAgree checks spec.md's P5: every combination of
// head-skip/tail-skip/unique-labels must report identical offsets.
func TestOptimizationsAgree(t *testing.T) {
	query := "$..x[*]"
	doc := `{"y":{"x":[1,2,3]},"z":{"x":[4,5]}}`

	auto, err := automaton.Compile(query)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	baseline, err := Find([]byte(doc), auto, WithHeadSkip(false), WithTailSkip(false), WithUniqueLabels(false))
	if err != nil {
		t.Fatalf("Find (baseline): %v", err)
	}

	combos := [][]Option{
		{WithHeadSkip(true), WithTailSkip(false), WithUniqueLabels(false)},
		{WithHeadSkip(false), WithTailSkip(true), WithUniqueLabels(false)},
		{WithHeadSkip(false), WithTailSkip(false), WithUniqueLabels(true)},
		{WithHeadSkip(true), WithTailSkip(true), WithUniqueLabels(true)},
	}
	for i, opts := range combos {
		got, err := Find([]byte(doc), auto, opts...)
		if err != nil {
			t.Fatalf("Find (combo %d): %v", i, err)
		}
		if !reflect.DeepEqual(got, baseline) {
			t.Errorf("combo %d: got %v, want %v (same as baseline)", i, got, baseline)
		}
	}
}

func TestCountMatchesFindLength(t *testing.T) {
	auto, err := automaton.Compile("$..a")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	doc := `{"a":1,"b":{"a":2}}`

	n, err := Count([]byte(doc), auto)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	offs, err := Find([]byte(doc), auto)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if int(n) != len(offs) {
		t.Errorf("Count() = %d, len(Find()) = %d", n, len(offs))
	}
}

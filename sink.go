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

// Result is the polymorphic result sink the executor reports into. It is
// a closed, two-variant tagged choice (Count | Index); report is
// unexported so callers cannot add a third variant from outside the
// package, matching spec.md §6's "no open-ended extension" note.
type Result interface {
	report(idx int)
}

// CountResult counts the number of reports without retaining offsets.
type CountResult struct {
	n uint64
}

// NewCountResult returns an empty counting sink.
func NewCountResult() *CountResult { return &CountResult{} }

func (c *CountResult) report(int) { c.n++ }

// Get returns the number of times report was called.
func (c *CountResult) Get() uint64 { return c.n }

// IndexResult appends every reported offset, in the order observed.
type IndexResult struct {
	offsets []int
}

// NewIndexResult returns an empty index-collecting sink.
func NewIndexResult() *IndexResult { return &IndexResult{} }

func (r *IndexResult) report(idx int) { r.offsets = append(r.offsets, idx) }

// Offsets returns the reported offsets in report order.
func (r *IndexResult) Offsets() []int { return r.offsets }

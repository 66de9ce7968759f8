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

// config collects the feature flags from spec.md §6 ("compile-time
// feature flags recognized"). Here they are run-time Options instead,
// following the teacher's WithCopyStrings functional-options shape
// (options.go) rather than Rust's cfg-gated compile features, since Go has
// no equivalent to Cargo feature flags.
type config struct {
	headSkip     bool
	tailSkip     bool
	uniqueLabels bool
	simd         bool
}

func defaultConfig() config {
	return config{headSkip: true, tailSkip: true, uniqueLabels: true, simd: false}
}

// Option configures a call to Run, Count or Find.
type Option func(*config)

// WithHeadSkip toggles the head-skip optimization (spec.md §4.4).
// Default: true.
func WithHeadSkip(b bool) Option {
	return func(c *config) { c.headSkip = b }
}

// WithTailSkip toggles the tail-skip optimization (spec.md §4.4).
// Default: true.
func WithTailSkip(b bool) Option {
	return func(c *config) { c.tailSkip = b }
}

// WithUniqueLabels toggles the unitary-state fast exit (spec.md §6).
// Default: true.
func WithUniqueLabels(b bool) Option {
	return func(c *config) { c.uniqueLabels = b }
}

// WithSIMD requests the SIMD-accelerated classifier backend. If the host
// CPU lacks the required features (see SupportedSIMD), the engine silently
// falls back to the scalar backend: this package ships a scalar backend
// only (see DESIGN.md), so this flag is presently always a no-op, kept for
// interface parity with spec.md §6's `simd` feature flag.
// Default: false.
func WithSIMD(b bool) Option {
	return func(c *config) { c.simd = b }
}

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

import "github.com/klauspost/cpuid/v2"

// SupportedSIMD reports whether the running CPU has the feature set a
// SIMD classifier backend would require (AVX2 + BMI2, the same gate the
// teacher's SupportedCPU uses in simdjson_amd64.go). This package does not
// ship a SIMD backend (see DESIGN.md), so the result is informational
// only: WithSIMD does not consult it, its only caller is the CLI's
// verbose log, and the classifier pipeline is scalar regardless of its
// value.
func SupportedSIMD() bool {
	return cpuid.CPU.Supports(cpuid.AVX2, cpuid.BMI2)
}

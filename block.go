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

// blockSize is the width, in bytes, of a single classification block. The
// scalar backend processes one block per iteration; a SIMD backend would
// use the same width so blocks remain comparable across backends.
const blockSize = 64

// twoBlockSize is the padding unit required at the tail of every input
// buffer (see AlignedInput). Kept as a separate constant because the
// padding requirement is stated in the input contract independently of
// how large a single classification block happens to be.
const twoBlockSize = 2 * blockSize

// pageAlignment is the alignment, in bytes, required of the first byte of
// an AlignedInput's backing slice.
const pageAlignment = 4096

// paddingByte fills the region appended past the real document bytes.
// Zero is not a valid JSON structural or quote byte, so it can never be
// misclassified as one.
const paddingByte = 0

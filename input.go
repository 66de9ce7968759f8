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

// AlignedInput is a page-aligned, block-padded byte buffer suitable for
// feeding the classifier pipeline. The scalar backend in this package does
// not require the alignment itself, but it does require the padding: every
// classifier reads in fixed-size blocks and never bounds-checks past the
// declared length, relying on the guarantee that at least one full block of
// zero bytes follows the real document.
type AlignedInput struct {
	buf []byte
	// docLen is the length of the real document, before padding.
	docLen int
}

// NewAlignedInput copies contents into a freshly allocated, padded buffer.
// The input is padded so that its total length is a multiple of
// twoBlockSize, plus one additional full twoBlockSize region, mirroring the
// two-SIMD-block padding scheme of the streaming engine this package is
// modeled on: a block classifier is always allowed to read one whole block
// past the last structural byte without special-casing the tail.
func NewAlignedInput(contents []byte) *AlignedInput {
	docLen := len(contents)
	rem := docLen % twoBlockSize
	pad := twoBlockSize - rem
	if rem == 0 {
		pad = 0
	}
	total := docLen + pad + twoBlockSize

	buf := make([]byte, total, total+pageAlignment)
	buf = alignTo(buf, pageAlignment)
	copy(buf, contents)
	for i := docLen; i < total; i++ {
		buf[i] = paddingByte
	}
	return &AlignedInput{buf: buf[:total], docLen: docLen}
}

// alignTo returns a sub-slice of buf whose first byte sits on an `align`
// boundary, assuming buf was over-allocated by at least `align` bytes of
// slack (as NewAlignedInput does via cap).
func alignTo(buf []byte, align int) []byte {
	addr := uintptrOf(buf)
	skip := (align - int(addr%uintptr(align))) % align
	total := len(buf)
	return buf[skip : skip+total : cap(buf)]
}

// Bytes returns the full padded buffer, including the document and all
// padding bytes.
func (in *AlignedInput) Bytes() []byte {
	return in.buf
}

// Len returns the length of the real document, excluding padding.
func (in *AlignedInput) Len() int {
	return in.docLen
}

// NumBlocks returns the number of full blockSize blocks the padded buffer
// spans.
func (in *AlignedInput) NumBlocks() int {
	return len(in.buf) / blockSize
}

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

// QuoteBlock is one 64-byte block enriched with its within-quotes mask.
// Bit i (LSB = offset 0 of the block) is set iff byte i lies strictly
// between an unescaped '"' and its matching unescaped '"'. Opening quotes
// may be set; closing quotes are unset; escaped quotes never toggle the
// mask.
type QuoteBlock struct {
	Base  int
	Bytes []byte
	Mask  uint64
}

// QuoteClassifier is a lazy iterator of QuoteBlocks over an AlignedInput.
// It carries two bits of state between blocks: whether the previous block
// ended mid-backslash-run (odd length), and whether the previous block
// ended inside a string. pos is an absolute byte cursor rather than a
// block index so a classifier can be resumed at an arbitrary offset (used
// by head-skip after its raw-buffer scan and by tail-skip after its depth
// scan, both of which land mid-block); blocks
// yielded after such a resume are not necessarily aligned to the original
// document's block grid, only to the resume point.
type QuoteClassifier struct {
	in          *AlignedInput
	pos         int
	oddCarry    bool
	insideCarry bool
}

// NewQuoteClassifier returns a classifier positioned at the start of in.
func NewQuoteClassifier(in *AlignedInput) *QuoteClassifier {
	return &QuoteClassifier{in: in}
}

// NewQuoteClassifierAt returns a classifier positioned at an arbitrary
// byte offset with explicit carry bits, used to resume classification
// after a tail-skip.
func NewQuoteClassifierAt(in *AlignedInput, pos int, oddCarry, insideCarry bool) *QuoteClassifier {
	return &QuoteClassifier{in: in, pos: pos, oddCarry: oddCarry, insideCarry: insideCarry}
}

// BlockSize always reports 64, per the quote-classified block contract.
func (q *QuoteClassifier) BlockSize() int {
	return blockSize
}

// GetOffset returns the absolute byte offset of the next unclassified
// byte.
func (q *QuoteClassifier) GetOffset() int {
	return q.pos
}

// FlipQuotesBit toggles the within-quotes carry, for a caller that has
// established by other means that the carry is inverted (e.g. after
// skipping a region holding an odd number of unescaped quotes). Head-skip
// and tail-skip in this package do not call it; they restart
// classification with explicit carries via NewQuoteClassifierAt.
func (q *QuoteClassifier) FlipQuotesBit() {
	q.insideCarry = !q.insideCarry
}

// Offset advances the classifier by n blocks without classifying them.
// The carry bits are left unchanged, so they are only correct afterwards
// if the caller knows the skipped region did not alter them. Head-skip in
// this package does not use it; it restarts with NewQuoteClassifierAt.
func (q *QuoteClassifier) Offset(n int) {
	q.pos += n * blockSize
}

// Next yields the next quote-classified block, or ok=false when the
// buffer is exhausted.
func (q *QuoteClassifier) Next() (block QuoteBlock, ok bool) {
	buf := q.in.Bytes()
	start := q.pos
	if start >= len(buf) {
		return QuoteBlock{}, false
	}
	end := start + blockSize
	if end > len(buf) {
		end = len(buf)
	}
	chunk := buf[start:end]

	mask, odd, inside := classifyQuoteBlock(chunk, q.oddCarry, q.insideCarry)
	q.oddCarry = odd
	q.insideCarry = inside
	q.pos = end

	return QuoteBlock{Base: start, Bytes: chunk, Mask: mask}, true
}

// classifyQuoteBlock implements quotes.rs / spec.md §4.1's algorithm
// scalar-only: a single pass tracking backslash-run parity and
// within-string parity byte by byte. This trades the teacher's
// carryless-multiply SIMD trick (find_quote_mask_and_bits_amd64.go) for a
// sequential scan; see DESIGN.md for why the AVX2 bit-trick was not
// ported without a way to verify it.
func classifyQuoteBlock(chunk []byte, oddCarryIn, insideCarryIn bool) (mask uint64, oddCarryOut, insideCarryOut bool) {
	odd := oddCarryIn
	inside := insideCarryIn
	for i, c := range chunk {
		if c == '\\' {
			odd = !odd
			continue
		}
		if c == '"' && !odd {
			inside = !inside
			// The quote byte itself takes the *new* parity; callers must
			// not rely on its value per the quote-classified block
			// contract, but recording it this way matches scalar intent.
			mask |= uint64(boolBit(inside)) << uint(i)
			odd = false
			continue
		}
		if inside {
			mask |= 1 << uint(i)
		}
		odd = false
	}
	return mask, odd, inside
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

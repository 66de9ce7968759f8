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

import "math/bits"

// openByte / closeByte resolve a BracketKind to its ASCII delimiters.
func openByte(k BracketKind) byte {
	if k == Square {
		return '['
	}
	return '{'
}

func closeByte(k BracketKind) byte {
	if k == Square {
		return ']'
	}
	return '}'
}

// DepthBlock is a view over one classified block exposing running depth
// information for a single chosen bracket kind, per spec.md §4.3. Grounded
// in original_source/classification/depth.rs's DepthBlock trait and its
// worked doc-comment example.
type DepthBlock struct {
	base       int
	openMask   uint64
	closeMask  uint64
	depthStart int // depth carried in at the start of the block
	cursor     int // bit index of the block's current read position
}

// AddDepth incorporates depth carried over from the previous block.
func (d *DepthBlock) AddDepth(depth int) {
	d.depthStart += depth
}

// GetDepth returns the depth at the block's current cursor position (i.e.
// after accounting for opens/closes strictly before the cursor).
func (d *DepthBlock) GetDepth() int {
	return d.depthStart + d.netBefore(d.cursor)
}

// DepthAtEnd returns the depth after the block's last byte, including the
// depth carried in via AddDepth.
func (d *DepthBlock) DepthAtEnd() int {
	return d.depthStart + d.netBefore(blockSize)
}

// EstimateLowestPossibleDepth returns a fast, conservative lower bound:
// the current depth minus the number of remaining close bits in the
// block. It is always ≤ the true achievable minimum.
func (d *DepthBlock) EstimateLowestPossibleDepth() int {
	remaining := d.closeMask >> uint(d.cursor)
	return d.GetDepth() - bits.OnesCount64(remaining)
}

// AdvanceToNextDepthDecrease moves the cursor to the next position at
// which depth decreases (a close bit), returning false if the block has
// no more such positions.
func (d *DepthBlock) AdvanceToNextDepthDecrease() bool {
	for d.cursor < blockSize {
		i := d.cursor
		d.cursor++
		isOpen := (d.openMask>>uint(i))&1 != 0
		isClose := (d.closeMask>>uint(i))&1 != 0
		if isClose && !isOpen {
			return true
		}
	}
	return false
}

// netBefore returns the signed open-minus-close count for bit positions
// strictly before `upto`.
func (d *DepthBlock) netBefore(upto int) int {
	var openMask, closeMask uint64
	if upto >= blockSize {
		openMask, closeMask = d.openMask, d.closeMask
	} else {
		m := (uint64(1) << uint(upto)) - 1
		openMask, closeMask = d.openMask&m, d.closeMask&m
	}
	return bits.OnesCount64(openMask) - bits.OnesCount64(closeMask)
}

// DepthClassifier is a lazy iterator of DepthBlocks for one chosen bracket
// kind, consuming a QuoteClassifier directly (it needs its own raw masks,
// independent of whatever colon/comma masking a StructuralClassifier may
// have applied).
type DepthClassifier struct {
	quotes  *QuoteClassifier
	opening BracketKind
}

// NewDepthClassifier returns a classifier tracking the given bracket kind.
func NewDepthClassifier(q *QuoteClassifier, opening BracketKind) *DepthClassifier {
	return &DepthClassifier{quotes: q, opening: opening}
}

// Next yields the next DepthBlock, or ok=false at end of input.
func (d *DepthClassifier) Next() (DepthBlock, bool) {
	blk, more := d.quotes.Next()
	if !more {
		return DepthBlock{}, false
	}
	var openMask, closeMask uint64
	ob, cb := openByte(d.opening), closeByte(d.opening)
	for i, c := range blk.Bytes {
		if (blk.Mask>>uint(i))&1 != 0 {
			continue
		}
		switch c {
		case ob:
			openMask |= 1 << uint(i)
		case cb:
			closeMask |= 1 << uint(i)
		}
	}
	return DepthBlock{base: blk.Base, openMask: openMask, closeMask: closeMask}, true
}

// ResumeDepthClassification rebuilds a DepthClassifier from a StructResumeState, per
// spec.md's resume-state contract: depth classification can restart at
// exactly the point structural classification left off.
func ResumeDepthClassification(in *AlignedInput, st StructResumeState, opening BracketKind) *DepthClassifier {
	q := NewQuoteClassifierAt(in, st.pos, st.oddCarry, st.insideCarry)
	return NewDepthClassifier(q, opening)
}

/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package square

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit mask with one bit per square.
type Bitboard uint64

// Constant bitboards for convenience, grounded on the teacher's
// FileA_Bb/Rank1_Bb layout.
const (
	Empty_Bb Bitboard = 0
	All_Bb   Bitboard = ^Bitboard(0)

	FileABb Bitboard = 0x0101010101010101
	FileBBb          = FileABb << 1
	FileCBb          = FileABb << 2
	FileDBb          = FileABb << 3
	FileEBb          = FileABb << 4
	FileFBb          = FileABb << 5
	FileGBb          = FileABb << 6
	FileHBb          = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb          = Rank1Bb << (8 * 1)
	Rank3Bb          = Rank1Bb << (8 * 2)
	Rank4Bb          = Rank1Bb << (8 * 3)
	Rank5Bb          = Rank1Bb << (8 * 4)
	Rank6Bb          = Rank1Bb << (8 * 5)
	Rank7Bb          = Rank1Bb << (8 * 6)
	Rank8Bb          = Rank1Bb << (8 * 7)
)

// Bb returns the single-bit bitboard for this square. Undefined if sq is
// not valid.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << sq
}

// Bb returns the bitboard of every square on this file.
func (f File) Bb() Bitboard {
	return FileABb << f
}

// Bb returns the bitboard of every square on this rank.
func (r Rank) Bb() Bitboard {
	return Rank1Bb << (8 * r)
}

// Has reports whether sq's bit is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Set returns b with sq's bit set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bb()
}

// Clear returns b with sq's bit cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the index of the lowest set bit. Precondition: b != 0.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns Lsb(*b) and clears that bit in *b. Precondition: *b != 0.
func (b *Bitboard) PopLsb() Square {
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// EnumerateSubsets invokes visit on every subset of mask, including 0 and
// mask itself, exactly once, via the classical Carry-Rippler trick. Total
// invocations equal 2^popcount(mask); visit order is not part of the
// contract.
func EnumerateSubsets(mask Bitboard, visit func(Bitboard)) {
	subset := mask
	for {
		visit(subset)
		if subset == 0 {
			break
		}
		subset = (subset - 1) & mask
	}
}

// String renders the bitboard as a 64-character binary string.
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 63; i >= 0; i-- {
		if b&(Bitboard(1)<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// StrBoard renders the bitboard as an 8x8 ASCII board, rank 8 at the top.
func (b Bitboard) StrBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(Make(f, Rank(r))) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

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

package attacks

import "github.com/anvik/chesscore/square"

// KnightAttacks and KingAttacks hold the per-square attack set for a knight
// or king placed on an otherwise empty board, keyed by origin square.
var (
	KnightAttacks [square.Count]square.Bitboard
	KingAttacks   [square.Count]square.Bitboard
	// PawnAttacks holds diagonal-capture targets only, indexed by color then
	// origin square.
	PawnAttacks [2][square.Count]square.Bitboard
)

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for sq := square.SqA1; sq <= square.SqH8; sq++ {
		f, r := int(sq.File()), int(sq.Rank())
		for _, d := range knightDeltas {
			if dst, ok := onBoard(f+d[0], r+d[1]); ok {
				KnightAttacks[sq] = KnightAttacks[sq].Set(dst)
			}
		}
		for _, d := range kingDeltas {
			if dst, ok := onBoard(f+d[0], r+d[1]); ok {
				KingAttacks[sq] = KingAttacks[sq].Set(dst)
			}
		}
		if dst, ok := onBoard(f-1, r+1); ok {
			PawnAttacks[square.White][sq] = PawnAttacks[square.White][sq].Set(dst)
		}
		if dst, ok := onBoard(f+1, r+1); ok {
			PawnAttacks[square.White][sq] = PawnAttacks[square.White][sq].Set(dst)
		}
		if dst, ok := onBoard(f-1, r-1); ok {
			PawnAttacks[square.Black][sq] = PawnAttacks[square.Black][sq].Set(dst)
		}
		if dst, ok := onBoard(f+1, r-1); ok {
			PawnAttacks[square.Black][sq] = PawnAttacks[square.Black][sq].Set(dst)
		}
	}
}

func onBoard(f, r int) (square.Square, bool) {
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return square.SqNone, false
	}
	return square.Make(square.File(f), square.Rank(r)), true
}

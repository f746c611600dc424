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

import "strings"

// CastlingRights is a 4-bit set of {WK, WQ, BK, BQ}.
type CastlingRights uint8

const (
	CastlingNone CastlingRights = 0

	CastlingWhiteKingside  CastlingRights = 1 << 0
	CastlingWhiteQueenside CastlingRights = 1 << 1
	CastlingBlackKingside  CastlingRights = 1 << 2
	CastlingBlackQueenside CastlingRights = 1 << 3

	CastlingWhite CastlingRights = CastlingWhiteKingside | CastlingWhiteQueenside
	CastlingBlack CastlingRights = CastlingBlackKingside | CastlingBlackQueenside
	CastlingAny   CastlingRights = CastlingWhite | CastlingBlack
)

// Has reports whether every bit in rhs is set in lhs.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs == rhs
}

// Remove clears the given rights and returns the result.
func (lhs CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	return lhs &^ rhs
}

// Add sets the given rights and returns the result.
func (lhs CastlingRights) Add(rhs CastlingRights) CastlingRights {
	return lhs | rhs
}

// String renders rights in "KQkq" order, or "-" if none are set.
func (lhs CastlingRights) String() string {
	if lhs == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if lhs.Has(CastlingWhiteKingside) {
		sb.WriteByte('K')
	}
	if lhs.Has(CastlingWhiteQueenside) {
		sb.WriteByte('Q')
	}
	if lhs.Has(CastlingBlackKingside) {
		sb.WriteByte('k')
	}
	if lhs.Has(CastlingBlackQueenside) {
		sb.WriteByte('q')
	}
	return sb.String()
}

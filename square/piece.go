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

import "fmt"

// Color is White or Black.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite is the color involution.
func (c Color) Opposite() Color { return c ^ 1 }

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool { return c <= Black }

// String renders the color as "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PawnPushDirection returns North for White and South for Black.
func (c Color) PawnPushDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// PawnStartRank returns the rank pawns of this color begin on.
func (c Color) PawnStartRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PromotionRank returns the rank pawns of this color promote on.
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// PieceKind is a chess piece type, encoded 0-5 per the spec's compact form.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceKindCount
)

var pieceKindLetters = [PieceKindCount]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// IsValid reports whether pk is one of the 6 piece kinds.
func (pk PieceKind) IsValid() bool { return pk < PieceKindCount }

// Letter returns the upper-case FEN letter for this piece kind.
func (pk PieceKind) Letter() byte { return pieceKindLetters[pk] }

// IsSlider reports whether pk moves along rays (bishop, rook, queen).
func (pk PieceKind) IsSlider() bool { return pk == Bishop || pk == Rook || pk == Queen }

// Piece packs a color and piece kind into 4 bits: (color<<3)|kind.
type Piece uint8

// Empty is the sentinel for "no piece on this square".
const Empty Piece = 0xFF

// MakePiece packs a color and kind into a Piece.
func MakePiece(c Color, pk PieceKind) Piece {
	return Piece(uint8(c)<<3 | uint8(pk))
}

// Color unpacks the piece's color. Undefined if p == Empty.
func (p Piece) Color() Color { return Color(p >> 3) }

// Kind unpacks the piece's kind. Undefined if p == Empty.
func (p Piece) Kind() PieceKind { return PieceKind(p & 7) }

// String renders the piece as a FEN letter (upper for White, lower for
// Black), or "-" for Empty.
func (p Piece) String() string {
	if p == Empty {
		return "-"
	}
	letter := p.Kind().Letter()
	if p.Color() == Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// FromFENLetter decodes a single FEN piece letter, or returns an error if
// the letter is not one of PNBRQKpnbrqk.
func FromFENLetter(c byte) (Piece, error) {
	var color Color
	upper := c
	if c >= 'a' && c <= 'z' {
		color = Black
		upper = c - ('a' - 'A')
	} else {
		color = White
	}
	for pk := Pawn; pk < PieceKindCount; pk++ {
		if pieceKindLetters[pk] == upper {
			return MakePiece(color, pk), nil
		}
	}
	return Empty, fmt.Errorf("square: invalid piece letter %q", string(c))
}

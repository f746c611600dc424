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

package position

import (
	"strings"

	"github.com/anvik/chesscore/square"
)

// Move is a bit-packed move descriptor, small enough to pass by value and to
// pack densely into a caller's move list, following the layout of the
// teacher's newer-generation pkg/types.Move:
//
//	bits  0- 5: to square
//	bits  6-11: from square
//	bits 12-14: piece kind
//	bits 15-17: promotion kind + 1 (0 = no promotion)
//	bit     18: is_capture
//	bit     19: is_en_passant
//	bit     20: is_castling
type Move uint32

const (
	moveToShift        = 0
	moveFromShift       = 6
	movePieceShift      = 12
	movePromotionShift  = 15
	moveCaptureBit      = 1 << 18
	moveEnPassantBit    = 1 << 19
	moveCastlingBit     = 1 << 20

	moveSquareMask = 0x3F
	movePieceMask  = 0x7
	movePromoMask  = 0x7
)

// NewMove builds a quiet, non-promoting move.
func NewMove(from, to square.Square, piece square.PieceKind) Move {
	return Move(uint32(to)<<moveToShift | uint32(from)<<moveFromShift | uint32(piece)<<movePieceShift)
}

// NewCapture builds a capturing, non-promoting move.
func NewCapture(from, to square.Square, piece square.PieceKind) Move {
	return NewMove(from, to, piece) | moveCaptureBit
}

// NewEnPassant builds an en-passant capture; piece is always Pawn.
func NewEnPassant(from, to square.Square) Move {
	return NewMove(from, to, square.Pawn) | moveCaptureBit | moveEnPassantBit
}

// NewCastle builds a castling king move.
func NewCastle(from, to square.Square) Move {
	return NewMove(from, to, square.King) | moveCastlingBit
}

// NewPromotion builds a (possibly capturing) pawn promotion.
func NewPromotion(from, to square.Square, promo square.PieceKind, capture bool) Move {
	m := NewMove(from, to, square.Pawn) | Move((uint32(promo)+1)<<movePromotionShift)
	if capture {
		m |= moveCaptureBit
	}
	return m
}

// From returns the move's origin square.
func (m Move) From() square.Square { return square.Square(uint32(m) >> moveFromShift & moveSquareMask) }

// To returns the move's destination square.
func (m Move) To() square.Square { return square.Square(uint32(m) >> moveToShift & moveSquareMask) }

// Piece returns the kind of the piece making the move (the pawn for a
// promotion, never the promoted piece).
func (m Move) Piece() square.PieceKind {
	return square.PieceKind(uint32(m) >> movePieceShift & movePieceMask)
}

// Promotion returns the promoted-to piece kind and true, or (0, false) if m
// is not a promotion.
func (m Move) Promotion() (square.PieceKind, bool) {
	v := uint32(m) >> movePromotionShift & movePromoMask
	if v == 0 {
		return 0, false
	}
	return square.PieceKind(v - 1), true
}

// IsCapture reports whether the move captures a piece (including en-passant).
func (m Move) IsCapture() bool { return uint32(m)&moveCaptureBit != 0 }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return uint32(m)&moveEnPassantBit != 0 }

// IsCastling reports whether the move is a castling king move.
func (m Move) IsCastling() bool { return uint32(m)&moveCastlingBit != 0 }

// String renders the move in UCI long algebraic form, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if promo, ok := m.Promotion(); ok {
		sb.WriteByte(promo.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// capture records the piece a make() removed from the board, if any.
type capture struct {
	present bool
	color   square.Color
	piece   square.PieceKind
	square  square.Square
}

// castlingRookMove records the rook displacement a castling make() applied.
type castlingRookMove struct {
	present bool
	from    square.Square
	to      square.Square
}

// Undo carries everything Make mutated, so Unmake can restore the position
// byte-for-byte. Callers should treat it as opaque.
type Undo struct {
	move Move
	color square.Color
	prevSide square.Color

	prevCastling   square.CastlingRights
	prevEnPassant  square.Square
	prevHalfmove   uint32
	prevFullmove   uint32

	capture capture
	rook    castlingRookMove
}

// Move returns the move this Undo reverses.
func (u Undo) Move() Move { return u.move }

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

import "github.com/anvik/chesscore/square"

// castlingRookFor returns the rook's from/to squares for a king move landing
// on to, and true, or (zero, zero, false) if to is not a castling
// destination. Used by Make; the generator's castling table lists only the
// king squares and the squares that must be empty.
func castlingRookFor(to square.Square) (from, dest square.Square, ok bool) {
	switch to {
	case square.SqG1:
		return square.SqH1, square.SqF1, true
	case square.SqC1:
		return square.SqA1, square.SqD1, true
	case square.SqG8:
		return square.SqH8, square.SqF8, true
	case square.SqC8:
		return square.SqA8, square.SqD8, true
	default:
		return square.SqNone, square.SqNone, false
	}
}

// cornerCastlingRight returns the castling right a rook's home corner
// controls, or CastlingNone if s is not one of the four corners.
func cornerCastlingRight(s square.Square) square.CastlingRights {
	switch s {
	case square.SqH1:
		return square.CastlingWhiteKingside
	case square.SqA1:
		return square.CastlingWhiteQueenside
	case square.SqH8:
		return square.CastlingBlackKingside
	case square.SqA8:
		return square.CastlingBlackQueenside
	default:
		return square.CastlingNone
	}
}

// Make applies m to p and returns an Undo that exactly reverses it. m must
// be pseudo-legal for p; Make performs no legality checking of its own.
func (p *Position) Make(m Move) Undo {
	from, to := m.From(), m.To()
	color := p.sideToMove
	piece := m.Piece()

	u := Undo{
		move:          m,
		color:         color,
		prevSide:      p.sideToMove,
		prevCastling:  p.castlingRights,
		prevEnPassant: p.enPassant,
		prevHalfmove:  p.halfmoveClock,
		prevFullmove:  p.fullmoveNumber,
	}

	if m.IsEnPassant() {
		var behind square.Square
		if color == square.White {
			behind = to.To(square.South)
		} else {
			behind = to.To(square.North)
		}
		u.capture = capture{present: true, color: color.Opposite(), piece: square.Pawn, square: behind}
		p.remove(color.Opposite(), square.Pawn, behind)
	} else if cap := p.pieceOn[to]; cap != square.Empty {
		u.capture = capture{present: true, color: cap.Color(), piece: cap.Kind(), square: to}
		p.remove(cap.Color(), cap.Kind(), to)
	}

	p.remove(color, piece, from)
	if promo, ok := m.Promotion(); ok {
		p.place(color, promo, to)
	} else {
		p.place(color, piece, to)
	}

	if m.IsCastling() {
		rookFrom, rookTo, ok := castlingRookFor(to)
		if ok {
			p.remove(color, square.Rook, rookFrom)
			p.place(color, square.Rook, rookTo)
			u.rook = castlingRookMove{present: true, from: rookFrom, to: rookTo}
		}
	}

	newRights := p.castlingRights
	if piece == square.King {
		if color == square.White {
			newRights = newRights.Remove(square.CastlingWhite)
		} else {
			newRights = newRights.Remove(square.CastlingBlack)
		}
	}
	newRights = newRights.Remove(cornerCastlingRight(from))
	newRights = newRights.Remove(cornerCastlingRight(to))
	p.castlingRights = newRights

	p.enPassant = square.SqNone
	if piece == square.Pawn {
		delta := int(to) - int(from)
		if delta == 16 || delta == -16 {
			if color == square.White {
				p.enPassant = from.To(square.North)
			} else {
				p.enPassant = from.To(square.South)
			}
		}
	}

	if piece == square.Pawn || u.capture.present {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if p.sideToMove == square.Black {
		p.fullmoveNumber++
	}
	p.sideToMove = p.sideToMove.Opposite()

	return u
}

// Unmake reverses u, restoring p to exactly the state it held before the
// matching Make. u must be the most recently produced Undo for p.
func (p *Position) Unmake(u Undo) {
	p.sideToMove = u.prevSide
	p.castlingRights = u.prevCastling
	p.enPassant = u.prevEnPassant
	p.halfmoveClock = u.prevHalfmove
	p.fullmoveNumber = u.prevFullmove

	from, to := u.move.From(), u.move.To()
	color := u.color

	if promo, ok := u.move.Promotion(); ok {
		p.remove(color, promo, to)
	} else {
		p.remove(color, u.move.Piece(), to)
	}
	p.place(color, u.move.Piece(), from)

	if u.rook.present {
		p.remove(color, square.Rook, u.rook.to)
		p.place(color, square.Rook, u.rook.from)
	}

	if u.capture.present {
		p.place(u.capture.color, u.capture.piece, u.capture.square)
	}
}

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

// Package position implements the bitboard Position: synchronized per-piece,
// per-side, and global occupancy plus a square→piece reverse index, along
// with the FEN codec and the make/undo engine that mutates it in place.
//
// The layout follows the teacher's position.Position in spirit — piece
// bitboards, occupancy, a reverse index, and the four scalar fields — but
// picks the [color][piece] bitboard array as canonical rather than the
// flat 64-entry board the teacher also carries, per the source's own
// unresolved ambiguity between the two layouts.
package position

import (
	"fmt"

	"github.com/anvik/chesscore/internal/assert"
	"github.com/anvik/chesscore/square"
)

// Position is the complete bitboard state of a chess game at one ply. It is
// owned exclusively by its caller; Make/Unmake require exclusive access.
type Position struct {
	pieceBB [2][square.PieceKindCount]square.Bitboard
	occ     [2]square.Bitboard
	occAll  square.Bitboard
	pieceOn [square.Count]square.Piece

	sideToMove     square.Color
	castlingRights square.CastlingRights
	enPassant      square.Square
	halfmoveClock  uint32
	fullmoveNumber uint32
}

// New returns an empty position: no pieces, White to move, full castling
// rights cleared, no en-passant target, clocks at their initial values.
func New() *Position {
	p := &Position{
		sideToMove:     square.White,
		enPassant:      square.SqNone,
		fullmoveNumber: 1,
	}
	for s := square.SqA1; s <= square.SqH8; s++ {
		p.pieceOn[s] = square.Empty
	}
	return p
}

// StartingPosition returns a fresh position set up for the standard chess
// opening array.
func StartingPosition() *Position {
	p, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(fmt.Sprintf("position: starting FEN failed to parse: %v", err))
	}
	return p
}

// PieceBB returns the bitboard of piece kind pk belonging to color c.
func (p *Position) PieceBB(c square.Color, pk square.PieceKind) square.Bitboard {
	return p.pieceBB[c][pk]
}

// Occ returns the union of every piece color c controls.
func (p *Position) Occ(c square.Color) square.Bitboard { return p.occ[c] }

// OccAll returns the union of every occupied square on the board.
func (p *Position) OccAll() square.Bitboard { return p.occAll }

// PieceOn returns the piece on s, or square.Empty if s is unoccupied.
func (p *Position) PieceOn(s square.Square) square.Piece { return p.pieceOn[s] }

// SideToMove returns the color to move.
func (p *Position) SideToMove() square.Color { return p.sideToMove }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() square.CastlingRights { return p.castlingRights }

// EnPassant returns the en-passant target square, or square.SqNone if none
// is available.
func (p *Position) EnPassant() square.Square { return p.enPassant }

// HalfmoveClock returns the fifty-move-rule counter.
func (p *Position) HalfmoveClock() uint32 { return p.halfmoveClock }

// FullmoveNumber returns the current full move number, starting at 1.
func (p *Position) FullmoveNumber() uint32 { return p.fullmoveNumber }

// KingSquare returns the square of color c's king, or SqNone if c has no
// king. Validate rejects more than one king per color but accepts none.
func (p *Position) KingSquare(c square.Color) square.Square {
	return p.pieceBB[c][square.King].Lsb()
}

// place sets a piece at an empty square, keeping piece_bb, occ, occ_all, and
// piece_on synchronized. Precondition: s is currently empty.
func (p *Position) place(c square.Color, pk square.PieceKind, s square.Square) {
	if assert.DEBUG {
		assert.Assert(p.pieceOn[s] == square.Empty, "position: place on occupied square %s", s)
	}
	bit := s.Bb()
	p.pieceBB[c][pk] |= bit
	p.occ[c] |= bit
	p.occAll |= bit
	p.pieceOn[s] = square.MakePiece(c, pk)
}

// remove clears the piece (c, pk) from s, keeping all derived state
// synchronized. Precondition: s currently holds exactly that piece.
func (p *Position) remove(c square.Color, pk square.PieceKind, s square.Square) {
	if assert.DEBUG {
		assert.Assert(p.pieceOn[s] == square.MakePiece(c, pk), "position: remove mismatch at %s", s)
	}
	bit := s.Bb()
	p.pieceBB[c][pk] &^= bit
	p.occ[c] &^= bit
	p.occAll &^= bit
	p.pieceOn[s] = square.Empty
}

// setBB bulk-loads a piece bitboard, bypassing place/remove's one-square
// preconditions. Callers (the FEN parser) must call syncDerived once all
// piece bitboards are loaded.
func (p *Position) setBB(c square.Color, pk square.PieceKind, bb square.Bitboard) {
	p.pieceBB[c][pk] = bb
}

// syncDerived recomputes occ, occAll, and pieceOn from pieceBB alone. Used
// after a bulk load via setBB.
func (p *Position) syncDerived() {
	for s := square.SqA1; s <= square.SqH8; s++ {
		p.pieceOn[s] = square.Empty
	}
	p.occ[square.White] = square.Empty_Bb
	p.occ[square.Black] = square.Empty_Bb
	for c := square.White; c <= square.Black; c++ {
		for pk := square.Pawn; pk < square.PieceKindCount; pk++ {
			bb := p.pieceBB[c][pk]
			p.occ[c] |= bb
			for b := bb; b != 0; {
				s := b.PopLsb()
				p.pieceOn[s] = square.MakePiece(c, pk)
			}
		}
	}
	p.occAll = p.occ[square.White] | p.occ[square.Black]
}

// InvariantViolated reports a Validate consistency failure. It is a
// debug-time-only diagnostic; production code never returns it.
type InvariantViolated struct {
	Reason string
}

func (e *InvariantViolated) Error() string {
	return fmt.Sprintf("position: invariant violated: %s", e.Reason)
}

// Validate checks every invariant in the data model against the current
// state and returns the first violation found, or nil if the position is
// well-formed. Intended for debug builds and tests, not the hot path.
func (p *Position) Validate() error {
	var seen square.Bitboard
	for c := square.White; c <= square.Black; c++ {
		for pk := square.Pawn; pk < square.PieceKindCount; pk++ {
			bb := p.pieceBB[c][pk]
			if bb&seen != 0 {
				return &InvariantViolated{Reason: "a square is set in more than one piece bitboard"}
			}
			seen |= bb
		}
	}

	for c := square.White; c <= square.Black; c++ {
		var union square.Bitboard
		for pk := square.Pawn; pk < square.PieceKindCount; pk++ {
			union |= p.pieceBB[c][pk]
		}
		if union != p.occ[c] {
			return &InvariantViolated{Reason: fmt.Sprintf("occ[%s] disagrees with its piece bitboards", c)}
		}
	}
	if p.occAll != p.occ[square.White]|p.occ[square.Black] {
		return &InvariantViolated{Reason: "occ_all disagrees with occ[White]|occ[Black]"}
	}

	for s := square.SqA1; s <= square.SqH8; s++ {
		pc := p.pieceOn[s]
		if pc == square.Empty {
			if seen.Has(s) {
				return &InvariantViolated{Reason: fmt.Sprintf("piece_on[%s] is EMPTY but a bitboard claims it", s)}
			}
			continue
		}
		if !p.pieceBB[pc.Color()][pc.Kind()].Has(s) {
			return &InvariantViolated{Reason: fmt.Sprintf("piece_on[%s] disagrees with piece_bb", s)}
		}
	}

	for c := square.White; c <= square.Black; c++ {
		if p.pieceBB[c][square.King].PopCount() > 1 {
			return &InvariantViolated{Reason: fmt.Sprintf("%s has more than one king", c)}
		}
	}

	if p.fullmoveNumber < 1 {
		return &InvariantViolated{Reason: "fullmove_number < 1"}
	}

	if p.enPassant != square.SqNone {
		r := p.enPassant.Rank()
		if r != square.Rank3 && r != square.Rank6 {
			return &InvariantViolated{Reason: "en_passant target not on rank 3 or 6"}
		}
	}

	return nil
}

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

// Package movegen produces pseudo-legal moves for a position: moves that
// obey piece geometry, capture rules, and the castling emptiness
// precondition, but are not filtered against leaving the mover's own king in
// check. That filter is a caller concern, following the teacher's own
// movegen package which generates first and lets a later stage judge
// legality.
package movegen

import (
	"github.com/anvik/chesscore/attacks"
	"github.com/anvik/chesscore/position"
	"github.com/anvik/chesscore/square"
)

// MaxMoves bounds the move list capacity a caller should pre-allocate; no
// legal chess position has been found to exceed it by a wide margin,
// mirroring the teacher's types.MaxMoves sizing rationale.
const MaxMoves = 256

// Generate appends every pseudo-legal move for p.SideToMove() to moves,
// using t for sliding-piece attacks, and returns the extended slice.
func Generate(p *position.Position, t *attacks.Tables, moves []position.Move) []position.Move {
	color := p.SideToMove()
	friendly := p.Occ(color)
	enemy := p.Occ(color.Opposite())
	occ := p.OccAll()

	moves = generatePawnMoves(p, color, enemy, occ, moves)
	moves = generateLeaperMoves(p, color, square.Knight, attacks.KnightAttacks[:], friendly, moves)
	moves = generateLeaperMoves(p, color, square.King, attacks.KingAttacks[:], friendly, moves)
	moves = generateSliderMoves(p, color, square.Bishop, t, friendly, occ, moves)
	moves = generateSliderMoves(p, color, square.Rook, t, friendly, occ, moves)
	moves = generateSliderMoves(p, color, square.Queen, t, friendly, occ, moves)
	moves = generateCastling(p, color, occ, moves)

	return moves
}

func generateLeaperMoves(p *position.Position, color square.Color, pk square.PieceKind, table []square.Bitboard, friendly square.Bitboard, moves []position.Move) []position.Move {
	bb := p.PieceBB(color, pk)
	for bb != 0 {
		from := bb.PopLsb()
		targets := table[from] &^ friendly
		moves = emitTargets(p, color, pk, from, targets, moves)
	}
	return moves
}

func generateSliderMoves(p *position.Position, color square.Color, pk square.PieceKind, t *attacks.Tables, friendly, occ square.Bitboard, moves []position.Move) []position.Move {
	bb := p.PieceBB(color, pk)
	for bb != 0 {
		from := bb.PopLsb()
		var targets square.Bitboard
		switch pk {
		case square.Bishop:
			targets = t.BishopAttacks(from, occ)
		case square.Rook:
			targets = t.RookAttacks(from, occ)
		case square.Queen:
			targets = t.QueenAttacks(from, occ)
		}
		targets &^= friendly
		moves = emitTargets(p, color, pk, from, targets, moves)
	}
	return moves
}

func emitTargets(p *position.Position, color square.Color, pk square.PieceKind, from square.Square, targets square.Bitboard, moves []position.Move) []position.Move {
	enemy := p.Occ(color.Opposite())
	for targets != 0 {
		to := targets.PopLsb()
		if enemy.Has(to) {
			moves = append(moves, position.NewCapture(from, to, pk))
		} else {
			moves = append(moves, position.NewMove(from, to, pk))
		}
	}
	return moves
}

var promotionKinds = [4]square.PieceKind{square.Queen, square.Rook, square.Bishop, square.Knight}

func generatePawnMoves(p *position.Position, color square.Color, enemy, occ square.Bitboard, moves []position.Move) []position.Move {
	pawns := p.PieceBB(color, square.Pawn)
	empty := ^occ
	push := color.PawnPushDirection()
	startRank := color.PawnStartRank()
	promoRank := color.PromotionRank()

	for bb := pawns; bb != 0; {
		from := bb.PopLsb()
		one := from.To(push)
		if !one.IsValid() || occ.Has(one) {
			// blocked; still may have diagonal captures below
		} else if one.Rank() == promoRank {
			moves = emitPromotions(from, one, false, moves)
		} else {
			moves = append(moves, position.NewMove(from, one, square.Pawn))
			if from.Rank() == startRank {
				two := one.To(push)
				if two.IsValid() && empty.Has(two) {
					moves = append(moves, position.NewMove(from, two, square.Pawn))
				}
			}
		}

		targets := attacks.PawnAttacks[color][from] & enemy
		for targets != 0 {
			to := targets.PopLsb()
			if to.Rank() == promoRank {
				moves = emitPromotions(from, to, true, moves)
			} else {
				moves = append(moves, position.NewCapture(from, to, square.Pawn))
			}
		}
	}

	if ep := p.EnPassant(); ep != square.SqNone {
		for candidates := attacks.PawnAttacks[color.Opposite()][ep] & pawns; candidates != 0; {
			from := candidates.PopLsb()
			moves = append(moves, position.NewEnPassant(from, ep))
		}
	}

	return moves
}

func emitPromotions(from, to square.Square, capture bool, moves []position.Move) []position.Move {
	for _, promo := range promotionKinds {
		moves = append(moves, position.NewPromotion(from, to, promo, capture))
	}
	return moves
}

type castleFlank struct {
	right    square.CastlingRights
	kingFrom square.Square
	kingTo   square.Square
	between  []square.Square
}

var castleFlanks = [4]castleFlank{
	{square.CastlingWhiteKingside, square.SqE1, square.SqG1, []square.Square{square.SqF1, square.SqG1}},
	{square.CastlingWhiteQueenside, square.SqE1, square.SqC1, []square.Square{square.SqB1, square.SqC1, square.SqD1}},
	{square.CastlingBlackKingside, square.SqE8, square.SqG8, []square.Square{square.SqF8, square.SqG8}},
	{square.CastlingBlackQueenside, square.SqE8, square.SqC8, []square.Square{square.SqB8, square.SqC8, square.SqD8}},
}

func generateCastling(p *position.Position, color square.Color, occ square.Bitboard, moves []position.Move) []position.Move {
	rights := p.CastlingRights()
	lo, hi := 0, 2
	if color == square.Black {
		lo, hi = 2, 4
	}
	for _, flank := range castleFlanks[lo:hi] {
		if !rights.Has(flank.right) {
			continue
		}
		blocked := false
		for _, s := range flank.between {
			if occ.Has(s) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		moves = append(moves, position.NewCastle(flank.kingFrom, flank.kingTo))
	}
	return moves
}

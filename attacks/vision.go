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

// rookDirections and bishopDirections are the four rays each slider casts.
var rookDirections = [4]square.Direction{square.North, square.South, square.East, square.West}
var bishopDirections = [4]square.Direction{square.Northeast, square.Northwest, square.Southeast, square.Southwest}

// RookMask returns the relevant-occupancy mask for a rook on sq: its rays
// with the piece's own square and the terminal edge square on each ray
// excluded, since occupancy there cannot change which squares are attackable
// short of the edge.
func RookMask(sq square.Square) square.Bitboard {
	return slidingRay(rookDirections, sq, square.Empty_Bb, true)
}

// BishopMask returns the relevant-occupancy mask for a bishop on sq,
// analogous to RookMask.
func BishopMask(sq square.Square) square.Bitboard {
	return slidingRay(bishopDirections, sq, square.Empty_Bb, true)
}

// RookRayAttacks computes the reference rook attack set from sq given a
// blocker set, by walking each ray one step at a time and stopping after
// including the first blocked square. This is the oracle magic lookups must
// match.
func RookRayAttacks(sq square.Square, blockers square.Bitboard) square.Bitboard {
	return slidingRay(rookDirections, sq, blockers, false)
}

// BishopRayAttacks is the bishop analogue of RookRayAttacks.
func BishopRayAttacks(sq square.Square, blockers square.Bitboard) square.Bitboard {
	return slidingRay(bishopDirections, sq, blockers, false)
}

// slidingRay walks each of the 4 directions from sq. When excludeEdge is
// true it builds a vision mask (stop one square before the board edge,
// blockers ignored). When false it builds a reference attack set (stop at
// and include the first square set in blockers, or at the board edge).
func slidingRay(dirs [4]square.Direction, sq square.Square, blockers square.Bitboard, excludeEdge bool) square.Bitboard {
	var result square.Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			if excludeEdge && isEdgeInDirection(next, d) {
				break
			}
			result = result.Set(next)
			if blockers.Has(next) {
				break
			}
			s = next
		}
	}
	return result
}

// isEdgeInDirection reports whether sq is the last square reachable in
// direction d, i.e. stepping again would leave the board.
func isEdgeInDirection(sq square.Square, d square.Direction) bool {
	return !sq.To(d).IsValid()
}

// EnumerateBlockers invokes visit on every subset of the vision mask for
// (sq, piece), each exactly once.
func EnumerateBlockers(sq square.Square, piece square.PieceKind, visit func(square.Bitboard)) {
	var mask square.Bitboard
	switch piece {
	case square.Rook:
		mask = RookMask(sq)
	case square.Bishop:
		mask = BishopMask(sq)
	default:
		return
	}
	square.EnumerateSubsets(mask, visit)
}

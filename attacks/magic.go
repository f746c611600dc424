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

// Package attacks implements the leaper attack tables, sliding-ray oracle,
// and magic-bitboard subsystem: the precomputed per-square hash multipliers
// that map blocker subsets to attack bitboards for rooks and bishops.
package attacks

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/anvik/chesscore/internal/clog"
	"github.com/anvik/chesscore/internal/xrand"
	"github.com/anvik/chesscore/square"
)

var log = clog.GetLog("attacks")

// maxSearchAttempts bounds the magic search per square, per spec.
const maxSearchAttempts = 1_000_000

// Magic holds the magic-bitboard lookup for one slider on one square.
type Magic struct {
	Mask   square.Bitboard
	Number uint64
	Shift  uint
	Table  []square.Bitboard
}

func (m *Magic) index(occ square.Bitboard) uint64 {
	masked := uint64(occ & m.Mask)
	return (masked * m.Number) >> m.Shift
}

// Attacks returns the precomputed attack bitboard for the given occupancy.
func (m *Magic) Attacks(occ square.Bitboard) square.Bitboard {
	return m.Table[m.index(occ)]
}

// Tables holds the full rook and bishop magic tables, one entry per square
// per slider. Built once via Build* and treated as read-only thereafter; it
// is safe to share across goroutines for concurrent lookups.
type Tables struct {
	Rook   [square.Count]Magic
	Bishop [square.Count]Magic
}

// RookAttacks looks up the rook attack bitboard from sq given occupancy occ.
func (t *Tables) RookAttacks(sq square.Square, occ square.Bitboard) square.Bitboard {
	return t.Rook[sq].Attacks(occ)
}

// BishopAttacks looks up the bishop attack bitboard from sq given occ.
func (t *Tables) BishopAttacks(sq square.Square, occ square.Bitboard) square.Bitboard {
	return t.Bishop[sq].Attacks(occ)
}

// QueenAttacks is the bitwise union of the rook and bishop attack sets.
func (t *Tables) QueenAttacks(sq square.Square, occ square.Bitboard) square.Bitboard {
	return t.RookAttacks(sq, occ) | t.BishopAttacks(sq, occ)
}

// MagicSearchExhausted reports that no magic number was found for a square
// within the attempt cap.
type MagicSearchExhausted struct {
	Square square.Square
	Piece  square.PieceKind
}

func (e *MagicSearchExhausted) Error() string {
	return fmt.Sprintf("attacks: magic search exhausted for %s %s after %d attempts",
		pieceName(e.Piece), e.Square, maxSearchAttempts)
}

func pieceName(pk square.PieceKind) string {
	if pk == square.Rook {
		return "rook"
	}
	return "bishop"
}

// refAttacksFunc is implemented by RookRayAttacks and BishopRayAttacks.
type refAttacksFunc func(sq square.Square, blockers square.Bitboard) square.Bitboard

// BuildSeeded builds rook and bishop tables deterministically from seed: the
// same seed always yields byte-identical tables, independent of machine or
// goroutine scheduling, since each square's search is seeded from a
// per-square derivation of the root seed rather than a shared stream.
func BuildSeeded(seed uint64) (*Tables, error) {
	return build(func(sq square.Square, piece square.PieceKind) *xrand.Source {
		return xrand.New(seed ^ perSquareSalt(sq, piece))
	})
}

// BuildRandom builds tables from an entropy-seeded source; not reproducible
// across runs.
func BuildRandom() (*Tables, error) {
	root, err := entropySeed()
	if err != nil {
		return nil, err
	}
	return BuildSeeded(root)
}

// perSquareSalt derives a distinct per-(square,piece) seed from the root
// seed so that squares searched concurrently never share RNG state.
func perSquareSalt(sq square.Square, piece square.PieceKind) uint64 {
	salt := uint64(sq)<<1 | uint64(boolToUint(piece == square.Bishop))
	// splitmix64-style scramble so adjacent squares don't produce adjacent seeds.
	salt = (salt ^ (salt >> 30)) * 0xBF58476D1CE4E5B9
	salt = (salt ^ (salt >> 27)) * 0x94D049BB133111EB
	return salt ^ (salt >> 31)
}

func boolToUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// entropySeed draws a root seed from the OS CSPRNG. Used only by
// BuildRandom; the reproducible path (BuildSeeded, and cmd/genmagic's
// "seeded" source) never calls this.
func entropySeed() (uint64, error) {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("attacks: read entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// build fans the 128 independent (square, piece) searches out across an
// errgroup bounded by GOMAXPROCS, mirroring the teacher's use of
// golang.org/x/sync to bound concurrent work rather than spawn unbounded
// goroutines. Each search is pure and writes only its own Tables slot, so no
// further synchronization is required.
func build(rngFor func(square.Square, square.PieceKind) *xrand.Source) (*Tables, error) {
	t := &Tables{}
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for sq := square.SqA1; sq <= square.SqH8; sq++ {
		sq := sq
		g.Go(func() error {
			m, err := buildEntry(sq, square.Rook, RookMask(sq), RookRayAttacks, rngFor(sq, square.Rook))
			if err != nil {
				return err
			}
			t.Rook[sq] = m
			return nil
		})
		g.Go(func() error {
			m, err := buildEntry(sq, square.Bishop, BishopMask(sq), BishopRayAttacks, rngFor(sq, square.Bishop))
			if err != nil {
				return err
			}
			t.Bishop[sq] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debugf("built magic tables: rook+bishop, %d squares each", square.Count)
	return t, nil
}

// buildEntry runs the randomized magic search for one (square, piece),
// enumerating every blocker subset of mask once up front and re-validating
// each candidate against the reference ray-scan attacks.
func buildEntry(sq square.Square, piece square.PieceKind, mask square.Bitboard, ref refAttacksFunc, rng *xrand.Source) (Magic, error) {
	size := 1 << mask.PopCount()
	occupancy := make([]square.Bitboard, 0, size)
	reference := make([]square.Bitboard, 0, size)
	square.EnumerateSubsets(mask, func(b square.Bitboard) {
		occupancy = append(occupancy, b)
		reference = append(reference, ref(sq, b))
	})

	shift := uint(64 - mask.PopCount())
	table := make([]square.Bitboard, size)
	epoch := make([]int, size)

	for attempt := 1; attempt <= maxSearchAttempts; attempt++ {
		candidate := rng.Sparse64()
		// Magic numbers that don't spread the top byte's bits widely tend to
		// collide more; the popcount filter is the teacher's own
		// fast-reject heuristic before the full validation pass.
		if square.Bitboard(uint64(mask)*candidate>>56).PopCount() < 6 {
			continue
		}

		ok := true
		for i, occ := range occupancy {
			idx := (uint64(occ) * candidate) >> shift
			if epoch[idx] != attempt {
				epoch[idx] = attempt
				table[idx] = reference[i]
			} else if table[idx] != reference[i] {
				ok = false
				break
			}
		}
		if ok {
			return Magic{Mask: mask, Number: candidate, Shift: shift, Table: table}, nil
		}
	}
	return Magic{}, &MagicSearchExhausted{Square: sq, Piece: piece}
}

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

package movegen

import (
	"fmt"
	"regexp"

	"github.com/anvik/chesscore/attacks"
	"github.com/anvik/chesscore/position"
	"github.com/anvik/chesscore/square"
)

// uciPattern matches a long-algebraic move token: two squares and an
// optional lower-case promotion letter, grounded on the teacher's
// pkg/movegen regex move matcher.
var uciPattern = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([nbrq])?$`)

// ParseUCIMove resolves a UCI long-algebraic move string (e.g. "e2e4",
// "e7e8q") against the pseudo-legal moves available in p, returning the
// matching Move. Supplements the generator's internal Move value with the
// external string form a GUI or protocol layer needs, since spec.md defines
// Move only as an internal type.
func ParseUCIMove(p *position.Position, t *attacks.Tables, s string) (position.Move, error) {
	m := uciPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("movegen: %q does not match a uci move pattern", s)
	}
	from, err := square.Parse(m[1])
	if err != nil {
		return 0, fmt.Errorf("movegen: %w", err)
	}
	to, err := square.Parse(m[2])
	if err != nil {
		return 0, fmt.Errorf("movegen: %w", err)
	}
	var wantPromo square.PieceKind
	hasPromo := m[3] != ""
	if hasPromo {
		switch m[3] {
		case "n":
			wantPromo = square.Knight
		case "b":
			wantPromo = square.Bishop
		case "r":
			wantPromo = square.Rook
		case "q":
			wantPromo = square.Queen
		}
	}

	for _, candidate := range Generate(p, t, make([]position.Move, 0, MaxMoves)) {
		if candidate.From() != from || candidate.To() != to {
			continue
		}
		promo, isPromo := candidate.Promotion()
		if isPromo != hasPromo {
			continue
		}
		if isPromo && promo != wantPromo {
			continue
		}
		return candidate, nil
	}
	return 0, fmt.Errorf("movegen: %q is not a pseudo-legal move in this position", s)
}

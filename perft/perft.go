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

// Package perft counts pseudo-legal move tree leaves from a starting
// position to a fixed depth, the standard debugging tool for a move
// generator. It is a supplemental feature beyond the generator's own
// contract, grounded on the teacher's movegen.Perft, with its check and
// checkmate counters dropped: this core does not filter for king safety, so
// "check" is not a concept it can report on.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anvik/chesscore/attacks"
	"github.com/anvik/chesscore/internal/clog"
	"github.com/anvik/chesscore/movegen"
	"github.com/anvik/chesscore/position"
)

var log = clog.GetLog("perft")
var out = message.NewPrinter(language.English)

// Result tallies one depth's leaf counts.
type Result struct {
	Depth      int
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Elapsed    time.Duration
}

// NPS returns nodes searched per second.
func (r Result) NPS() uint64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return uint64(float64(r.Nodes) / r.Elapsed.Seconds())
}

// Run walks the pseudo-legal move tree from p to depth, returning leaf
// counts. p is mutated and restored via Make/Unmake during the walk and is
// byte-equal to its input once Run returns.
func Run(p *position.Position, t *attacks.Tables, depth int) Result {
	if depth < 1 {
		depth = 1
	}
	start := time.Now()
	var r Result
	r.Depth = depth
	walk(p, t, depth, &r)
	r.Elapsed = time.Since(start)
	return r
}

func walk(p *position.Position, t *attacks.Tables, depth int, r *Result) {
	moves := movegen.Generate(p, t, make([]position.Move, 0, movegen.MaxMoves))
	for _, m := range moves {
		if depth > 1 {
			u := p.Make(m)
			walk(p, t, depth-1, r)
			p.Unmake(u)
			continue
		}
		u := p.Make(m)
		r.Nodes++
		if m.IsEnPassant() {
			r.EnPassants++
			r.Captures++
		} else if m.IsCapture() {
			r.Captures++
		}
		if m.IsCastling() {
			r.Castles++
		}
		if _, ok := m.Promotion(); ok {
			r.Promotions++
		}
		p.Unmake(u)
	}
}

// RunReport is Run with the teacher's formatted progress/summary printed to
// stdout as it goes, for interactive use from cmd/genmagic -perft.
func RunReport(p *position.Position, t *attacks.Tables, depth int) Result {
	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("-----------------------------------------\n")
	r := Run(p, t, depth)
	out.Printf("Time         : %d ms\n", r.Elapsed.Milliseconds())
	out.Printf("NPS          : %d nps\n", r.NPS())
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", r.Nodes)
	out.Printf("   Captures  : %d\n", r.Captures)
	out.Printf("   EnPassant : %d\n", r.EnPassants)
	out.Printf("   Castles   : %d\n", r.Castles)
	out.Printf("   Promotions: %d\n", r.Promotions)
	out.Printf("-----------------------------------------\n")
	log.Debugf("perft depth %d: %d nodes in %s", depth, r.Nodes, r.Elapsed)
	return r
}

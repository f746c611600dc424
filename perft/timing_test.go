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

package perft_test

import (
	"testing"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/require"

	"github.com/anvik/chesscore/attacks"
	"github.com/anvik/chesscore/perft"
	"github.com/anvik/chesscore/position"
)

// TestTiming_PerftDepth4 profiles a deeper perft walk, the teacher's usual
// target for CPU profiling (movegen/perft_test.go exercises exactly this
// depth range). Skipped under -short.
func TestTiming_PerftDepth4(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft timing in -short mode")
	}
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()

	tbl, err := attacks.BuildSeeded(0x45)
	require.NoError(t, err)
	p := position.StartingPosition()

	r := perft.RunReport(p, tbl, 4)
	// Pseudo-legal counts are a superset of the textbook legal-move perft
	// table (no king-safety filter here, per spec), so only a loose lower
	// bound is asserted rather than the well-known exact legal-move count.
	require.GreaterOrEqual(t, r.Nodes, uint64(197281))
}

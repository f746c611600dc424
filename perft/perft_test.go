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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvik/chesscore/attacks"
	"github.com/anvik/chesscore/perft"
	"github.com/anvik/chesscore/position"
)

func TestPerftStartingPositionDepth1And2(t *testing.T) {
	tbl, err := attacks.BuildSeeded(0x45)
	require.NoError(t, err)
	p := position.StartingPosition()

	r1 := perft.Run(p, tbl, 1)
	assert.Equal(t, uint64(20), r1.Nodes)

	r2 := perft.Run(p, tbl, 2)
	assert.Equal(t, uint64(400), r2.Nodes)
}

func TestPerftRestoresPositionAfterRun(t *testing.T) {
	tbl, err := attacks.BuildSeeded(0x45)
	require.NoError(t, err)
	p := position.StartingPosition()
	before := p.FEN()

	perft.Run(p, tbl, 3)
	assert.Equal(t, before, p.FEN())
}

func TestPerftCountsCastlesAndPromotions(t *testing.T) {
	tbl, err := attacks.BuildSeeded(0x45)
	require.NoError(t, err)
	p, err := position.ParseFEN("r3k2r/2P5/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	r := perft.Run(p, tbl, 1)
	assert.EqualValues(t, 2, r.Castles, "both white castles are available and unobstructed")
	assert.EqualValues(t, 4, r.Promotions, "the c7 pawn's push to c8 yields 4 promotions")
}

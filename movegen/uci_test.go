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

package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvik/chesscore/movegen"
	"github.com/anvik/chesscore/position"
	"github.com/anvik/chesscore/square"
)

func TestParseUCIMoveQuiet(t *testing.T) {
	p := position.StartingPosition()
	m, err := movegen.ParseUCIMove(p, tables(t), "e2e4")
	require.NoError(t, err)
	assert.Equal(t, square.SqE2, m.From())
	assert.Equal(t, square.SqE4, m.To())
}

func TestParseUCIMovePromotion(t *testing.T) {
	p, err := position.ParseFEN("4k3/3P4/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m, err := movegen.ParseUCIMove(p, tables(t), "d7d8q")
	require.NoError(t, err)
	promo, ok := m.Promotion()
	require.True(t, ok)
	assert.Equal(t, square.Queen, promo)
}

func TestParseUCIMoveRejectsMalformed(t *testing.T) {
	p := position.StartingPosition()
	_, err := movegen.ParseUCIMove(p, tables(t), "zz99")
	assert.Error(t, err)
}

func TestParseUCIMoveRejectsPseudoIllegal(t *testing.T) {
	p := position.StartingPosition()
	_, err := movegen.ParseUCIMove(p, tables(t), "e2e5")
	assert.Error(t, err)
}

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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvik/chesscore/square"
)

func TestFenRoundTripStartingPosition(t *testing.T) {
	const fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	p, err := ParseFEN(fen)
	require.NoError(t, err)
	assert.Equal(t, fen, p.FEN())
}

func TestFenRoundTripEmptyBoard(t *testing.T) {
	const fen = "8/8/8/8/8/8/8/8 w - - 0 1"
	p, err := ParseFEN(fen)
	require.NoError(t, err)
	assert.Equal(t, fen, p.FEN())
}

func TestFenRejectsWrongFieldCount(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/8 w - -")
	require.Error(t, err)
	assert.IsType(t, &FenError{}, err)
}

func TestFenRejectsShortRank(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/7 w - - 0 1")
	require.Error(t, err)
}

func TestFenRejectsBadActiveColor(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/8 x - - 0 1")
	require.Error(t, err)
}

func TestFenParsesCastlingAndEnPassant(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.True(t, p.CastlingRights().Has(square.CastlingWhiteKingside))
	assert.True(t, p.CastlingRights().Has(square.CastlingBlackQueenside))
	assert.Equal(t, square.SqNone, p.EnPassant())

	p2, err := ParseFEN("8/8/8/3pP3/8/8/8/8 w - d6 0 1")
	require.NoError(t, err)
	assert.Equal(t, square.SqD6, p2.EnPassant())
}

func TestFenParseDoesNotMutateOnError(t *testing.T) {
	p, err := ParseFEN("not a fen")
	require.Error(t, err)
	assert.Nil(t, p, "a failed parse returns no partially built position")
}

func TestFenPlacementDecodesExpectedPieces(t *testing.T) {
	p, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, square.MakePiece(square.White, square.Rook), p.PieceOn(square.SqA1))
	assert.Equal(t, square.MakePiece(square.Black, square.King), p.PieceOn(square.SqE8))
	assert.Equal(t, square.Empty, p.PieceOn(square.SqE4))
}

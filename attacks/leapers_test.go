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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvik/chesscore/square"
)

func TestKnightAttacksCorners(t *testing.T) {
	assert.Equal(t, 2, KnightAttacks[square.SqA1].PopCount())
	assert.True(t, KnightAttacks[square.SqA1].Has(square.SqB3))
	assert.True(t, KnightAttacks[square.SqA1].Has(square.SqC2))
}

func TestKnightAttacksCenter(t *testing.T) {
	assert.Equal(t, 8, KnightAttacks[square.SqD4].PopCount())
}

func TestKingAttacksCorner(t *testing.T) {
	assert.Equal(t, 3, KingAttacks[square.SqH8].PopCount())
}

func TestKingAttacksCenter(t *testing.T) {
	assert.Equal(t, 8, KingAttacks[square.SqD4].PopCount())
}

func TestPawnAttacksDiagonalOnly(t *testing.T) {
	white := PawnAttacks[square.White][square.SqE4]
	assert.Equal(t, 2, white.PopCount())
	assert.True(t, white.Has(square.SqD5))
	assert.True(t, white.Has(square.SqF5))

	black := PawnAttacks[square.Black][square.SqE4]
	assert.True(t, black.Has(square.SqD3))
	assert.True(t, black.Has(square.SqF3))
}

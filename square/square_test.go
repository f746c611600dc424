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

package square

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeAndDecompose(t *testing.T) {
	s := Make(FileE, Rank4)
	assert.Equal(t, FileE, s.File())
	assert.Equal(t, Rank4, s.Rank())
	assert.Equal(t, "e4", s.String())
}

func TestParse(t *testing.T) {
	s, err := Parse("E4")
	assert.NoError(t, err)
	assert.Equal(t, Make(FileE, Rank4), s)

	_, err = Parse("i4")
	assert.Error(t, err)

	_, err = Parse("e9")
	assert.Error(t, err)

	_, err = Parse("e")
	assert.Error(t, err)
}

func TestToEdges(t *testing.T) {
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqA4.To(West))
	assert.Equal(t, SqNone, SqA8.To(North))
	assert.Equal(t, SqNone, SqH1.To(South))
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqNone, SqH8.To(Northeast))
	assert.Equal(t, SqG7, SqH8.To(Southwest))
}

func TestIsValid(t *testing.T) {
	assert.True(t, SqA1.IsValid())
	assert.True(t, SqH8.IsValid())
	assert.False(t, SqNone.IsValid())
}

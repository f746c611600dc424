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

package xrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext64IsDeterministicForSeed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next64(), b.Next64())
	}
}

func TestNext64VariesAcrossSeeds(t *testing.T) {
	a := New(1)
	b := New(2)
	assert.NotEqual(t, a.Next64(), b.Next64())
}

func TestZeroSeedIsRemapped(t *testing.T) {
	a := New(0)
	b := New(0)
	assert.Equal(t, a.Next64(), b.Next64())
	assert.NotZero(t, a.Next64())
}

func TestSparse64BiasesLowPopcount(t *testing.T) {
	r := New(12345)
	var total int
	const trials = 200
	for i := 0; i < trials; i++ {
		v := r.Sparse64()
		for v != 0 {
			v &= v - 1
			total++
		}
	}
	avg := float64(total) / float64(trials)
	assert.Less(t, avg, 32.0, "AND of three draws should average well under 32 set bits")
}

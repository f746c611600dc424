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

// Package xrand provides the seedable xorshift64star generator the magic
// search uses, so that a seeded build is reproducible independent of the
// host's math/rand global state.
package xrand

// Source is a xorshift64star pseudo-random generator. Based on the public
// domain design by Sebastiano Vigna (2014): a single 64-bit state word,
// period 2^64-1, no warm-up required.
type Source struct {
	s uint64
}

// New creates a generator seeded with the given 64-bit value. A zero seed is
// remapped to a fixed non-zero constant since the all-zero state never
// advances.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &Source{s: seed}
}

// Next64 returns the next 64-bit pseudo-random value.
func (r *Source) Next64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Sparse64 returns a value with roughly 1/8th of its bits set on average,
// biasing magic-number candidates toward low Hamming weight. Matches the
// search heuristic of AND-ing three independent draws together.
func (r *Source) Sparse64() uint64 {
	return r.Next64() & r.Next64() & r.Next64()
}

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

// Package square holds the board-identity primitives: squares, files,
// ranks, colors, piece kinds and bitboards, along with the bit-twiddling
// helpers the rest of the engine builds on.
package square

import (
	"fmt"
	"strings"
)

// Square identifies one of the 64 board squares as rank*8+file.
type Square uint8

// File identifies a board file, 0 ('a') through 7 ('h').
type File uint8

// Rank identifies a board rank, 0 ('1') through 7 ('8').
type Rank uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// SqA1 .. SqH8 name every square in rank-major order.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	// SqNone is a sentinel outside [0,63]; never a valid operand.
	SqNone Square = 64
)

// Count is the number of squares on a board.
const Count = 64

// IsValid reports whether f is a file in [0,7].
func (f File) IsValid() bool { return f <= FileH }

// IsValid reports whether r is a rank in [0,7].
func (r Rank) IsValid() bool { return r <= Rank8 }

// String renders a file as its letter, "a".."h".
func (f File) String() string {
	return string(rune('a' + f))
}

// String renders a rank as its digit, "1".."8".
func (r Rank) String() string {
	return string(rune('1' + r))
}

// Make builds the square at the given file and rank.
func Make(f File, r Rank) Square {
	return Square(uint8(r)<<3 | uint8(f))
}

// IsValid reports whether sq lies in [0,63].
func (sq Square) IsValid() bool {
	return sq < 64
}

// File returns the square's file.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// String renders the square in algebraic form, e.g. "e4", or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// Parse reads a two-character square string ("e4", case-insensitive on the
// file letter) and returns SqNone if it does not denote a valid square.
func Parse(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, &ParseError{Input: s, Reason: "square must be exactly 2 characters"}
	}
	fc := strings.ToLower(s[:1])[0]
	rc := s[1]
	if fc < 'a' || fc > 'h' {
		return SqNone, &ParseError{Input: s, Reason: "file out of range a-h"}
	}
	if rc < '1' || rc > '8' {
		return SqNone, &ParseError{Input: s, Reason: "rank out of range 1-8"}
	}
	return Make(File(fc-'a'), Rank(rc-'1')), nil
}

// ParseError reports a malformed square token.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("square: invalid token %q: %s", e.Input, e.Reason)
}

// Direction is a signed square delta usable with Square.To.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West
)

// To steps one square in direction d, returning SqNone on board overflow or
// file wraparound. East-West overflow is checked explicitly; North-South
// overflow is caught by the final range check since stepping off the top or
// bottom edge always pushes the 8-bit sum outside [0,63].
func (sq Square) To(d Direction) Square {
	switch d {
	case East, Northeast, Southeast:
		if sq.File() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.File() == FileA {
			return SqNone
		}
	}
	n := int8(sq) + int8(d)
	if n < 0 || n > 63 {
		return SqNone
	}
	return Square(n)
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1, f2 File) int {
	return abs(int(f1) - int(f2))
}

// RankDistance returns the absolute distance in ranks between r1 and r2.
func RankDistance(r1, r2 Rank) int {
	return abs(int(r1) - int(r2))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

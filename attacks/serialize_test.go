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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvik/chesscore/square"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want, err := BuildSeeded(0x45)
	require.NoError(t, err)

	blob, err := want.EncodeBytes()
	require.NoError(t, err)

	got, err := DecodeBytes(blob)
	require.NoError(t, err)

	for sq := square.SqA1; sq <= square.SqH8; sq++ {
		assert.Equal(t, want.Rook[sq], got.Rook[sq])
		assert.Equal(t, want.Bishop[sq], got.Bishop[sq])
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{0, 0, 0, 0, 1}))
	require.Error(t, err)
	assert.IsType(t, &MagicBlobCorrupt{}, err)
}

func TestDecodeRejectsTruncation(t *testing.T) {
	tables, err := BuildSeeded(0x45)
	require.NoError(t, err)
	blob, err := tables.EncodeBytes()
	require.NoError(t, err)

	_, err = Decode(bytes.NewReader(blob[:len(blob)/2]))
	require.Error(t, err)
	assert.IsType(t, &MagicBlobCorrupt{}, err)
}

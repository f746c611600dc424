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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/anvik/chesscore/square"
)

// blobMagic and blobVersion prefix every serialized table, so a loader can
// reject files from an incompatible format revision before trusting lengths
// read from the rest of the stream.
const (
	blobMagic   uint32 = 0x4D414731 // "MAG1"
	blobVersion uint8  = 1
)

// MagicBlobCorrupt reports a serialized table that failed to parse: a bad
// magic/version prefix, a truncated stream, or a length field that doesn't
// match the bytes actually present.
type MagicBlobCorrupt struct {
	Reason string
}

func (e *MagicBlobCorrupt) Error() string {
	return fmt.Sprintf("attacks: corrupt magic table blob: %s", e.Reason)
}

// Encode writes t in the little-endian binary format from spec.md §4.F: a
// magic/version prefix, then for each of rook and bishop, 64 entries of
// (magic number u64, shift u32, table length u32, table length × u64). The
// mask does not ride on the wire — it's a pure function of (square, piece)
// and Decode recomputes it.
func (t *Tables) Encode(w io.Writer) error {
	bw := &binWriter{w: w}
	bw.u32(blobMagic)
	bw.u8(blobVersion)
	for sq := square.SqA1; sq <= square.SqH8 && bw.err == nil; sq++ {
		bw.writeMagic(&t.Rook[sq])
	}
	for sq := square.SqA1; sq <= square.SqH8 && bw.err == nil; sq++ {
		bw.writeMagic(&t.Bishop[sq])
	}
	return bw.err
}

// Decode reads a blob written by Encode. It never partially populates its
// result: on any error the returned *Tables is nil.
func Decode(r io.Reader) (*Tables, error) {
	br := &binReader{r: r}
	magic := br.u32()
	version := br.u8()
	if br.err != nil {
		return nil, &MagicBlobCorrupt{Reason: "truncated header"}
	}
	if magic != blobMagic {
		return nil, &MagicBlobCorrupt{Reason: "bad magic prefix"}
	}
	if version != blobVersion {
		return nil, &MagicBlobCorrupt{Reason: fmt.Sprintf("unsupported version %d", version)}
	}

	t := &Tables{}
	for sq := square.SqA1; sq <= square.SqH8 && br.err == nil; sq++ {
		t.Rook[sq] = br.readMagic(RookMask(sq))
	}
	for sq := square.SqA1; sq <= square.SqH8 && br.err == nil; sq++ {
		t.Bishop[sq] = br.readMagic(BishopMask(sq))
	}
	if br.err != nil {
		return nil, &MagicBlobCorrupt{Reason: br.err.Error()}
	}
	if extra, _ := io.ReadFull(br.r, make([]byte, 1)); extra != 0 {
		return nil, &MagicBlobCorrupt{Reason: "trailing bytes after last table"}
	}
	return t, nil
}

// EncodeBytes is a convenience wrapper around Encode for callers that want
// an in-memory blob, e.g. to embed via go:embed.
func (t *Tables) EncodeBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBytes is the inverse of EncodeBytes.
func DecodeBytes(b []byte) (*Tables, error) {
	return Decode(bytes.NewReader(b))
}

type binWriter struct {
	w   io.Writer
	err error
}

func (bw *binWriter) u8(v uint8) {
	if bw.err != nil {
		return
	}
	_, bw.err = bw.w.Write([]byte{v})
}

func (bw *binWriter) u32(v uint32) {
	if bw.err != nil {
		return
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, bw.err = bw.w.Write(buf[:])
}

func (bw *binWriter) u64(v uint64) {
	if bw.err != nil {
		return
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, bw.err = bw.w.Write(buf[:])
}

func (bw *binWriter) writeMagic(m *Magic) {
	bw.u64(m.Number)
	bw.u32(uint32(m.Shift))
	bw.u32(uint32(len(m.Table)))
	for _, bb := range m.Table {
		bw.u64(uint64(bb))
	}
}

type binReader struct {
	r   io.Reader
	err error
}

func (br *binReader) u8() uint8 {
	if br.err != nil {
		return 0
	}
	var buf [1]byte
	if _, br.err = io.ReadFull(br.r, buf[:]); br.err != nil {
		return 0
	}
	return buf[0]
}

func (br *binReader) u32() uint32 {
	if br.err != nil {
		return 0
	}
	var buf [4]byte
	if _, br.err = io.ReadFull(br.r, buf[:]); br.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(buf[:])
}

func (br *binReader) u64() uint64 {
	if br.err != nil {
		return 0
	}
	var buf [8]byte
	if _, br.err = io.ReadFull(br.r, buf[:]); br.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func (br *binReader) readMagic(mask square.Bitboard) Magic {
	number := br.u64()
	shift := br.u32()
	length := br.u32()
	if br.err != nil {
		return Magic{}
	}
	table := make([]square.Bitboard, length)
	for i := range table {
		table[i] = square.Bitboard(br.u64())
		if br.err != nil {
			return Magic{}
		}
	}
	return Magic{
		Mask:   mask,
		Number: number,
		Shift:  uint(shift),
		Table:  table,
	}
}

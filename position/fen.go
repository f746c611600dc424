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
	"fmt"
	"strconv"
	"strings"

	"github.com/anvik/chesscore/square"
)

// FenError reports a FEN field that failed to parse, naming the offending
// field so the caller can surface it verbatim.
type FenError struct {
	Field   string
	Message string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("position: fen: field %q: %s", e.Field, e.Message)
}

// ParseFEN parses a standard six-field FEN string into a fresh Position.
// Parsing is transactional: on any error the returned Position is nil and no
// partially built state escapes.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, &FenError{Field: "fen", Message: fmt.Sprintf("expected 6 space-separated fields, got %d", len(fields))}
	}

	p := New()
	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, err
	}
	p.syncDerived()

	switch fields[1] {
	case "w":
		p.sideToMove = square.White
	case "b":
		p.sideToMove = square.Black
	default:
		return nil, &FenError{Field: "active color", Message: fmt.Sprintf("expected 'w' or 'b', got %q", fields[1])}
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	p.castlingRights = rights

	ep, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	p.enPassant = ep

	half, err := parseUint(fields[4], "halfmove clock")
	if err != nil {
		return nil, err
	}
	p.halfmoveClock = half

	full, err := parseUint(fields[5], "fullmove number")
	if err != nil {
		return nil, err
	}
	if full < 1 {
		return nil, &FenError{Field: "fullmove number", Message: "must be >= 1"}
	}
	p.fullmoveNumber = full

	return p, nil
}

func parsePlacement(p *Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &FenError{Field: "placement", Message: fmt.Sprintf("expected 8 ranks separated by '/', got %d", len(ranks))}
	}
	for i, rankStr := range ranks {
		rank := square.Rank(7 - i)
		file := square.FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += square.File(ch - '0')
				continue
			}
			if !file.IsValid() {
				return &FenError{Field: "placement", Message: fmt.Sprintf("rank %s overruns 8 files", rank)}
			}
			piece, err := square.FromFENLetter(byte(ch))
			if err != nil {
				return &FenError{Field: "placement", Message: err.Error()}
			}
			s := square.Make(file, rank)
			bb := p.pieceBB[piece.Color()][piece.Kind()]
			p.setBB(piece.Color(), piece.Kind(), bb.Set(s))
			file++
		}
		if file != 8 {
			return &FenError{Field: "placement", Message: fmt.Sprintf("rank %s does not account for exactly 8 files", rank)}
		}
	}
	return nil
}

func parseCastling(field string) (square.CastlingRights, error) {
	if field == "-" {
		return square.CastlingNone, nil
	}
	var rights square.CastlingRights
	for _, ch := range field {
		switch ch {
		case 'K':
			rights = rights.Add(square.CastlingWhiteKingside)
		case 'Q':
			rights = rights.Add(square.CastlingWhiteQueenside)
		case 'k':
			rights = rights.Add(square.CastlingBlackKingside)
		case 'q':
			rights = rights.Add(square.CastlingBlackQueenside)
		default:
			return 0, &FenError{Field: "castling", Message: fmt.Sprintf("unexpected character %q", string(ch))}
		}
	}
	return rights, nil
}

func parseEnPassant(field string) (square.Square, error) {
	if field == "-" {
		return square.SqNone, nil
	}
	s, err := square.Parse(field)
	if err != nil {
		return square.SqNone, &FenError{Field: "en passant", Message: err.Error()}
	}
	if s.Rank() != square.Rank3 && s.Rank() != square.Rank6 {
		return square.SqNone, &FenError{Field: "en passant", Message: "target must be on rank 3 or 6"}
	}
	return s, nil
}

func parseUint(field, name string) (uint32, error) {
	v, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, &FenError{Field: name, Message: fmt.Sprintf("expected non-negative decimal, got %q", field)}
	}
	return uint32(v), nil
}

// FEN emits the canonical six-field FEN string for p. emit(parse(f)) == f
// for any canonical FEN f.
func (p *Position) FEN() string {
	var sb strings.Builder

	for r := int(square.Rank8); r >= int(square.Rank1); r-- {
		empty := 0
		for f := square.FileA; f <= square.FileH; f++ {
			pc := p.pieceOn[square.Make(f, square.Rank(r))]
			if pc == square.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > int(square.Rank1) {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())

	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())

	sb.WriteByte(' ')
	if p.enPassant == square.SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.enPassant.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(p.halfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(p.fullmoveNumber), 10))

	return sb.String()
}

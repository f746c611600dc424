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

// Command genmagic is the host binary around the magic-bitboard subsystem:
// it builds or loads MagicTables per the source/seed/persist-path options
// and, optionally, runs a perft count against them. Everything it does is
// external-collaborator plumbing (CLI flags, file I/O, logging) the core
// package itself stays free of, following the teacher's cmd/FrankyGo/main.go
// split between the engine packages and their command-line host.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anvik/chesscore/attacks"
	"github.com/anvik/chesscore/internal/clog"
	"github.com/anvik/chesscore/internal/engcfg"
	"github.com/anvik/chesscore/perft"
	"github.com/anvik/chesscore/position"
)

var out = message.NewPrinter(language.English)

func main() {
	configPath := flag.String("config", "", "path to a magic.toml configuration file")
	source := flag.String("source", "", "magic-source: embedded|seeded|random (overrides config file)")
	seed := flag.Uint64("seed", 0, "magic-seed, used when -source=seeded (overrides config file)")
	embeddedPath := flag.String("embedded", "", "path to a serialized magic blob, used when -source=embedded")
	persistPath := flag.String("persist", "", "optional path to write the built table to, used when -source=seeded (overrides config file)")
	logLvl := flag.String("loglvl", "", "log level: off|critical|error|warning|notice|info|debug (overrides config file)")
	perftDepth := flag.Int("perft", 0, "run a perft count to this depth on -fen after building tables")
	fen := flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "FEN position for -perft")
	flag.Parse()

	cfg, err := engcfg.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *source != "" {
		cfg.Magic.Source = engcfg.MagicSource(*source)
	}
	if *seed != 0 {
		cfg.Magic.Seed = *seed
	}
	if *persistPath != "" {
		cfg.Magic.PersistPath = *persistPath
	}
	if *logLvl != "" {
		cfg.Magic.LogLevel = *logLvl
	}

	if lvl, found := engcfg.LogLevels[cfg.Magic.LogLevel]; found {
		clog.SetLevel(lvl)
	}
	log := clog.GetLog("genmagic")

	var tables *attacks.Tables
	switch cfg.Magic.Source {
	case engcfg.SourceEmbedded:
		tables, err = loadEmbedded(*embeddedPath)
	case engcfg.SourceRandom:
		log.Info("building magic tables from entropy")
		tables, err = attacks.BuildRandom()
	default: // SourceSeeded, and the zero value
		log.Infof("building magic tables from seed 0x%x", cfg.Magic.Seed)
		tables, err = attacks.BuildSeeded(cfg.Magic.Seed)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Magic.Source == engcfg.SourceSeeded && cfg.Magic.PersistPath != "" {
		if err := persist(tables, cfg.Magic.PersistPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		out.Printf("wrote magic table blob to %s\n", cfg.Magic.PersistPath)
	}

	if *perftDepth > 0 {
		p, err := position.ParseFEN(*fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		perft.RunReport(p, tables, *perftDepth)
	}
}

func loadEmbedded(path string) (*attacks.Tables, error) {
	if path == "" {
		return nil, fmt.Errorf("genmagic: -embedded requires a path when -source=embedded")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("genmagic: open %s: %w", path, err)
	}
	defer f.Close()
	return attacks.Decode(f)
}

func persist(t *attacks.Tables, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("genmagic: create %s: %w", path, err)
	}
	defer f.Close()
	return t.Encode(f)
}

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

// Package engcfg loads the TOML configuration recognized by the magic-table
// host binary (cmd/genmagic), following the teacher's config package
// (github.com/BurntSushi/toml, leave-defaults-on-absence semantics).
package engcfg

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MagicSource selects how a host program obtains its magic tables.
type MagicSource string

const (
	SourceEmbedded MagicSource = "embedded"
	SourceSeeded   MagicSource = "seeded"
	SourceRandom   MagicSource = "random"
)

// Config mirrors the [magic] TOML table shown in SPEC_FULL.md §1.2.
type Config struct {
	Magic struct {
		Source      MagicSource `toml:"source"`
		Seed        uint64      `toml:"seed"`
		PersistPath string      `toml:"persist_path"`
		LogLevel    string      `toml:"log_level"`
	} `toml:"magic"`
}

// Default returns the configuration used when no file is provided: a
// reproducible seeded build, not persisted, logged at "info".
func Default() Config {
	var c Config
	c.Magic.Source = SourceSeeded
	c.Magic.Seed = 0x45
	c.Magic.LogLevel = "info"
	return c
}

// Load reads path as TOML into Default()'s config, leaving any field the
// file omits at its default value. An empty path returns the defaults
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("engcfg: decode %s: %w", path, err)
	}
	return cfg, nil
}

// LogLevels maps config file level names to op/go-logging levels, matching
// the teacher's config.LogLevels table.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

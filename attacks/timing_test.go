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
	"time"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/require"

	"github.com/anvik/chesscore/square"
)

// TestTiming_MagicBuild profiles a single magic-table build, following the
// teacher's habit of wrapping expensive one-shot operations in a CPU
// profile during development (see evaluator/attacks_test.go's
// Test_TimingNonPawnAttacks). Skipped under -short since it isn't part of
// the ordinary correctness suite.
func TestTiming_MagicBuild(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping magic-build timing in -short mode")
	}
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()

	start := time.Now()
	tables, err := BuildSeeded(0x45)
	require.NoError(t, err)
	elapsed := time.Since(start)

	log.Infof("magic build: %s for %d squares", elapsed, square.Count)
	require.NotNil(t, tables)
}

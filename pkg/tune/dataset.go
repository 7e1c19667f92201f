// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tune implements a texel-style tuner for the classical
// evaluator's scalar terms, and the small fixed position suite used by
// the bench command.
package tune

import (
	"io"
	"os"

	"github.com/notnil/chess"
)

// Sample is one labeled training position: a FEN and the game-theoretic
// result of the game it was taken from, from white's perspective (1 for
// a white win, 0 for a black win, 0.5 for a draw).
type Sample struct {
	FEN    string
	Result float64
}

// LoadDataset reads every position of every game in the PGN file at path
// into a labeled Sample.
func LoadDataset(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ScanDataset(f)
}

// ScanDataset reads a PGN game stream and expands each game into one
// Sample per position reached in it, all labeled with that game's final
// result.
func ScanDataset(r io.Reader) ([]Sample, error) {
	var samples []Sample

	scanner := chess.NewScanner(r)
	for scanner.Scan() {
		game := scanner.Next()
		result := resultOf(game.Outcome())

		for _, position := range game.Positions() {
			samples = append(samples, Sample{
				FEN:    position.String(),
				Result: result,
			})
		}
	}

	return samples, nil
}

// resultOf converts a finished game's outcome into a white-perspective
// training label. An undecided outcome (an adjudicated or truncated game)
// is treated as a draw, since it carries no reliable signal either way.
func resultOf(outcome chess.Outcome) float64 {
	switch outcome {
	case chess.WhiteWon:
		return 1
	case chess.BlackWon:
		return 0
	default:
		return 0.5
	}
}

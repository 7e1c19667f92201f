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

package classical_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search/eval/classical"
)

func TestEvaluateStartingPosition(t *testing.T) {
	b := board.New("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if e := classical.Evaluate(b, nil); e != 0 {
		t.Errorf("starting position should be exactly balanced, got %d", e)
	}
}

func TestEvaluateSideToMoveRelative(t *testing.T) {
	// a position and the same position with the side to move flipped
	// (and no other change) should evaluate to scores that are negatives
	// of each other, since Evaluate is defined relative to the side to
	// move.
	tests := []struct{ white, black string }{
		{
			"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/2N5/PPPP1PPP/R1BQKBNR w KQkq - 2 3",
			"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/2N5/PPPP1PPP/R1BQKBNR b KQkq - 2 3",
		},
	}

	for _, test := range tests {
		w := classical.Evaluate(board.New(test.white), nil)
		b := classical.Evaluate(board.New(test.black), nil)
		if w != -b {
			t.Errorf("Evaluate(%q) = %d, Evaluate(%q) = %d; want negatives of each other", test.white, w, test.black, b)
		}
	}
}

func TestEvaluateWithAndWithoutPawnHash(t *testing.T) {
	fen := "rnbqkb1r/pp3ppp/4pn2/2pp4/3P4/2N1P3/PPP2PPP/R1BQKBNR w KQkq - 0 5"
	b := board.New(fen)

	hash := classical.NewPawnHash(4)

	direct := classical.Evaluate(b, nil)
	cached := classical.Evaluate(b, hash)
	if direct != cached {
		t.Errorf("pawn hash changed the evaluation: %d (nil) vs %d (hash)", direct, cached)
	}

	// evaluating twice through the same hash must hit the cached entry
	// and return the identical value.
	again := classical.Evaluate(b, hash)
	if cached != again {
		t.Errorf("second evaluation through the same pawn hash returned %d, want %d", again, cached)
	}
}

func TestTunableMatchesTerms(t *testing.T) {
	if len(classical.Tunable) == 0 {
		t.Fatal("Tunable is empty")
	}

	seen := map[string]bool{}
	for _, term := range classical.Tunable {
		if term.Name == "" {
			t.Error("Tunable contains a term with no name")
		}
		if term.Op == nil || term.Eg == nil {
			t.Errorf("term %s has a nil Op or Eg pointer", term.Name)
		}
		if seen[term.Name] {
			t.Errorf("term %s appears more than once in Tunable", term.Name)
		}
		seen[term.Name] = true
	}
}

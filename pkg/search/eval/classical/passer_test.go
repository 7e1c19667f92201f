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

package classical

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/piece"
	"github.com/corvidchess/corvid/pkg/board/square"
)

// TestPasserUnmovedPawn exercises §8 scenario 5: a pawn still on its own
// 2nd rank (e2 for white) is the least advanced a passed pawn can be, so
// it gets the table's first entry with no king-distance adjustment
// (n > 1 is required for that term to apply).
func TestPasserUnmovedPawn(t *testing.T) {
	got := passer(piece.White, square.E2, square.E1, square.E8)
	want := passerBonus[0]
	if got != want {
		t.Errorf("passer(e2) = %+v, want %+v", got, want)
	}
}

// TestPasserKingDistanceKicksInPastThirdRank checks that the
// king-distance adjustment in passer() is only added once the pawn has
// advanced past the 3rd rank (n > 1), per §4.2.
func TestPasserKingDistanceKicksInPastThirdRank(t *testing.T) {
	if got := passer(piece.White, square.E4, square.E1, square.E8); got == passerBonus[2] {
		t.Errorf("passer(e4) = %+v should differ from the bare table entry once king distance applies", got)
	}
}

// TestBishopPairBonus exercises §8 scenario 6: a bishop on each color
// complex earns bishopPairBonus exactly.
func TestBishopPairBonus(t *testing.T) {
	b := board.New("4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	if got := bishopPair(b, piece.White); got != bishopPairBonus {
		t.Errorf("bishopPair = %+v, want %+v", got, bishopPairBonus)
	}
}

// TestBishopPairRequiresBothComplexes checks that two same-colored
// bishops (no real pair, can happen after underpromotion) don't earn the
// bonus.
func TestBishopPairRequiresBothComplexes(t *testing.T) {
	b := board.New("4k3/8/8/8/8/8/8/3B1B1K w - - 0 1") // d1 and f1 are both light squares
	if got := bishopPair(b, piece.White); got != (pair{}) {
		t.Errorf("bishopPair with two same-complex bishops = %+v, want zero", got)
	}
}

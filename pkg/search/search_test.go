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

package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/move"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/search/eval"
)

func TestSearchReturnsALegalMove(t *testing.T) {
	ctx := search.NewContext(func(search.Report) {}, 1)

	pv, _, err := ctx.Search(search.Limits{Depth: 4})
	if err != nil {
		t.Fatalf("Search returned an error: %v", err)
	}

	best := pv.Move(0)
	if best == move.Null {
		t.Fatal("Search returned an empty principal variation")
	}

	legal := ctx.Board.GenerateMoves()
	found := false
	for _, m := range legal {
		if m == best {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Search's chosen move %v is not in the legal move list", best)
	}
}

func TestSearchKiwipeteReturnsALegalMove(t *testing.T) {
	// Kiwipete: castling both ways, en passant, promotions and pins all
	// reachable within a few plies, the standard stress position for a
	// move generator and search sharing the same board representation.
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	ctx := search.NewContext(func(search.Report) {}, 1)
	ctx.Board = board.New(fen)

	pv, _, err := ctx.Search(search.Limits{Depth: 6})
	if err != nil {
		t.Fatalf("Search returned an error: %v", err)
	}

	best := pv.Move(0)
	if best == move.Null {
		t.Fatal("Search returned an empty principal variation")
	}

	legal := ctx.Board.GenerateMoves()
	found := false
	for _, m := range legal {
		if m == best {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Search's chosen move %v is not in Kiwipete's legal move list", best)
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White's rook sweeps the open 8th rank: Ra8 is checkmate, with
	// black's king boxed in by its own pawns and white's rook covering
	// every flight square.
	ctx := search.NewContext(func(search.Report) {}, 1)
	ctx.Board = board.New("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")

	_, score, err := ctx.Search(search.Limits{Depth: 2})
	if err != nil {
		t.Fatalf("Search returned an error: %v", err)
	}

	if want := eval.Mate - 1; score != want {
		t.Errorf("Search score = %v, want mate in 1 (%v)", score, want)
	}
}

func TestSearchStalemateIsADrawNotAMate(t *testing.T) {
	// black to move has no legal moves and isn't in check: a stalemate
	// must score as a draw via draw_score(ply), never as a mate score,
	// and (with Contempt at its default of 0) never as the bare flat
	// zero constant either, since draw_score adds RandDraw's wobble.
	ctx := search.NewContext(func(search.Report) {}, 1)
	ctx.Board = board.New("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	_, score, err := ctx.Search(search.Limits{Depth: 4})
	if err != nil {
		t.Fatalf("Search returned an error: %v", err)
	}

	if score < 1 || score > 8 {
		t.Errorf("stalemate score = %v, want draw_score(0) in [1, 8] (RandDraw's range with Contempt 0)", score)
	}
}

func TestSearchRejectsIllegalPosition(t *testing.T) {
	ctx := search.NewContext(func(search.Report) {}, 1)
	// adjacent kings can never arise from a legal game: with white to
	// move, black's king being attacked by white's king means black,
	// who isn't to move, is in check.
	ctx.Board = board.New("8/8/8/4k3/4K3/8/8/8 w - - 0 1")

	if _, _, err := ctx.Search(search.Limits{Depth: 1}); err == nil {
		t.Error("Search did not reject an illegal position")
	}
}

func TestNodesAccumulatesDuringSearch(t *testing.T) {
	ctx := search.NewContext(func(search.Report) {}, 1)

	if n := ctx.Nodes(); n != 0 {
		t.Fatalf("Nodes() before any search = %d, want 0", n)
	}

	if _, _, err := ctx.Search(search.Limits{Depth: 3}); err != nil {
		t.Fatalf("Search returned an error: %v", err)
	}

	if n := ctx.Nodes(); n == 0 {
		t.Error("Nodes() after a search is still 0")
	}
}

func TestStopEndsAnInProgressSearch(t *testing.T) {
	ctx := search.NewContext(func(search.Report) {}, 1)
	if ctx.InProgress() {
		t.Fatal("a fresh context reports InProgress before any search started")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = ctx.Search(search.Limits{Infinite: true, Depth: search.MaxDepth})
	}()

	for !ctx.InProgress() {
		// busy-wait for the search goroutine to actually start, the same
		// way ponderhit waits for it elsewhere in the engine.
	}
	ctx.Stop()
	<-done

	if ctx.InProgress() {
		t.Error("InProgress is still true after the search finished")
	}
}

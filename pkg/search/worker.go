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

package search

import (
	"sync/atomic"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/move"
	"github.com/corvidchess/corvid/pkg/board/piece"
	"github.com/corvidchess/corvid/pkg/board/square"
	"github.com/corvidchess/corvid/pkg/search/eval"
	"github.com/corvidchess/corvid/pkg/search/eval/classical"
)

// worker owns every piece of state that a single search thread reads and
// writes without synchronization: its own copy of the position being
// searched, its own pawn hash, and its own move-ordering heuristics.
// Running each worker's killers/history/refutation independently, rather
// than sharing one copy, is what decorrelates the lines different
// workers explore, which is the entire point of running more than one.
// The only state shared between workers is the Context's transposition
// table and its scheduling bookkeeping.
type worker struct {
	id  int
	ctx *Context

	board *board.Board
	pawns *classical.PawnHash

	killers    [MaxDepth + 1][2]move.Move
	history    [piece.ColorN][square.N][square.N]historyScore
	refutation [square.N][square.N]move.Move

	// iterative deepening state local to this worker
	depth   int
	pv      move.Variation
	pvScore eval.Eval

	stats Stats
}

// newWorker creates a worker with its own pawn hash, ready to search a
// copy of pos.
func newWorker(ctx *Context, id int, pos *board.Board) *worker {
	boardCopy := *pos // Board is a plain value type; this is a deep copy
	return &worker{
		id:    id,
		ctx:   ctx,
		board: &boardCopy,
		pawns: classical.NewPawnHash(pawnHashBits),
	}
}

// score returns the static evaluation of the worker's current board.
func (w *worker) score() eval.Eval {
	return classical.Evaluate(w.board, w.pawns)
}

// node counts the current position as visited, bumping both this
// worker's local node count and the Context's shared atomic counter.
func (w *worker) node(ply int) {
	w.stats.Nodes++
	atomic.AddInt64(&w.ctx.nodes, 1)

	for {
		cur := atomic.LoadInt64(&w.ctx.selDepth)
		if int64(ply) <= cur || atomic.CompareAndSwapInt64(&w.ctx.selDepth, cur, int64(ply)) {
			return
		}
	}
}

// abortKind distinguishes the two categories of search abort a worker
// can observe on Context.signal.
type abortKind int

const (
	abortNone abortKind = iota
	// abortOne means only this worker's current iteration must unwind;
	// the worker restarts at the next depth, the rest of the pool keeps
	// going.
	abortOne
	// abortAll means the whole search is stopping; the worker unwinds
	// and exits.
	abortAll
)

// signal reports which category of abort, if any, this worker should
// observe right now: its own bit set in Context.signal means abortOne,
// the all-ones stop sentinel means abortAll.
func (w *worker) signal() abortKind {
	switch sig := atomic.LoadUint64(&w.ctx.signal); {
	case sig == stopSignal:
		return abortAll
	case sig&(uint64(1)<<uint(w.id)) != 0:
		return abortOne
	default:
		return abortNone
	}
}

// shouldAbort reports whether this worker should unwind its search
// immediately, for either abort category. Used at node entry, where the
// distinction between the two categories doesn't matter: either way the
// in-progress search must stop recursing and let the call stack unwind.
func (w *worker) shouldAbort() bool {
	return w.signal() != abortNone
}

// draw returns the draw score for a position reached at the given ply,
// combining the engine's Contempt setting (§6: draw_score) with a small
// random wobble so that the search doesn't treat every repetition
// identically once Contempt is zero.
func (w *worker) draw(ply int) eval.Eval {
	return w.ctx.drawScore(ply) + eval.RandDraw(w.stats.Nodes+w.id)
}

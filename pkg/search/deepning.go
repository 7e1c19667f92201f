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
	"github.com/corvidchess/corvid/pkg/board/move"
	"github.com/corvidchess/corvid/pkg/search/eval"
)

// iterate is the main search loop run by every worker. It implements an
// iterative deepening loop which calls negamax for each iteration,
// reporting every improvement back to the shared Context.
// https://www.chessprogramming.org/Iterative_Deepening
//
// Because every worker in the pool shares one transposition table,
// helper workers (id > 0) skip starting an iteration that the rest of
// the pool has already mostly reached via shouldSkipDepthLocked: there is
// little point in several threads searching the same shallow depth when
// they could instead be diversifying the table at different depths.
func (w *worker) iterate() {
	// Whatever makes this worker leave the loop below, whether it ran out
	// of depth to search or observed an abort, the rest of the pool has
	// nothing left to gain from continuing either: force a global stop.
	defer w.ctx.Stop()

	var score eval.Eval
	var pv move.Variation

	limit := w.ctx.limitDepth()

depthLoop:
	for depth := 1; depth <= limit; depth++ {
		w.ctx.schedMu.Lock()
		if w.ctx.globalStop() {
			w.ctx.schedMu.Unlock()
			break depthLoop
		}
		// own abort bit is cleared before any search work begins, so a
		// stale ABORT_ONE from the depth just finished can't leak into
		// this one
		w.ctx.clearBit(w.id)
		skip := w.shouldSkipDepthLocked(depth)
		if !skip {
			// record the depth this worker is now searching
			w.ctx.workerDepths[w.id] = depth
		}
		w.ctx.schedMu.Unlock()

		if skip {
			continue
		}

		w.depth = depth

		// the new pv isn't directly stored into the pv variable since it will
		// pollute the correct pv if the next search is incomplete. Instead the
		// old pv is overwritten only if the search is found to be complete.
		var childScore eval.Eval
		var childPV move.Variation

		if depth < 5 {
			// aspiration windows aren't worth the cost of a possible
			// re-search at shallow depths
			childScore = w.negamax(0, depth, -eval.Inf, eval.Inf, move.Null, &childPV)
		} else {
			childScore, childPV = w.aspirate(depth, score)
		}

		switch w.signal() {
		case abortAll:
			// global stop: the recursion above has already unwound to
			// the root via the normal call-stack return path
			break depthLoop
		case abortOne:
			// only this worker's iteration was cancelled, because the
			// rest of the pool finished this depth first; move on to
			// the next one instead of trusting the half-finished result
			continue depthLoop
		}

		// search successfully completed, so update local state
		score = childScore
		pv = childPV

		w.pv = pv
		w.pvScore = score

		w.completeDepth(depth)
		w.ctx.completeIteration(w, depth, score, pv)
	}
}

// shouldSkipDepthLocked reports whether a helper worker should skip
// starting the given depth because at least half the pool has already
// reached it. The main worker (id 0) never skips a depth. The caller
// must hold schedMu.
func (w *worker) shouldSkipDepthLocked(depth int) bool {
	if w.id == 0 || w.ctx.numWorkers < 2 || depth < 2 {
		return false
	}

	if w.ctx.workerDepths[w.id] >= depth {
		return false
	}

	finished := 0
	for _, d := range w.ctx.workerDepths {
		if d >= depth {
			finished++
		}
	}

	return finished*2 >= w.ctx.numWorkers
}

// completeDepth is called once this worker has finished depth. It raises
// the abort bit of every other worker whose recorded depth, the iteration
// it is currently searching, is depth or behind: those workers are
// searching an iteration the pool has already moved past, so they are
// told to abandon it (ABORT_ONE) and pick up the next depth instead.
func (w *worker) completeDepth(depth int) {
	w.ctx.schedMu.Lock()
	defer w.ctx.schedMu.Unlock()

	w.ctx.workerDepths[w.id] = depth
	for id, d := range w.ctx.workerDepths {
		if id != w.id && d <= depth {
			w.ctx.raiseBit(id)
		}
	}
}

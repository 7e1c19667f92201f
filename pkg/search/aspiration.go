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
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/board/move"
	"github.com/corvidchess/corvid/pkg/search/eval"
)

// aspirationDelta is the initial half-width of the aspiration window
// around the previous iteration's score.
const aspirationDelta = eval.Eval(15)

// aspirate implements aspiration windows, which are a way to reduce the
// search space in an alpha-beta search. The technique is to use a guess
// of the expected value (usually from the last iteration in iterative
// deepening), and use a window around this as the alpha-beta bounds.
// Because the window is narrower, more beta cutoffs are achieved, and
// the search takes a shorter time. The drawback is that if the true
// score is outside this window, the window is widened and the same
// depth is re-searched.
func (w *worker) aspirate(depth int, prevEval eval.Eval) (eval.Eval, move.Variation) {
	// default values for alpha and beta
	alpha := eval.Eval(-eval.Inf)
	beta := eval.Eval(eval.Inf)

	delta := aspirationDelta

	if depth > 1 {
		// the first iteration has no prior score to center a window
		// around, so it always searches full width
		alpha = prevEval - delta
		beta = prevEval + delta
	}

	for {
		if w.shouldAbort() {
			// some search limit has been breached
			// the return value doesn't matter since this search's result
			// will be trashed and the previous iteration's pv will be used
			return 0, move.Variation{}
		}

		var pv move.Variation
		result := w.negamax(0, depth, alpha, beta, move.Null, &pv)

		switch {
		// result <= alpha: search failed low
		case result <= alpha:
			beta = (alpha + beta) / 2
			alpha = util.Max(result-delta, -eval.Inf)

		// result >= beta: search failed high
		case result >= beta:
			beta = util.Min(result+delta, eval.Inf)

		// exact score is inside bounds
		default:
			return result, pv
		}

		// widen the window by a factor of roughly 1.876 and try again
		delta += delta * 876 / 1000
	}
}

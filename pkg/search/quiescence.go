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

// explosionDepth is how many plys below the leaf quiescence search is
// allowed to chase a sequence of captures before giving up and trusting
// the standing pat score. Without this guard a position with very long
// forced capture sequences (a "material explosion") can blow up the
// search tree despite the SEE pruning below.
const explosionDepth = -8

// quiescence is a limited search which only considers tactical moves
// (captures and promotions), used at the leaves of negamax to avoid the
// horizon effect: a quiet-looking leaf position may actually be in the
// middle of a winning or losing tactical sequence.
// https://www.chessprogramming.org/Quiescence_Search
func (w *worker) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	w.node(plys)

	if w.shouldAbort() {
		return 0
	}

	if w.board.IsDraw() {
		return w.draw(plys)
	}

	standPat := w.score()

	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if w.depth-plys <= explosionDepth || plys >= MaxDepth {
		// too deep into a forced sequence; trust the static eval
		// instead of searching any further
		return standPat
	}

	captures := w.board.GenerateCaptures()
	list := w.orderMoves(captures, move.Null, move.Null, plys)

	for i := 0; i < list.Length; i++ {
		m := list.PickMove(i)

		if !m.IsPromotion() && !eval.SEE(w.board, m, 0) {
			// losing capture; it won't raise alpha enough to matter
			// in a search that already has a standing pat option
			continue
		}

		w.board.MakeMove(m)
		score := -w.quiescence(plys+1, -beta, -alpha)
		w.board.UnmakeMove()

		if score > alpha {
			alpha = score
			if alpha >= beta {
				break
			}
		}
	}

	return alpha
}

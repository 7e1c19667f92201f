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
	"math"

	"github.com/corvidchess/corvid/pkg/board/move"
	"github.com/corvidchess/corvid/pkg/search/eval"
)

// orderingScore is the type move.ScoreMoves sorts by for the main search
// move loop. The five bands below, from highest to lowest, reproduce the
// Move Selector's five stages: tt move, winning captures (SEE-descending),
// killers then refutation, quiets (history-descending), losing captures.
type orderingScore int32

const (
	// ttScore ranks the transposition table's move first, always.
	ttScore orderingScore = math.MaxInt32

	// sep separates the capture bands far enough from the quiet history
	// band (±historyLimit) that winning captures always sort above every
	// quiet, and losing captures always sort below every quiet, even at
	// history's most extreme values.
	sep = orderingScore(historyLimit) + 3

	killerScore     = orderingScore(historyLimit) + 2
	refutationScore = orderingScore(historyLimit) + 1
)

// scoreMove scores a single pseudo-legal move for move ordering at a node
// reached by playing prevMove, currently at the given ply.
func (w *worker) scoreMove(m, ttMove, prevMove move.Move, ply int) orderingScore {
	switch {
	case m == ttMove:
		return ttScore

	case m.IsCapture(), m.IsPromotion():
		see := orderingScore(eval.SEEValue(w.board, m))
		if see >= 0 {
			return see + sep
		}
		return see - sep

	case m == w.killers[ply][0], m == w.killers[ply][1]:
		return killerScore

	case m == w.refutation[prevMove.Source()][prevMove.Target()]:
		return refutationScore

	default:
		return orderingScore(w.history[w.board.SideToMove][m.Source()][m.Target()])
	}
}

// orderMoves scores every move in moves for a node reached by prevMove,
// ready for move.OrderedMoveList.PickMove to draw from in best-first
// order.
func (w *worker) orderMoves(moves []move.Move, ttMove, prevMove move.Move, ply int) move.OrderedMoveList[orderingScore] {
	return move.ScoreMoves(moves, func(m move.Move) orderingScore {
		return w.scoreMove(m, ttMove, prevMove, ply)
	})
}

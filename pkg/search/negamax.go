// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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
	"github.com/corvidchess/corvid/pkg/search/tt"
)

// negamax is a simplified version of the minmax searching algorithm, which
// uses a single function for both the maximizing and minimizing players.
// This can be achieved because chess is a zero-sum game and one player's
// advantage is the other's disadvantage.
// https://www.chessprogramming.org/Negamax
//
// This function also implements alpha-beta pruning to reduce the amount of
// nodes that need to be searched, due to the fact that a single refutation
// is enough to mark a position as worse compared to an already found one.
// https://www.chessprogramming.org/Alpha-Beta
//
// prevMove is the move that was played by the parent node to reach this
// one, move.Null at the root; it indexes the refutation table.
func (w *worker) negamax(plys, depth int, alpha, beta eval.Eval, prevMove move.Move, pv *move.Variation) eval.Eval {
	w.node(plys)

	// quick exit clauses
	switch {
	case w.shouldAbort():
		// some search limit has been breached
		// the return value doesn't matter since this search's result
		// will be trashed and the previous iteration's pv will be used
		return 0

	case plys > 0 && w.board.IsDraw():
		// position is draw due to 50-move rule or threefold-repetition
		return w.draw(plys)

	case depth <= 0, plys >= MaxDepth:
		// depth 0 reached, drop to quiescence search to prevent
		// the horizon effect from making the evaluation bad
		return w.quiescence(plys, alpha, beta)
	}

	// node properties
	isPVNode := beta-alpha != 1 // beta = alpha + 1 during PVS
	inCheck := w.board.IsInCheck(w.board.SideToMove)

	// generate all moves
	moves := w.board.GenerateMoves()
	if plys == 0 {
		if restrict := w.ctx.rootMoves(); len(restrict) != 0 {
			moves = filterMoves(moves, restrict)
		}
	}

	if len(moves) == 0 {
		// no legal moves, so some type of mate

		if inCheck {
			return eval.MatedIn(plys) // checkmate
		}

		return w.draw(plys) // stalemate
	}

	// keep track of the original value of alpha for determining whether
	// the score will act as an upper bound entry in the transposition table
	originalAlpha := alpha

	// keep track of best move and score
	bestMove := move.Null
	bestEval := -eval.Inf

	// check for transposition table hits
	if entry, hit := w.ctx.tt.Probe(w.board.Hash); hit {
		// use pv move for move ordering in any case
		bestMove = entry.Move

		// only use entry if current node is not a pv node and
		// entry depth is >= current depth (not worse quality)
		if !isPVNode && int(entry.Depth) >= depth {
			w.stats.TTHits++
			value := entry.Value.Eval(plys)

			switch entry.Type {
			case tt.ExactEntry:
				return value
			case tt.LowerBound:
				alpha = util.Max(alpha, value)
			case tt.UpperBound:
				beta = util.Min(beta, value)
			}

			if alpha >= beta {
				return value // fail high
			}
		}
	}

	us := w.board.SideToMove

	quietMargin, noisyMargin := seeMargins(depth)

	// move ordering; score the generated moves
	list := w.orderMoves(moves, bestMove, prevMove, plys)

	var triedQuiets []move.Move

	for i := 0; i < list.Length; i++ {
		var childPV move.Variation

		m := list.PickMove(i)
		isQuiet := m.IsQuiet()

		// futility/see pruning: late, losing moves at shallow depth
		// aren't worth the recursion once a safe move has been found
		if !isPVNode && !inCheck && i > 0 && depth <= 8 && bestEval > -eval.WinInMaxPly {
			margin := util.Ternary(isQuiet, quietMargin, noisyMargin)
			if !eval.SEE(w.board, m, margin) {
				continue
			}
		}

		// late move reductions: reduce the search depth of late, quiet
		// moves, re-searching at full depth if they beat alpha anyway
		reduction := 0
		if depth >= 3 && i >= 2 && isQuiet && !inCheck {
			reduction = reductions[util.Min(depth, MaxDepth)][util.Min(i, 127)]
			if isPVNode {
				reduction--
			}
			reduction = util.Max(reduction, 0)
		}

		if isQuiet {
			triedQuiets = append(triedQuiets, m)
		}

		w.board.MakeMove(m)

		// Principal Variation Search

		var childEval eval.Eval

		switch {
		case reduction > 0:
			// reduced null window search
			childEval = -w.negamax(plys+1, depth-1-reduction, -alpha-1, -alpha, m, &childPV)
			if childEval > alpha {
				// move beat alpha despite the reduction; trust it
				// enough to re-search at full depth
				childEval = -w.negamax(plys+1, depth-1, -alpha-1, -alpha, m, &childPV)
			}

		case !isPVNode || i > 0:
			// full depth null window search for non-pv nodes
			childEval = -w.negamax(plys+1, depth-1, -alpha-1, -alpha, m, &childPV)
		}

		if isPVNode && ((childEval > alpha && childEval < beta) || i == 0) {
			// full window search for pv nodes
			childEval = -w.negamax(plys+1, depth-1, -beta, -alpha, m, &childPV)
		}

		w.board.UnmakeMove()

		// update score and bounds
		if childEval > bestEval {
			// better move found
			bestMove = m
			bestEval = childEval

			// check if move is new pv move
			if childEval > alpha {
				// new pv so alpha increases
				alpha = childEval

				// update parent pv
				pv.Update(m, childPV)

				if alpha >= beta {
					break // fail high
				}
			}
		}
	}

	if bestEval >= beta && bestMove.IsQuiet() {
		bonus := historyBonus(depth)

		w.storeKiller(plys, bestMove)
		w.storeRefutation(prevMove, bestMove)
		w.updateHistory(int(us), bestMove, bonus)

		for _, q := range triedQuiets {
			if q != bestMove {
				w.updateHistory(int(us), q, -bonus)
			}
		}
	}

	// if search is stopped, score may be of a bad quality and
	// thus can pollute the transposition table for future searches
	if !w.shouldAbort() {
		var entryType tt.EntryType
		switch {
		case bestEval <= originalAlpha:
			// if score <= alpha, it is a worse position for the max player than
			// a previously explored line, since the move's exact score is at
			// most score. Therefore, it is an upperbound on the exact score.
			entryType = tt.UpperBound
		case bestEval >= beta:
			// if score >= beta, it is a worse position for the min player than
			// a previously explored line, singe the move's exact score is at
			// least score. Therefore, it is a lowerbound on the exact score.
			entryType = tt.LowerBound
		default:
			// if score is inside the bounds of alpha and beta, both the players
			// have been able to improve their position and it is an exact score.
			entryType = tt.ExactEntry
		}

		// update transposition table
		w.ctx.tt.Store(tt.Entry{
			Hash:  w.board.Hash,
			Value: tt.EvalFrom(bestEval, plys),
			Move:  bestMove,
			Depth: uint8(depth),
			Type:  entryType,
		})
	}

	return bestEval
}

// filterMoves returns the subset of moves that also appears in allowed,
// preserving moves's order. It backs the "searchmoves" root restriction.
func filterMoves(moves, allowed []move.Move) []move.Move {
	filtered := moves[:0:0]
	for _, m := range moves {
		for _, a := range allowed {
			if m == a {
				filtered = append(filtered, m)
				break
			}
		}
	}
	return filtered
}

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

// historyScore is the signed counter used by a worker's history table. It
// is widened to int32 since MAX_DEPTH² (MaxDepth=246 ⇒ 60516) overflows
// an int16.
type historyScore int32

// historyLimit is MAX_DEPTH² from §3: the clamp on every history entry's
// magnitude.
const historyLimit = historyScore(MaxDepth * MaxDepth)

// storeKiller tries to store the given move as the newest killer for the
// given ply, bumping the old primary killer down to the secondary slot.
func (w *worker) storeKiller(ply int, killer move.Move) {
	if !killer.IsCapture() && killer != w.killers[ply][0] {
		w.killers[ply][1] = w.killers[ply][0]
		w.killers[ply][0] = killer
	}
}

// storeRefutation records killer as the reply that refuted parent at a
// sibling node, so that future nodes reached by playing parent try it
// first.
func (w *worker) storeRefutation(parent, killer move.Move) {
	if parent != move.Null {
		w.refutation[parent.Source()][parent.Target()] = killer
	}
}

// updateHistory applies bonus (positive for the move that caused the
// cutoff, negative for quiets tried and rejected before it) to m's
// history entry, using a gravity term so that the table self-normalizes
// instead of growing without bound.
func (w *worker) updateHistory(us int, m move.Move, bonus historyScore) {
	if m.IsCapture() {
		return
	}

	entry := &w.history[us][m.Source()][m.Target()]
	*entry += bonus - *entry*util.Abs(bonus)/historyLimit
	*entry = util.Clamp(*entry, -historyLimit, historyLimit)
}

// historyBonus returns the magnitude of the history update applied after
// a beta cutoff at the given depth: depth², clamped to historyLimit so
// that one deep cutoff can't dominate the table for the rest of the
// search.
func historyBonus(depth int) historyScore {
	return historyScore(util.Min(depth*depth, int(historyLimit)))
}

// seeMargins returns the SEE pruning thresholds used to skip hopeless
// quiet and capture moves near the search frontier: quiet moves losing
// more than linearly-scaled material, and captures losing more than
// quadratically-scaled material, aren't worth the recursion.
func seeMargins(depth int) (quiet, noisy eval.Eval) {
	quiet = eval.Eval(-64 * depth)
	noisy = eval.Eval(-19 * depth * depth)
	return quiet, noisy
}

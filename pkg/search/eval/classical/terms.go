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

// Package classical implements a hand-tuned, classical (as opposed to
// NNUE-style) positional evaluator: the kind built out of mobility,
// king safety, and pawn structure terms rather than a trained network.
package classical

// pair is a middle-game/end-game evaluation pair, added up across a
// position's terms before being blended into a single centipawn score
// according to the remaining material on the board.
type pair struct{ op, eg int }

func s(op, eg int) pair { return pair{op, eg} }

func (p pair) plus(o pair) pair  { return pair{p.op + o.op, p.eg + o.eg} }
func (p pair) minus(o pair) pair { return pair{p.op - o.op, p.eg - o.eg} }

func (p *pair) add(o pair) { p.op += o.op; p.eg += o.eg }
func (p *pair) sub(o pair) { p.op -= o.op; p.eg -= o.eg }

// knightAdjust, bishopAdjust and rookAdjust turn a raw mobility square
// count into an adjusted count centered around an "average" mobility, so
// that the Weight terms below can price deviations from the average
// rather than the raw count itself.
var knightAdjust = [9]int{-4, -2, -1, 0, 1, 2, 3, 4, 4}
var bishopAdjust = [14]int{-5, -3, -2, -1, 0, 1, 2, 3, 4, 5, 5, 6, 6, 7}
var rookAdjust = [15]int{-6, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 6, 7, 7}

// knightWeight, bishopWeight, rookWeight and queenWeight price one unit
// of adjusted mobility for each piece type that has one.
var knightWeight = s(6, 10)
var bishopWeight = s(11, 12)
var rookWeight = s(6, 6)
var queenWeight = s(4, 6)

// bishopPairBonus rewards having both color-complex bishops.
var bishopPairBonus = s(83, 110)

// knightHanging, bishopHanging, rookHanging and queenHanging are applied,
// to the middle-game score only, once per our piece that is attacked by a
// cheaper enemy piece (a pawn attacking any non-pawn piece, a knight or
// bishop attacking a rook or queen, a rook attacking a queen), whether or
// not the piece is defended.
var knightHanging = 92
var bishopHanging = 64
var rookHanging = 98
var queenHanging = 181

// aheadOfPawnPenalty punishes a piece blocking its own pawn's advance.
const aheadOfPawnPenalty = 16

// king danger-zone terms: attacks and defenses in the ring of squares the
// king itself attacks, and safe checking threats against the king.
var ringAttack = [4]int{31, 38, 67, 60}   // knight, bishop, rook, queen
var ringDefense = [4]int{18, 18, 31, 32}  // knight, bishop, rook, queen
var checkAttack = [4]int{61, 76, 74, 81}  // knight, bishop, rook, queen
var checkDefense = [4]int{26, 34, 30, 34} // knight, bishop, rook, queen

const bishopXRayPenalty = 56
const rookXRayPenalty = 83

// isolatedPenalty and backwardPenalty are indexed by whether the pawn's
// file is otherwise open (exposed) or not.
var isolatedPenalty = [2]pair{s(19, 33), s(41, 34)}
var backwardPenalty = [2]pair{s(17, 18), s(29, 22)}

// shieldBonus rewards a pawn sheltering its own king, indexed by the
// pawn's 0-based rank relative to its own side (0 = back rank).
var shieldBonus = [8]int{0, 23, 17, 12, 10, 8, 8, 0}

// passerBonus and passerKingAdjust are indexed by the passed pawn's
// 0-based advance past its starting rank (0 = on its second rank).
var passerBonus = [6]pair{s(0, 6), s(0, 14), s(23, 28), s(51, 69), s(144, 149), s(285, 264)}
var passerKingAdjust = [6]int{0, 0, 10, 41, 82, 112}

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
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/bitboard"
	"github.com/corvidchess/corvid/pkg/board/move/attacks"
	"github.com/corvidchess/corvid/pkg/board/piece"
	"github.com/corvidchess/corvid/pkg/board/square"
	"github.com/corvidchess/corvid/pkg/search/eval"
)

// attackSet collects, for one side, every square it attacks, broken down
// by the attacking piece type. all is the union of the non-pawn,
// non-king attacks, used to tell whether a square near the side's own
// king is defended by a piece as opposed to just a pawn.
type attackSet struct {
	pawn, knight, bishop, rook, queen, king bitboard.Board
	all                                     bitboard.Board
}

// idx4 maps a minor/major piece type onto the 0..3 index used by the
// ring/check danger-zone tables, which have no entry for pawns or kings.
func idx4(t piece.Type) int {
	return int(t) - int(piece.Knight)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// pawnPath holds, for a pawn of a given color on a given square, every
// square strictly ahead of it on the same file.
var pawnPath [piece.ColorN][square.N]bitboard.Board

// pawnSpan holds, for a pawn of a given color on a given square, every
// square strictly ahead of it on its own file and the two adjacent
// files: the zone that must be clear of enemy pawns for it to be passed.
var pawnSpan [piece.ColorN][square.N]bitboard.Board

// adjacentFiles holds, for a given file, the bitboard of the files
// immediately to its left and right.
var adjacentFiles [square.FileN]bitboard.Board

// kingDistance holds the Chebyshev (king move) distance between every
// pair of squares.
var kingDistance [square.N][square.N]int

func init() {
	for f := square.FileA; f < square.FileN; f++ {
		var files bitboard.Board
		if f > square.FileA {
			files |= bitboard.Files[f-1]
		}
		if f < square.FileH {
			files |= bitboard.Files[f+1]
		}
		adjacentFiles[f] = files
	}

	for s := square.A7; s <= square.H1; s++ {
		base := s - 8
		pawnPath[piece.White][s] = pawnPath[piece.White][base] | bitboard.Squares[base]
	}
	for s := square.H2; s >= square.A8; s-- {
		base := s + 8
		pawnPath[piece.Black][s] = pawnPath[piece.Black][base] | bitboard.Squares[base]
	}

	for s := square.A8; s <= square.H1; s++ {
		white := pawnPath[piece.White][s]
		pawnSpan[piece.White][s] = white | white.East() | white.West()

		black := pawnPath[piece.Black][s]
		pawnSpan[piece.Black][s] = black | black.East() | black.West()
	}

	for a := square.A8; a <= square.H1; a++ {
		for b := square.A8; b <= square.H1; b++ {
			fd := util.Abs(int(a.File()) - int(b.File()))
			rd := util.Abs(int(a.Rank()) - int(b.Rank()))
			kingDistance[a][b] = util.Max(fd, rd)
		}
	}
}

// pawnAttacksBy returns every square attacked by a pawn of the given
// color currently on the board.
func pawnAttacksBy(b *board.Board, c piece.Color) bitboard.Board {
	up := b.PawnsBB(c).Up(c)
	return up.East() | up.West()
}

// Evaluate returns the static evaluation of the given position from the
// perspective of the side to move. hash is used to cache pawn structure
// terms, which change rarely relative to how often they are recomputed;
// pass nil to skip caching.
func Evaluate(b *board.Board, hash *PawnHash) eval.Eval {
	var atk [piece.ColorN]attackSet
	var e [piece.ColorN]pair

	e[piece.White] = pair{b.PST[piece.White].MG(), b.PST[piece.White].EG()}
	e[piece.Black] = pair{b.PST[piece.Black].MG(), b.PST[piece.Black].EG()}

	atk[piece.White].pawn = pawnAttacksBy(b, piece.White)
	atk[piece.Black].pawn = pawnAttacksBy(b, piece.Black)

	// mobility is computed first since it fills in the attack sets every
	// other term depends on.
	for c := piece.White; c <= piece.Black; c++ {
		e[c].add(mobility(b, c, &atk))
	}

	for c := piece.White; c <= piece.Black; c++ {
		e[c].add(bishopPair(b, c))
		e[c].op += tactics(b, c, &atk)
		e[c].op += safety(b, c, &atk)
	}

	e[piece.White].add(pawns(b, hash, &atk))

	us := b.SideToMove
	them := us.Other()

	stm := e[us].minus(e[them])

	// endgame scaling: a lone extra pawn, or no pawns at all, is much
	// less winning than the raw material difference suggests.
	winner := us
	if stm.eg <= 0 {
		winner = them
	}
	loser := winner.Other()

	winnerPawns := b.PawnsBB(winner)
	materialEdge := b.Material[winner].EG() - b.Material[loser].EG()

	if winnerPawns.Count() <= 1 && materialEdge < egPieceValueRook {
		switch winnerPawns.Count() {
		case 0:
			stm.eg /= 2
		case 1:
			stm.eg -= stm.eg / 4
		}
	}

	return eval.Eval(blend(b, stm))
}

// egPieceValueRook mirrors the rook end-game material value used by
// Board's incremental Material accumulator, kept here so the endgame
// scaling rule above can compare against it without importing the table
// directly.
const egPieceValueRook = 512

// blend linearly interpolates a position's op/eg evaluation pair into a
// single centipawn score, using the remaining non-pawn material (on a 0
// to NonPawnMaterialFull scale) as the game phase.
func blend(b *board.Board, e pair) int {
	full := board.NonPawnMaterialFull
	total := util.Min(b.Material[piece.White].EG()+b.Material[piece.Black].EG(), full)
	return e.op*total/full + e.eg*(full-total)/full
}

// mobility scores every knight/bishop/rook/queen by how many squares it
// usefully attacks, and fills in atk with every piece's attack set so the
// other evaluation terms can reuse it.
func mobility(b *board.Board, us piece.Color, atk *[piece.ColorN]attackSet) pair {
	them := us.Other()
	result := pair{}

	atk[us].king = attacks.King[b.Kings[us]]

	// squares it is actually useful to attack: not our own king or
	// pawns, and not attacked by an enemy pawn.
	targets := ^(b.ColorBBs[us] & (b.PieceBBs[piece.King] | b.PieceBBs[piece.Pawn]) | atk[them].pawn)

	knights := b.KnightsBB(us)
	for knights != bitboard.Empty {
		from := knights.Pop()
		tss := attacks.Knight[from]
		atk[us].knight |= tss

		count := (tss & targets).Count()
		adjusted := knightAdjust[count]
		result.op += knightWeight.op * adjusted
		result.eg += knightWeight.eg * adjusted
	}

	// rooks and queens see through each other along files/ranks.
	lateral := b.RooksBB(us) | b.QueensBB(us)
	lateralOcc := b.Occupied() ^ lateral
	fss := lateral
	for fss != bitboard.Empty {
		from := fss.Pop()
		tss := attacks.Rook(from, lateralOcc)

		pt := b.Position[from].Type()
		if pt == piece.Rook {
			atk[us].rook |= tss
		} else {
			atk[us].queen |= tss
		}

		count := (tss & targets).Count()
		adjusted := rookAdjust[count]
		weight := rookWeight
		if pt == piece.Queen {
			weight = queenWeight
		}
		result.op += weight.op * adjusted
		result.eg += weight.eg * adjusted
	}

	// bishops and queens see through each other along diagonals.
	diagonal := b.BishopsBB(us) | b.QueensBB(us)
	diagonalOcc := b.Occupied() ^ diagonal
	fss = diagonal
	for fss != bitboard.Empty {
		from := fss.Pop()
		tss := attacks.Bishop(from, diagonalOcc)

		pt := b.Position[from].Type()
		if pt == piece.Bishop {
			atk[us].bishop |= tss
		} else {
			atk[us].queen |= tss
		}

		count := (tss & targets).Count()
		adjusted := bishopAdjust[count]
		weight := bishopWeight
		if pt == piece.Queen {
			weight = queenWeight
		}
		result.op += weight.op * adjusted
		result.eg += weight.eg * adjusted
	}

	atk[us].all = atk[us].knight | atk[us].bishop | atk[us].rook | atk[us].queen

	return result
}

// bishopPair rewards having bishops on both color complexes.
func bishopPair(b *board.Board, us piece.Color) pair {
	const whiteSquares bitboard.Board = 0x55AA55AA55AA55AA
	bishops := b.BishopsBB(us)
	if bishops&whiteSquares != bitboard.Empty && bishops & ^whiteSquares != bitboard.Empty {
		return bishopPairBonus
	}
	return pair{}
}

// tactics penalizes pieces that are hanging to a cheaper attacker, and
// pieces sitting directly in front of their own pawn.
func tactics(b *board.Board, us piece.Color, atk *[piece.ColorN]attackSet) int {
	them := us.Other()

	hanging := atk[them].pawn & (b.ColorBBs[us] &^ b.PawnsBB(us))
	hanging |= (atk[them].knight | atk[them].bishop) & (b.RooksBB(us) | b.QueensBB(us))
	hanging |= atk[them].rook & b.QueensBB(us)

	result := 0
	for hanging != bitboard.Empty {
		sq := hanging.Pop()
		switch b.Position[sq].Type() {
		case piece.Knight:
			result -= knightHanging
		case piece.Bishop:
			result -= bishopHanging
		case piece.Rook:
			result -= rookHanging
		case piece.Queen:
			result -= queenHanging
		}
	}

	ahead := attacks.PawnPush(b.PawnsBB(us), us) & (b.ColorBBs[us] &^ b.PawnsBB(us))
	if ahead != bitboard.Empty {
		result -= aheadOfPawnPenalty * ahead.Count()
	}

	return result
}

// safety scores the danger to our own king: attacks and safe checking
// threats from the enemy in the zone immediately around it.
func safety(b *board.Board, us piece.Color, atk *[piece.ColorN]attackSet) int {
	them := us.Other()

	result := 0
	cnt := 0

	dangerZone := atk[us].king &^ atk[us].pawn

	attackedBy := func(p piece.Type) bitboard.Board {
		switch p {
		case piece.Knight:
			return atk[them].knight
		case piece.Bishop:
			return atk[them].bishop
		case piece.Rook:
			return atk[them].rook
		default:
			return atk[them].queen
		}
	}

	for _, pt := range [4]piece.Type{piece.Knight, piece.Bishop, piece.Rook, piece.Queen} {
		attacked := attackedBy(pt) & dangerZone
		if attacked != bitboard.Empty {
			cnt++
			i := idx4(pt)
			result -= attacked.Count() * ringAttack[i]
			result += (attacked & atk[us].all).Count() * ringDefense[i]
		}
	}

	king := b.Kings[us]
	occ := b.Occupied()

	checks := [4]bitboard.Board{
		attacks.Knight[king] & atk[them].knight,
		attacks.Bishop(king, occ) & atk[them].bishop,
		attacks.Rook(king, occ) & atk[them].rook,
		(attacks.Bishop(king, occ) | attacks.Rook(king, occ)) & atk[them].queen,
	}

	for i, check := range checks {
		if check == bitboard.Empty {
			continue
		}

		safe := check &^ (b.ColorBBs[them] | atk[us].pawn | atk[us].king)
		if safe != bitboard.Empty {
			cnt++
			result -= safe.Count() * checkAttack[i]
			result += (safe & atk[us].all).Count() * checkDefense[i]
		}
	}

	diagonalXRay := attacks.Bishop(king, bitboard.Empty) & (b.BishopsBB(them) | b.QueensBB(them))
	for diagonalXRay != bitboard.Empty {
		sq := diagonalXRay.Pop()
		if bitboard.Between[king][sq]&b.PieceBBs[piece.Pawn] == bitboard.Empty {
			cnt++
			result -= bishopXRayPenalty
		}
	}

	lateralXRay := attacks.Rook(king, bitboard.Empty) & (b.RooksBB(them) | b.QueensBB(them))
	for lateralXRay != bitboard.Empty {
		sq := lateralXRay.Pop()
		if bitboard.Between[king][sq]&b.PieceBBs[piece.Pawn] == bitboard.Empty {
			cnt++
			result -= rookXRayPenalty
		}
	}

	return result * (2 + cnt) / 4
}

// relativeRank0 returns a pawn's rank, 0-indexed from its own side's back
// rank (0) towards the promotion rank (7).
func relativeRank0(us piece.Color, s square.Square) int {
	abs := int(square.Rank1) - int(s.Rank()) // 0 (own back rank) .. 7, White's frame
	if us == piece.Black {
		abs = 7 - abs
	}
	return abs
}

// adjacentOrBehindRank returns the bitboard of the given rank together
// with the rank directly behind it (towards us's own back rank), used to
// detect pawns that chain or phalanx with a neighbour.
func adjacentOrBehindRank(us piece.Color, r square.Rank) bitboard.Board {
	result := bitboard.Ranks[r]
	var behind square.Rank
	if us == piece.White {
		behind = r + 1
	} else {
		behind = r - 1
	}
	if behind >= square.Rank8 && behind <= square.Rank1 {
		result |= bitboard.Ranks[behind]
	}
	return result
}

func passer(us piece.Color, pawn, ourKing, theirKing square.Square) pair {
	n := relativeRank0(us, pawn) - 1 // 0-indexed from the 2nd rank
	if n < 0 || n >= len(passerBonus) {
		return pair{}
	}

	result := passerBonus[n]

	if n > 1 {
		stop := pawn
		if us == piece.White {
			stop -= 8
		} else {
			stop += 8
		}
		if stop >= 0 && stop < square.N {
			result.eg += kingDistance[stop][theirKing] * passerKingAdjust[n]
			result.eg -= kingDistance[stop][ourKing] * passerKingAdjust[n] / 2
		}
	}

	return result
}

// doPawns evaluates one side's pawn structure: shields, chains/phalanxes,
// backward and isolated pawns, and passed pawns.
func doPawns(b *board.Board, us piece.Color, atk *[piece.ColorN]attackSet) pair {
	them := us.Other()

	ourPawns := b.PawnsBB(us)
	theirPawns := b.PawnsBB(them)
	allPawns := b.PieceBBs[piece.Pawn]

	ourKing := b.Kings[us]
	theirKing := b.Kings[them]

	result := pair{}

	shield := ourPawns & pawnSpan[us][ourKing]
	for shield != bitboard.Empty {
		sq := shield.Pop()
		result.op += shieldBonus[relativeRank0(us, sq)]
	}

	tempPawns := ourPawns
	for tempPawns != bitboard.Empty {
		sq := tempPawns.Pop()

		stop := sq
		if us == piece.White {
			stop -= 8
		} else {
			stop += 8
		}

		r := sq.Rank()
		f := sq.File()

		besides := ourPawns & adjacentFiles[f]
		exposed := pawnPath[us][sq]&allPawns == bitboard.Empty

		switch {
		case besides&adjacentOrBehindRank(us, r) != bitboard.Empty:
			rr := relativeRank0(us, sq) - 1
			phalanx := ourPawns&attacks.Pawn[them][stop] != bitboard.Empty
			bonus := rr * (rr + boolToInt(phalanx)) * 3
			result.add(pair{8 + bonus/2, bonus})

		case pawnSpan[them][stop]&ourPawns == bitboard.Empty && atk[them].pawn.IsSet(stop):
			result.sub(backwardPenalty[boolToInt(exposed)])

		case besides == bitboard.Empty:
			result.sub(isolatedPenalty[boolToInt(exposed)])
		}

		if exposed && pawnSpan[us][sq]&theirPawns == bitboard.Empty {
			result.add(passer(us, sq, ourKing, theirKing))
		}
	}

	return result
}

// PawnHash caches the pawn-structure evaluation of previously seen pawn
// formations, keyed on Board.PawnKey alone, so that the slow part of the
// evaluator almost never has to run on a position with recurring pawn
// structure.
type PawnHash struct {
	entries []pawnEntry
}

type pawnEntry struct {
	key   uint64
	value pair
}

// NewPawnHash allocates a pawn hash table with 2^bits entries.
func NewPawnHash(bits int) *PawnHash {
	return &PawnHash{entries: make([]pawnEntry, 1<<bits)}
}

func pawns(b *board.Board, hash *PawnHash, atk *[piece.ColorN]attackSet) pair {
	if hash == nil {
		return doPawns(b, piece.White, atk).minus(doPawns(b, piece.Black, atk))
	}

	key := uint64(b.PawnKey)
	idx := key & uint64(len(hash.entries)-1)
	entry := &hash.entries[idx]

	if entry.key == key {
		return entry.value
	}

	value := doPawns(b, piece.White, atk).minus(doPawns(b, piece.Black, atk))
	entry.key = key
	entry.value = value
	return value
}

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

package board

import (
	"github.com/corvidchess/corvid/pkg/board/bitboard"
	"github.com/corvidchess/corvid/pkg/board/move"
	"github.com/corvidchess/corvid/pkg/board/move/attacks"
	"github.com/corvidchess/corvid/pkg/board/move/castling"
	"github.com/corvidchess/corvid/pkg/board/piece"
	"github.com/corvidchess/corvid/pkg/board/square"
)

// GenerateMoves generates a move list of all the possible legal moves in
// the current position.
func (b *Board) GenerateMoves() []move.Move {
	return b.generateMoves(false)
}

// GenerateCaptures generates a move list of all the possible legal
// tactical (capturing and promoting) moves in the current position.
func (b *Board) GenerateCaptures() []move.Move {
	return b.generateMoves(true)
}

func (b *Board) generateMoves(capturesOnly bool) []move.Move {
	s := moveGenState{Board: b}
	s.Init(capturesOnly)

	s.appendKingMoves()

	if s.CheckN >= 2 {
		// only king moves are possible in double check
		return s.MoveList
	}

	// moves of other pieces
	s.appendKnightMoves()
	s.appendBishopMoves()
	s.appendRookMoves()
	s.appendQueenMoves()
	s.appendPawnMoves()

	return s.MoveList
}

func (s *moveGenState) appendKingMoves() {
	king := piece.New(piece.King, s.Us)
	kingSq := s.Kings[s.Us]

	// king can't move to squares occupied by a friend or seen by an enemy
	kingMoves := attacks.King[kingSq] & s.KingTarget
	s.serializeMoves(king, kingSq, kingMoves)

	if s.CheckN == 0 {
		// castling can only occur if king is not in check
		s.appendCastlingMoves()
	}
}

func (s *moveGenState) appendKnightMoves() {
	knight := piece.New(piece.Knight, s.Us)
	// knights pinned in any direction can't move
	for knights := s.KnightsBB(s.Us) &^ (s.PinnedD | s.PinnedHV); knights != bitboard.Empty; {
		from := knights.Pop()
		knightMoves := attacks.Knight[from] & s.Target
		s.serializeMoves(knight, from, knightMoves)
	}
}

func (s *moveGenState) appendBishopMoves() {
	s.appendBishopTypeMoves(piece.New(piece.Bishop, s.Us), s.BishopsBB(s.Us))
}

func (s *moveGenState) appendRookMoves() {
	s.appendRookTypeMoves(piece.New(piece.Rook, s.Us), s.RooksBB(s.Us))
}

func (s *moveGenState) appendQueenMoves() {
	queen := piece.New(piece.Queen, s.Us)
	queens := s.QueensBB(s.Us)

	s.appendBishopTypeMoves(queen, queens)
	s.appendRookTypeMoves(queen, queens)
}

// appendBishopTypeMoves appends the moves of any pieces which move like a bishop.
func (s *moveGenState) appendBishopTypeMoves(bishop piece.Piece, bishops bitboard.Board) {
	bishops &^= s.PinnedHV

	pinned := bishops & s.PinnedD
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		// pinned bishops can only move in their pin-mask
		bishopMoves := attacks.Bishop(from, s.Occupied) & s.Target & s.PinnedD
		s.serializeMoves(bishop, from, bishopMoves)
	}

	unpinned := bishops &^ s.PinnedD
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		bishopMoves := attacks.Bishop(from, s.Occupied) & s.Target
		s.serializeMoves(bishop, from, bishopMoves)
	}
}

// appendRookTypeMoves appends the moves of any pieces which move like a rook.
func (s *moveGenState) appendRookTypeMoves(rook piece.Piece, rooks bitboard.Board) {
	rooks &^= s.PinnedD

	pinned := rooks & s.PinnedHV
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		// pinned rooks can only move in their pin-mask
		rookMoves := attacks.Rook(from, s.Occupied) & s.Target & s.PinnedHV
		s.serializeMoves(rook, from, rookMoves)
	}

	unpinned := rooks &^ s.PinnedHV
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		rookMoves := attacks.Rook(from, s.Occupied) & s.Target
		s.serializeMoves(rook, from, rookMoves)
	}
}

func (s *moveGenState) appendPawnMoves() {
	// various properties which change depending on the side to move

	var down, left, right square.Square
	var promotionRank bitboard.Board
	var enPassantRank bitboard.Board
	var doublePushRank bitboard.Board
	var p piece.Piece

	left = -1
	right = 1

	switch s.Us {
	case piece.White:
		down = 8

		promotionRank = bitboard.Rank8
		enPassantRank = bitboard.Rank5
		doublePushRank = bitboard.Rank3

		p = piece.WhitePawn

	case piece.Black:
		down = -8

		promotionRank = bitboard.Rank1
		enPassantRank = bitboard.Rank4
		doublePushRank = bitboard.Rank6

		p = piece.BlackPawn
	}

	pushTarget := s.CheckMask &^ s.Occupied
	captureTarget := s.Enemies & s.CheckMask

	pawns := s.PawnsBB(s.Us)

	pawnsThatAttack := pawns &^ s.PinnedHV

	unpinnedPawnsThatAttack := pawnsThatAttack &^ s.PinnedD
	pinnedPawnsThatAttack := pawnsThatAttack & s.PinnedD

	pawnAttacksL := attacks.PawnsLeft(unpinnedPawnsThatAttack, s.Us) & captureTarget
	pawnAttacksL |= attacks.PawnsLeft(pinnedPawnsThatAttack, s.Us) & captureTarget & s.PinnedD

	pawnAttacksR := attacks.PawnsRight(unpinnedPawnsThatAttack, s.Us) & captureTarget
	pawnAttacksR |= attacks.PawnsRight(pinnedPawnsThatAttack, s.Us) & captureTarget & s.PinnedD

	simplePawnAttacksL := pawnAttacksL &^ promotionRank
	simplePawnAttacksR := pawnAttacksR &^ promotionRank

	for simplePawnAttacksL != bitboard.Empty {
		to := simplePawnAttacksL.Pop()
		from := to + down + right
		s.AppendMoves(move.New(from, to, p, true))
	}

	for simplePawnAttacksR != bitboard.Empty {
		to := simplePawnAttacksR.Pop()
		from := to + down + left
		s.AppendMoves(move.New(from, to, p, true))
	}

	promotionPawnAttacksL := pawnAttacksL & promotionRank
	promotionPawnAttacksR := pawnAttacksR & promotionRank

	for promotionPawnAttacksL != bitboard.Empty {
		to := promotionPawnAttacksL.Pop()
		from := to + down + right
		s.appendPromotions(move.New(from, to, p, true), s.Us)
	}

	for promotionPawnAttacksR != bitboard.Empty {
		to := promotionPawnAttacksR.Pop()
		from := to + down + left
		s.appendPromotions(move.New(from, to, p, true), s.Us)
	}

	pawnsThatPush := pawns &^ s.PinnedD

	unpinnedPawnsThatPush := pawnsThatPush &^ s.PinnedHV
	pinnedPawnsThatPush := pawnsThatPush & s.PinnedHV

	pawnPushesSingleUnpinned := attacks.PawnPush(unpinnedPawnsThatPush, s.Us)
	pawnPushesSinglePinned := attacks.PawnPush(pinnedPawnsThatPush, s.Us) & s.PinnedHV

	pawnPushesSingle := (pawnPushesSinglePinned | pawnPushesSingleUnpinned) &^ s.Occupied

	pawnPushesDouble := attacks.PawnPush(pawnPushesSingle&doublePushRank, s.Us) & pushTarget

	pawnPushesSingle &= pushTarget

	simplePawnPushes := pawnPushesSingle &^ promotionRank

	for simplePawnPushes != bitboard.Empty {
		to := simplePawnPushes.Pop()
		from := to + down
		s.AppendMoves(move.New(from, to, p, false))
	}

	for pawnPushesDouble != bitboard.Empty {
		to := pawnPushesDouble.Pop()
		from := to + down + down
		s.AppendMoves(move.New(from, to, p, false))
	}

	promotionPawnPushes := pawnPushesSingle & promotionRank

	for promotionPawnPushes != bitboard.Empty {
		to := promotionPawnPushes.Pop()
		from := to + down
		s.appendPromotions(move.New(from, to, p, false), s.Us)
	}

	if s.EnPassantTarget != square.None {
		epPawn := s.EnPassantTarget + down
		them := s.Them

		epMask := bitboard.Squares[s.EnPassantTarget] | bitboard.Squares[epPawn]
		// check if en-passant leaves king in check
		// this does not account for the double rook pin
		if s.CheckMask&epMask == 0 {
			return
		}

		kingSq := s.Kings[s.Us]
		kingMask := bitboard.Squares[kingSq] & enPassantRank

		enemyRooksQueens := (s.RooksBB(them) | s.QueensBB(them)) & enPassantRank

		// if king and enemy horizontal sliding piece are on ep rank
		// a horizontal rook pin may be possible so more checks
		isPossiblePin := kingMask != bitboard.Empty && enemyRooksQueens != bitboard.Empty

		for fromBB := attacks.Pawn[them][s.EnPassantTarget] & pawnsThatAttack; fromBB != bitboard.Empty; {
			from := fromBB.Pop()

			// pawn is pinned in other direction
			if s.PinnedD.IsSet(from) && !s.PinnedD.IsSet(s.EnPassantTarget) {
				continue
			}

			// check for horizontal rook pin
			// remove the ep pawn and the enemy pawn from the blocker mask
			// and check if a rook ray from the king hits any rook or queen
			pawnsMask := bitboard.Squares[from] | bitboard.Squares[epPawn]
			if isPossiblePin && attacks.Rook(kingSq, s.Occupied&^pawnsMask)&enemyRooksQueens != 0 {
				break
			}

			s.AppendMoves(move.New(from, s.EnPassantTarget, p, true))
		}
	}
}

func (s *moveGenState) appendCastlingMoves() {
	// for each castling move the following things are checked:
	// 1. if castling that side is legal (king and rook haven't moved)
	// 2. if pieces are occupying the space between the king and rook
	// 3. if the squares that the king moves through are seen by the enemy
	// if all the conditions are satisfied then castling that side is legal

	switch s.Us {
	case piece.White:
		if s.CastlingRights&castling.WhiteK != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F1G1 == bitboard.Empty {
			s.AppendMoves(move.New(square.E1, square.G1, piece.WhiteKing, false))
		}

		if s.CastlingRights&castling.WhiteQ != 0 &&
			s.Occupied&bitboard.B1C1D1 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C1D1 == bitboard.Empty {
			s.AppendMoves(move.New(square.E1, square.C1, piece.WhiteKing, false))
		}
	case piece.Black:
		if s.CastlingRights&castling.BlackK != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F8G8 == bitboard.Empty {
			s.AppendMoves(move.New(square.E8, square.G8, piece.BlackKing, false))
		}

		if s.CastlingRights&castling.BlackQ != 0 &&
			s.Occupied&bitboard.B8C8D8 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C8D8 == bitboard.Empty {
			s.AppendMoves(move.New(square.E8, square.C8, piece.BlackKing, false))
		}
	}
}

// serializeMoves serializes the given move bitboard into the movelist.
func (s *moveGenState) serializeMoves(p piece.Piece, from square.Square, moves bitboard.Board) {
	for toBB := moves; toBB != bitboard.Empty; {
		to := toBB.Pop()
		s.AppendMoves(move.New(from, to, p, s.Enemies.IsSet(to)))
	}
}

func (s *moveGenState) appendPromotions(m move.Move, c piece.Color) {
	s.AppendMoves(
		m.SetPromotion(piece.New(piece.Queen, c)),
		m.SetPromotion(piece.New(piece.Rook, c)),
		m.SetPromotion(piece.New(piece.Bishop, c)),
		m.SetPromotion(piece.New(piece.Knight, c)),
	)
}

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

package castling

import "github.com/corvidchess/corvid/pkg/board/square"

// Rights represents the set of castling rights still available in a
// position, packed as a bitset.
type Rights byte

// NewRights parses a FEN castling availability field into Rights.
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return None
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteKingside
	}

	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQueenside
	}

	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackKingside
	}

	if r != "" && r[0] == 'q' {
		rights |= BlackQueenside
	}

	return rights
}

const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	// N is the number of distinct castling-rights bitset values.
	N = 16

	// short aliases, used when serializing/checking a single side's rights
	WhiteK = WhiteKingside
	WhiteQ = WhiteQueenside
	BlackK = BlackKingside
	BlackQ = BlackQueenside
)

// RightUpdates holds, for each square, the castling rights that are lost
// when a piece moves to or from that square (a king or rook leaving its
// home square, or a rook being captured on its home square).
var RightUpdates = func() [square.N]Rights {
	var updates [square.N]Rights

	updates[square.E1] = White
	updates[square.A1] = WhiteQueenside
	updates[square.H1] = WhiteKingside

	updates[square.E8] = Black
	updates[square.A8] = BlackQueenside
	updates[square.H8] = BlackKingside

	return updates
}()

// String converts Rights into its FEN castling-availability representation.
func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}

	if c&WhiteQueenside != 0 {
		str += "Q"
	}

	if c&BlackKingside != 0 {
		str += "k"
	}

	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

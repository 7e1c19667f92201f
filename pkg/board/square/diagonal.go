// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package square

// Diagonal represents a NE-SW diagonal of the chessboard, indexed as
// returned by Square.Diagonal.
type Diagonal int8

// constants representing the 15 NE-SW diagonals, named after the corner
// square closest to H1.
const (
	DiagonalH1H1 Diagonal = iota
	DiagonalH2G1
	DiagonalH3F1
	DiagonalH4E1
	DiagonalH5D1
	DiagonalH6C1
	DiagonalH7B1
	DiagonalH8A1
	DiagonalG8A2
	DiagonalF8A3
	DiagonalE8A4
	DiagonalD8A5
	DiagonalC8A6
	DiagonalB8A7
	DiagonalA8A8
)

// DiagonalN is the number of NE-SW diagonals on the board.
const DiagonalN = 15

// AntiDiagonal represents a NW-SE diagonal of the chessboard, indexed as
// returned by Square.AntiDiagonal.
type AntiDiagonal int8

// constants representing the 15 NW-SE anti-diagonals, named after the
// corner square closest to A1.
const (
	DiagonalA1A1 AntiDiagonal = iota
	DiagonalA2B1
	DiagonalA3C1
	DiagonalA4D1
	DiagonalA5E1
	DiagonalA6F1
	DiagonalA7G1
	DiagonalA8H1
	DiagonalB8H2
	DiagonalC8H3
	DiagonalD8H4
	DiagonalE8H5
	DiagonalF8H6
	DiagonalG8H7
	DiagonalH8H8
)

// AntiDiagonalN is the number of NW-SE anti-diagonals on the board.
const AntiDiagonalN = 15

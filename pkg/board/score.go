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

package board

// Score packs a middle-game and an end-game centipawn value into a single
// int64, the same trick engines use to keep tapered terms cheap to add
// and subtract incrementally while a game is played out.
type Score int64

// S creates a Score encapsulating the given middle-game and end-game
// evaluations.
func S(mg, eg int) Score {
	return Score(uint64(uint32(eg))<<32) + Score(mg)
}

// MG returns the score's middle-game half.
func (s Score) MG() int {
	return int(int32(uint32(uint64(s))))
}

// EG returns the score's end-game half.
func (s Score) EG() int {
	return int(int32(uint32(uint64(s+(1<<31)) >> 32)))
}

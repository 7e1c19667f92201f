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

package tune

import (
	"strings"

	pgn "gopkg.in/freeeve/pgn.v1"
)

// benchPGN is a short, fixed set of well-known openings used to build the
// bench command's search suite. It is deliberately small and hand
// curated: bench is a smoke test for search speed and node count
// regressions across commits, not a strength benchmark, so the suite only
// needs to be stable and varied, not large.
const benchPGN = `[Event "Ruy Lopez"]
1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 Nf6 5. O-O Be7 6. Re1 b5 7. Bb3 d6 *

[Event "King's Indian"]
1. d4 Nf6 2. c4 g6 3. Nc3 Bg7 4. e4 d6 5. Nf3 O-O 6. Be2 e5 7. O-O Nc6 *

[Event "English"]
1. c4 e5 2. Nc3 Nf6 3. Nf3 Nc6 4. g3 d5 5. cxd5 Nxd5 6. Bg2 Nb6 7. O-O Be7 *

[Event "Caro-Kann"]
1. e4 c6 2. d4 d5 3. Nc3 dxe4 4. Nxe4 Bf5 5. Ng3 Bg6 6. h4 h6 7. Nf3 Nd7 *

[Event "Queen's Gambit Declined"]
1. d4 d5 2. c4 e6 3. Nc3 Nf6 4. Bg5 Be7 5. e3 O-O 6. Nf3 h6 7. Bh4 b6 *
`

// BenchSuite replays the fixed opening set above through
// gopkg.in/freeeve/pgn.v1's SAN move parser and returns the FEN reached
// at the end of each game: a small, deterministic set of early
// middlegame positions for the bench command to search.
func BenchSuite() []string {
	var fens []string

	scanner := pgn.NewPGNScanner(strings.NewReader(benchPGN))
	for scanner.Next() {
		game, err := scanner.ParseGame()
		if err != nil {
			continue
		}

		b := pgn.NewBoard()
		for _, move := range game.Moves {
			if err := b.MakeMove(move); err != nil {
				break
			}
		}

		fens = append(fens, b.String())
	}

	return fens
}

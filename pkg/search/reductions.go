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

import "math"

// LMR reductions indexed by depth and move number. The table, not the
// formula, is the contract: it is computed once at startup so the hot
// search loop never pays for a logarithm.
var reductions [MaxDepth + 1][128]int

func init() {
	for depth := 1; depth <= MaxDepth; depth++ {
		for moves := 1; moves < 128; moves++ {
			r := 0.403*math.Log(float64(depth)) + 0.877*math.Log(float64(moves))
			if r > 0 {
				reductions[depth][moves] = int(r)
			}
		}
	}
}

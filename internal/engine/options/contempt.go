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

package options

import (
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/uci/option"
)

// UCI option Contempt, type spin
//
// The engine's draw aversion, in centipawns of a pawn. A positive value
// makes the engine avoid draws against what it thinks are weaker
// opponents; a negative value makes it seek them out instead.
func NewContempt(engine *context.Engine) option.Option {
	return &option.Spin{
		Default: 10,
		Min:     -100, Max: 100,

		Storage: func(contempt int) error {
			engine.Options.Contempt = contempt
			engine.Search.Contempt = contempt
			return nil
		},
	}
}

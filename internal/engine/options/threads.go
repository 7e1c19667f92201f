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

// maxThreads bounds the Threads option. It mirrors search.maxWorkers,
// the size of the scheduling bookkeeping a Context keeps per worker.
const maxThreads = 64

// UCI option Threads, type spin
//
// The number of search workers the engine should run in parallel. Every
// worker searches the same position with its own move ordering state,
// sharing one transposition table (lazy SMP).
func NewThreads(engine *context.Engine) option.Option {
	return &option.Spin{
		Default: 1,
		Min:     1, Max: maxThreads,

		Storage: func(threads int) error {
			engine.Options.Threads = threads
			engine.Search.SetThreads(threads)
			return nil
		},
	}
}

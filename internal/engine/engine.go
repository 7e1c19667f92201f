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

// Package engine wires together the UCI command schema, the UCI option
// schema, and the search.Context into a runnable uci.Client.
package engine

import (
	"github.com/corvidchess/corvid/internal/engine/cmd"
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/internal/engine/options"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/uci"
	"github.com/corvidchess/corvid/pkg/uci/option"
)

// NewClient creates a new uci.Client wired up with the engine's commands
// and options, ready to have Start called on it.
func NewClient() *uci.Client {
	client := uci.NewClient()

	engine := &context.Engine{
		Client: client,
	}

	engine.Search = search.NewContext(func(r search.Report) {
		engine.Client.Println(r)
	}, 16)

	engine.OptionSchema = option.NewSchema()
	engine.OptionSchema.AddOption("Hash", options.NewHash(engine))
	engine.OptionSchema.AddOption("Threads", options.NewThreads(engine))
	engine.OptionSchema.AddOption("Ponder", options.NewPonder(engine))
	engine.OptionSchema.AddOption("Contempt", options.NewContempt(engine))
	_ = engine.OptionSchema.SetDefaults()

	client.AddCommand(cmd.NewD(engine))
	client.AddCommand(cmd.NewUci(engine))
	client.AddCommand(cmd.NewUciNewGame(engine))
	client.AddCommand(cmd.NewPosition(engine))
	client.AddCommand(cmd.NewGo(engine))
	client.AddCommand(cmd.NewStop(engine))
	client.AddCommand(cmd.NewPonderHit(engine))
	client.AddCommand(cmd.NewSetOption(engine))
	client.AddCommand(cmd.NewBench(engine))

	return engine.Client
}

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

package watch

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	ui "github.com/gizak/termui/v3"
	"github.com/mitchellh/colorstring"
	"golang.org/x/term"

	"github.com/corvidchess/corvid/internal/engine"
)

// Run boots a fresh engine internally and renders its search of the
// starting position as a live termui dashboard instead of printing raw
// UCI output. It blocks until the user quits with "q" or Ctrl-C.
func Run() error {
	client := engine.NewClient()

	lines := make(chan string, 256)
	client.SetOutput(&lineSplitter{lines: lines})

	if err := ui.Init(); err != nil {
		return fmt.Errorf("watch: failed to initialize terminal: %w", err)
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		width, height = w, h
	}

	dash := newDashboard()
	dash.resize(width, height)
	ui.Render(dash.widgets()...)

	go func() {
		_ = client.Run("uci")
		_ = client.Run("isready")
		_ = client.Run("ucinewgame")
		_ = client.Run("position", "startpos")
		_ = client.Run("go", "infinite")
	}()

	uiEvents := ui.PollEvents()
	for {
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>":
				_ = client.Run("stop")
				ui.Close()
				fmt.Println(colorstring.Color("[green]watch: search stopped[reset]"))
				return nil

			case "<Resize>":
				payload := e.Payload.(ui.Resize)
				width, height = payload.Width, payload.Height
				dash.resize(width, height)
				ui.Render(dash.widgets()...)
			}

		case line := <-lines:
			if in, ok := parseInfo(line); ok {
				dash.update(in, width)
				ui.Render(dash.widgets()...)
			}
		}
	}
}

// lineSplitter is an io.Writer that reassembles the engine's output,
// which arrives through one or more fmt.Fprint* calls per UCI line, back
// into complete newline-terminated lines forwarded on lines.
type lineSplitter struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	lines chan<- string
}

func (w *lineSplitter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)

	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// no newline yet: put the partial line back and wait for more
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.lines <- strings.TrimRight(line, "\n")
	}

	return len(p), nil
}

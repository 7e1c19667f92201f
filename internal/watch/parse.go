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

// Package watch implements a live termui dashboard frontend for the
// engine: instead of a UCI repl, it runs an infinite search from the
// starting position and renders the progress of the search's info lines
// as a set of widgets.
package watch

import "strings"

// info holds the fields of a single "info ..." line that the dashboard
// cares about, pulled out of search.Report's UCI string form rather than
// depending on the search package's internal Report type directly, since
// the watch frontend only ever sees the engine through its UCI output.
type info struct {
	Depth    string
	SelDepth string
	Score    string
	Nodes    string
	Nps      string
	Hashfull string
	PV       string
}

// parseInfo extracts the fields of an "info ..." UCI line. It returns
// false for any other kind of engine output (id, bestmove, errors, ...).
func parseInfo(line string) (info, bool) {
	if !strings.HasPrefix(line, "info ") {
		return info{}, false
	}

	fields := strings.Fields(line)

	var out info
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			i++
			out.Depth = field(fields, i)
		case "seldepth":
			i++
			out.SelDepth = field(fields, i)
		case "score":
			// "score" is followed by two tokens: "cp N" or "mate N"
			out.Score = field(fields, i+1) + " " + field(fields, i+2)
			i += 2
		case "nodes":
			i++
			out.Nodes = field(fields, i)
		case "nps":
			i++
			out.Nps = field(fields, i)
		case "hashfull":
			i++
			out.Hashfull = field(fields, i)
		case "pv":
			out.PV = strings.Join(fields[i+1:], " ")
			i = len(fields)
		}
	}

	return out, true
}

// field safely indexes fields, returning "" past the end instead of
// panicking on a malformed or truncated line.
func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

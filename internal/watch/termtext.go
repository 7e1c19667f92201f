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
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
	"github.com/rivo/uniseg"
)

// truncateWidth cuts s down to at most width terminal columns, stopping
// at a grapheme cluster boundary rather than a rune or byte boundary, so
// a combining mark is never separated from its base character.
func truncateWidth(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}

	var b strings.Builder
	used := 0

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if used+w > width {
			break
		}
		b.WriteString(cluster)
		used += w
	}

	return b.String()
}

// wrapPV truncates an overlong principal variation and wraps it to the
// given terminal width for display in a fixed-height widget.
func wrapPV(pv string, width int) string {
	if width < 8 {
		width = 8
	}
	return wordwrap.WrapString(truncateWidth(pv, width*8), uint(width))
}

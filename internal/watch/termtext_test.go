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
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncateWidthShortStringUnchanged(t *testing.T) {
	s := "e2e4 e7e5"
	if got := truncateWidth(s, 80); got != s {
		t.Errorf("truncateWidth(%q, 80) = %q, want unchanged", s, got)
	}
}

func TestTruncateWidthCutsToWidth(t *testing.T) {
	s := strings.Repeat("ab", 40)
	got := truncateWidth(s, 10)
	if w := runewidth.StringWidth(got); w > 10 {
		t.Errorf("truncateWidth result width = %d, want <= 10", w)
	}
	if !strings.HasPrefix(s, got) {
		t.Errorf("truncateWidth(%q, 10) = %q, want a prefix of the input", s, got)
	}
}

func TestWrapPVWrapsLongLines(t *testing.T) {
	pv := "e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5a4 g8f6 e1g1 f8e7"
	wrapped := wrapPV(pv, 16)

	for _, line := range strings.Split(wrapped, "\n") {
		if w := runewidth.StringWidth(line); w > 16 {
			t.Errorf("wrapped line %q has width %d, want <= 16", line, w)
		}
	}
}

func TestWrapPVMinimumWidth(t *testing.T) {
	// widths below 8 are clamped up, so this must not panic or produce
	// a pathologically narrow wrap.
	if wrapPV("e2e4 e7e5 g1f3", 1) == "" {
		t.Error("wrapPV with a tiny width produced no output")
	}
}

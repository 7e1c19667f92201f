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

import "testing"

func TestParseInfoRejectsNonInfoLines(t *testing.T) {
	for _, line := range []string{"bestmove e2e4", "id name Corvid", "uciok", ""} {
		if _, ok := parseInfo(line); ok {
			t.Errorf("parseInfo(%q) accepted a non-info line", line)
		}
	}
}

func TestParseInfoExtractsFields(t *testing.T) {
	line := "info depth 12 seldepth 18 score cp 34 nodes 1234567 nps 987654 hashfull 231 pv e2e4 e7e5 g1f3"

	in, ok := parseInfo(line)
	if !ok {
		t.Fatalf("parseInfo(%q) returned ok=false", line)
	}

	want := info{
		Depth:    "12",
		SelDepth: "18",
		Score:    "cp 34",
		Nodes:    "1234567",
		Nps:      "987654",
		Hashfull: "231",
		PV:       "e2e4 e7e5 g1f3",
	}
	if in != want {
		t.Errorf("parseInfo(%q) = %+v, want %+v", line, in, want)
	}
}

func TestParseInfoMateScore(t *testing.T) {
	in, ok := parseInfo("info depth 5 score mate 3 nodes 100 pv f7f5")
	if !ok {
		t.Fatal("parseInfo returned ok=false")
	}
	if in.Score != "mate 3" {
		t.Errorf("Score = %q, want %q", in.Score, "mate 3")
	}
}

func TestParseInfoMissingTrailingValue(t *testing.T) {
	// a truncated line shouldn't panic: field() must guard the index.
	in, ok := parseInfo("info depth")
	if !ok {
		t.Fatal("parseInfo returned ok=false")
	}
	if in.Depth != "" {
		t.Errorf("Depth = %q, want empty string for a truncated line", in.Depth)
	}
}

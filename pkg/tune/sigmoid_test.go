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

package tune_test

import (
	"math"
	"testing"

	"github.com/corvidchess/corvid/pkg/tune"
)

func TestSigmoidMidpoint(t *testing.T) {
	if s := tune.Sigmoid(1.0, 0); s != 0.5 {
		t.Errorf("Sigmoid(1, 0) = %v, want 0.5", s)
	}
}

func TestSigmoidMonotonic(t *testing.T) {
	k := 1.2
	prev := tune.Sigmoid(k, -1000)
	for static := -900.0; static <= 1000; static += 100 {
		cur := tune.Sigmoid(k, static)
		if cur <= prev {
			t.Fatalf("Sigmoid not increasing at static=%v: prev %v, cur %v", static, prev, cur)
		}
		prev = cur
	}
}

func TestComputeEZeroForPerfectPredictions(t *testing.T) {
	samples := []tune.Sample{
		{Result: tune.Sigmoid(1, 300), FEN: "a"},
		{Result: tune.Sigmoid(1, -150), FEN: "b"},
		{Result: tune.Sigmoid(1, 0), FEN: "c"},
	}
	statics := []float64{300, -150, 0}
	static := func(i int) float64 { return statics[i] }

	if e := tune.ComputeE(samples, 1, static); math.Abs(e) > 1e-9 {
		t.Errorf("ComputeE with matching predictions = %v, want ~0", e)
	}
}

func TestComputeKFindsLowErrorRegion(t *testing.T) {
	const trueK = 1.1
	samples := []tune.Sample{
		{Result: tune.Sigmoid(trueK, 400), FEN: "a"},
		{Result: tune.Sigmoid(trueK, -200), FEN: "b"},
		{Result: tune.Sigmoid(trueK, 50), FEN: "c"},
		{Result: tune.Sigmoid(trueK, -600), FEN: "d"},
	}
	statics := []float64{400, -200, 50, -600}
	static := func(i int) float64 { return statics[i] }

	k := tune.ComputeK(samples, static, 3)
	if math.Abs(k-trueK) > 0.01 {
		t.Errorf("ComputeK = %v, want close to %v", k, trueK)
	}

	// the fitted K should not do (meaningfully) worse than the true K.
	if e, eTrue := tune.ComputeE(samples, k, static), tune.ComputeE(samples, trueK, static); e > eTrue+1e-9 {
		t.Errorf("ComputeE(fitted K) = %v is worse than ComputeE(true K) = %v", e, eTrue)
	}
}

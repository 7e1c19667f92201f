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

package tune

import "math"

// Sigmoid maps a static evaluation to a [0, 1] win-probability estimate,
// scaled by K.
func Sigmoid(k, static float64) float64 {
	return 1.0 / (1.0 + math.Exp(-k*static/400.0))
}

// ComputeE computes the mean squared error between the wdl predicted by
// static (scaled through Sigmoid with the given K) and each sample's
// actual game result.
func ComputeE(samples []Sample, k float64, static func(int) float64) float64 {
	var total float64
	for i, sample := range samples {
		total += math.Pow(sample.Result-Sigmoid(k, static(i)), 2)
	}
	return total / float64(len(samples))
}

// ComputeK searches for the K that minimizes ComputeE over samples, using
// the same progressively-refined line search the original tuner uses.
func ComputeK(samples []Sample, static func(int) float64, precision int) float64 {
	start, end, step := 0.0, 10.0, 1.0

	best := ComputeE(samples, start, static)
	bestK := start

	for i := 0; i <= precision; i++ {
		current := start - step
		for current < end {
			current += step
			if e := ComputeE(samples, current, static); e <= best {
				best, start, bestK = e, current, current
			}
		}

		end = start + step
		start = start - step
		step /= 10.0
	}

	return bestK
}

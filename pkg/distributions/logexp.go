// Copyright 2025 Distributions Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package distributions

import "math"

// log1mexp computes log(1 - exp(a)) for a <= 0 without catastrophic
// cancellation. The branch point at -ln 2 follows Maechler's formulation:
// close to zero 1-exp(a) loses precision, so expm1 carries it; far from zero
// exp(a) underflows gracefully and log1p carries it.
func log1mexp(a float64) float64 {
	if a > 0 {
		return math.NaN()
	}
	if a > -math.Ln2 {
		return math.Log(-math.Expm1(a))
	}
	return math.Log1p(-math.Exp(a))
}

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

// Package distributions implements univariate continuous probability
// distributions. Every distribution is an immutable value type generic over
// the floating-point precision, exposing the same capability set so generic
// callers can treat them uniformly. The method vocabulary follows
// gonum.org/v1/gonum/stat/distuv, so any Rand-only consumer of distuv types
// accepts these as well.
package distributions

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidParameter reports a distribution parameter outside its
	// domain at construction time.
	ErrInvalidParameter = errors.New("invalid distribution parameter")

	// ErrInvalidArgument reports an evaluation input outside its domain,
	// e.g. a quantile probability outside [0,1).
	ErrInvalidArgument = errors.New("invalid argument")
)

// Continuous is the capability set shared by all univariate continuous
// distributions in this package.
type Continuous[F constraints.Float] interface {
	NumParameters() int
	Params() []F
	Support() (lo, hi F)

	Mean() F
	Median() F
	Mode() F
	Variance() F
	StdDev() F
	Skewness() F
	ExKurtosis() F
	Entropy() F

	Prob(x F) F
	LogProb(x F) F
	CDF(x F) F
	LogCDF(x F) F
	Survival(x F) F
	LogSurvival(x F) F

	Quantile(p F) (F, error)
	Rand() F
}

// Sampler is the minimal sampling surface, compatible with
// gonum.org/v1/gonum/stat/distuv.
type Sampler interface {
	Rand() float64
}

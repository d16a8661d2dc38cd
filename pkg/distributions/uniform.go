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

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var _ Continuous[float64] = Uniform[float64]{}

// Uniform is the continuous uniform distribution on [min, max).
type Uniform[F constraints.Float] struct {
	src rand.Source
	min F
	max F
}

// NewUniform returns a uniform distribution on [min, max). Fails with
// ErrInvalidParameter unless both bounds are finite and min < max.
func NewUniform[F constraints.Float](min, max F, src rand.Source) (Uniform[F], error) {
	lo, hi := float64(min), float64(max)
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return Uniform[F]{}, errors.Wrapf(ErrInvalidParameter, "uniform bounds [%v, %v), want finite numbers", min, max)
	}
	if lo >= hi {
		return Uniform[F]{}, errors.Wrapf(ErrInvalidParameter, "uniform bounds [%v, %v), want min < max", min, max)
	}

	return Uniform[F]{min: min, max: max, src: src}, nil
}

func (u Uniform[F]) NumParameters() int {
	return 2
}

// Params returns the parameters in stable order: [min, max].
func (u Uniform[F]) Params() []F {
	return []F{u.min, u.max}
}

func (u Uniform[F]) Support() (lo, hi F) {
	return u.min, u.max
}

func (u Uniform[F]) Mean() F {
	return (u.min + u.max) / 2
}

func (u Uniform[F]) Median() F { return u.Mean() }

// Mode returns the midpoint; every point of the support is a mode, the
// midpoint is the conventional representative.
func (u Uniform[F]) Mode() F { return u.Mean() }

func (u Uniform[F]) Variance() F {
	w := float64(u.max) - float64(u.min)
	return F(w * w / 12)
}

func (u Uniform[F]) StdDev() F {
	w := float64(u.max) - float64(u.min)
	return F(w / (2 * math.Sqrt(3)))
}

func (u Uniform[F]) Skewness() F   { return 0 }
func (u Uniform[F]) ExKurtosis() F { return F(-6.0 / 5.0) }

// Entropy returns ln(max - min).
func (u Uniform[F]) Entropy() F {
	return F(math.Log(float64(u.max) - float64(u.min)))
}

func (u Uniform[F]) Prob(x F) F {
	if x < u.min || x >= u.max {
		return 0
	}
	return F(1 / (float64(u.max) - float64(u.min)))
}

func (u Uniform[F]) LogProb(x F) F {
	if x < u.min || x >= u.max {
		return F(math.Inf(-1))
	}
	return F(-math.Log(float64(u.max) - float64(u.min)))
}

func (u Uniform[F]) CDF(x F) F {
	switch {
	case x < u.min:
		return 0
	case x >= u.max:
		return 1
	default:
		return F((float64(x) - float64(u.min)) / (float64(u.max) - float64(u.min)))
	}
}

func (u Uniform[F]) LogCDF(x F) F {
	return F(math.Log(float64(u.CDF(x))))
}

func (u Uniform[F]) Survival(x F) F {
	return 1 - u.CDF(x)
}

func (u Uniform[F]) LogSurvival(x F) F {
	return F(math.Log(float64(u.Survival(x))))
}

// Quantile returns min + p (max - min). Fails with ErrInvalidArgument for p
// outside [0, 1).
func (u Uniform[F]) Quantile(p F) (F, error) {
	pv := float64(p)
	if !(pv >= 0 && pv < 1) {
		return 0, errors.Wrapf(ErrInvalidArgument, "quantile probability %v, want [0,1)", p)
	}
	return F(float64(u.min) + pv*(float64(u.max)-float64(u.min))), nil
}

// Rand returns a random sample drawn from the distribution.
func (u Uniform[F]) Rand() F {
	var rnd float64
	if u.src == nil {
		rnd = rand.Float64()
	} else {
		rnd = rand.New(u.src).Float64()
	}
	return F(rnd)*(u.max-u.min) + u.min
}

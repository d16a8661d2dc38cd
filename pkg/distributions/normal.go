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

var _ Continuous[float64] = Normal[float64]{}

// Normal is the normal distribution with mean mu and standard deviation
// sigma > 0.
type Normal[F constraints.Float] struct {
	src   rand.Source
	mu    F
	sigma F
}

// NewNormal returns a normal distribution with the given location and scale.
// Fails with ErrInvalidParameter unless mu is finite and sigma is a positive
// finite number.
func NewNormal[F constraints.Float](mu, sigma F, src rand.Source) (Normal[F], error) {
	m, s := float64(mu), float64(sigma)
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return Normal[F]{}, errors.Wrapf(ErrInvalidParameter, "normal mean %v, want a finite number", mu)
	}
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return Normal[F]{}, errors.Wrapf(ErrInvalidParameter, "normal stddev %v, want a positive finite number", sigma)
	}

	return Normal[F]{mu: mu, sigma: sigma, src: src}, nil
}

func (n Normal[F]) NumParameters() int {
	return 2
}

// Params returns the parameters in stable order: [mu, sigma].
func (n Normal[F]) Params() []F {
	return []F{n.mu, n.sigma}
}

func (n Normal[F]) Support() (lo, hi F) {
	return F(math.Inf(-1)), F(math.Inf(1))
}

func (n Normal[F]) Mean() F   { return n.mu }
func (n Normal[F]) Median() F { return n.mu }
func (n Normal[F]) Mode() F   { return n.mu }

func (n Normal[F]) Variance() F {
	s := float64(n.sigma)
	return F(s * s)
}

func (n Normal[F]) StdDev() F     { return n.sigma }
func (n Normal[F]) Skewness() F   { return 0 }
func (n Normal[F]) ExKurtosis() F { return 0 }

// Entropy returns 0.5 (1 + ln(2 pi)) + ln sigma.
func (n Normal[F]) Entropy() F {
	return F(0.5*(1+math.Log(2*math.Pi)) + math.Log(float64(n.sigma)))
}

func (n Normal[F]) Prob(x F) F {
	z := (float64(x) - float64(n.mu)) / float64(n.sigma)
	return F(math.Exp(-z*z/2) / (float64(n.sigma) * math.Sqrt(2*math.Pi)))
}

func (n Normal[F]) LogProb(x F) F {
	z := (float64(x) - float64(n.mu)) / float64(n.sigma)
	return F(-z*z/2 - math.Log(float64(n.sigma)) - math.Log(2*math.Pi)/2)
}

func (n Normal[F]) CDF(x F) F {
	z := (float64(x) - float64(n.mu)) / float64(n.sigma)
	return F(math.Erfc(-z/math.Sqrt2) / 2)
}

func (n Normal[F]) LogCDF(x F) F {
	return F(math.Log(float64(n.CDF(x))))
}

func (n Normal[F]) Survival(x F) F {
	z := (float64(x) - float64(n.mu)) / float64(n.sigma)
	return F(math.Erfc(z/math.Sqrt2) / 2)
}

func (n Normal[F]) LogSurvival(x F) F {
	return F(math.Log(float64(n.Survival(x))))
}

// Quantile returns mu + sigma sqrt(2) erfinv(2p - 1). Fails with
// ErrInvalidArgument for p outside [0, 1); p = 0 maps to -Inf.
func (n Normal[F]) Quantile(p F) (F, error) {
	pv := float64(p)
	if !(pv >= 0 && pv < 1) {
		return 0, errors.Wrapf(ErrInvalidArgument, "quantile probability %v, want [0,1)", p)
	}
	return F(float64(n.mu) + float64(n.sigma)*math.Sqrt2*math.Erfinv(2*pv-1)), nil
}

// Rand returns a random sample drawn from the distribution.
func (n Normal[F]) Rand() F {
	var rnd float64
	if n.src == nil {
		rnd = rand.NormFloat64()
	} else {
		rnd = rand.New(n.src).NormFloat64()
	}
	return F(rnd)*n.sigma + n.mu
}

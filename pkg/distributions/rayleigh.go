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
	"gonum.org/v1/gonum/stat/distuv"
)

// eulerGamma is the Euler-Mascheroni constant.
const eulerGamma = 0.57721566490153286060651209008240243104215933593992

var _ Continuous[float64] = Rayleigh[float64]{}

// Rayleigh is the Rayleigh distribution with scale sigma > 0. Its support is
// the open interval (0, +Inf). The zero value is not usable; construct
// instances with NewRayleigh or DefaultRayleigh.
type Rayleigh[F constraints.Float] struct {
	src   rand.Source
	sigma F
}

// NewRayleigh returns a Rayleigh distribution with the given scale. The
// source may be nil, in which case Rand falls back to the shared global
// source. Fails with ErrInvalidParameter unless the scale is a positive
// finite number.
func NewRayleigh[F constraints.Float](scale F, src rand.Source) (Rayleigh[F], error) {
	s := float64(scale)
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return Rayleigh[F]{}, errors.Wrapf(ErrInvalidParameter, "rayleigh scale %v, want a positive finite number", scale)
	}

	return Rayleigh[F]{sigma: scale, src: src}, nil
}

// DefaultRayleigh returns the unit Rayleigh distribution, NewRayleigh(1, src).
func DefaultRayleigh[F constraints.Float](src rand.Source) Rayleigh[F] {
	return Rayleigh[F]{sigma: 1, src: src}
}

// Convert re-expresses the distribution in another floating precision. The
// scale is already known positive, so no revalidation happens.
func Convert[To, From constraints.Float](r Rayleigh[From]) Rayleigh[To] {
	return Rayleigh[To]{sigma: To(r.sigma), src: r.src}
}

// Scale returns sigma.
func (r Rayleigh[F]) Scale() F {
	return r.sigma
}

// NumParameters returns the number of parameters, which is 1.
func (r Rayleigh[F]) NumParameters() int {
	return 1
}

// Params returns the parameters in stable order: [sigma].
func (r Rayleigh[F]) Params() []F {
	return []F{r.sigma}
}

// Support returns (0, +Inf), open at 0.
func (r Rayleigh[F]) Support() (lo, hi F) {
	return 0, F(math.Inf(1))
}

// Mean returns sigma * sqrt(pi/2).
func (r Rayleigh[F]) Mean() F {
	return F(float64(r.sigma) * math.Sqrt(math.Pi/2))
}

// Median returns sigma * sqrt(2 ln 4).
func (r Rayleigh[F]) Median() F {
	return F(float64(r.sigma) * math.Sqrt(2*math.Log(4)))
}

// Mode returns sigma.
func (r Rayleigh[F]) Mode() F {
	return r.sigma
}

// Variance returns sigma^2 * (2 - pi/2).
func (r Rayleigh[F]) Variance() F {
	s := float64(r.sigma)
	return F(s * s * (2 - math.Pi/2))
}

// StdDev returns sigma * sqrt(2 - pi/2).
func (r Rayleigh[F]) StdDev() F {
	return F(float64(r.sigma) * math.Sqrt(2-math.Pi/2))
}

// Skewness returns 2 sqrt(pi) (pi - 3) / (4 - pi)^1.5, independent of sigma.
func (r Rayleigh[F]) Skewness() F {
	return F(2 * math.Sqrt(math.Pi) * (math.Pi - 3) / math.Pow(4-math.Pi, 1.5))
}

// ExKurtosis returns -(6 pi^2 - 24 pi + 16) / (4 - pi)^2, independent of
// sigma.
func (r Rayleigh[F]) ExKurtosis() F {
	d := 4 - math.Pi
	return F(-(6*math.Pi*math.Pi - 24*math.Pi + 16) / (d * d))
}

// Entropy returns the differential entropy in nats,
// 1 - (ln 2)/2 + gamma/2 + ln sigma.
func (r Rayleigh[F]) Entropy() F {
	return F(1 - math.Ln2/2 + eulerGamma/2 + math.Log(float64(r.sigma)))
}

// Prob returns the value of the probability density function at x. Outside
// the support, including the boundary x = 0, the density is 0.
func (r Rayleigh[F]) Prob(x F) F {
	xv := float64(x)
	if xv <= 0 {
		return 0
	}
	s2 := float64(r.sigma) * float64(r.sigma)
	return F(xv / s2 * math.Exp(-xv*xv/(2*s2)))
}

// LogProb returns the natural logarithm of the density at x, -Inf outside
// the support.
func (r Rayleigh[F]) LogProb(x F) F {
	xv := float64(x)
	if xv <= 0 {
		return F(math.Inf(-1))
	}
	s := float64(r.sigma)
	return F(math.Log(xv) - 2*math.Log(s) - xv*xv/(2*s*s))
}

// LogSurvival returns the log of the complementary cumulative distribution
// function at x, -x^2/(2 sigma^2). Left of the support the survival function
// is identically 1, so the result is 0 there.
func (r Rayleigh[F]) LogSurvival(x F) F {
	xv := float64(x)
	if xv <= 0 {
		return 0
	}
	s := float64(r.sigma)
	return F(-xv * xv / (2 * s * s))
}

// Survival returns the complementary cumulative distribution function at x.
func (r Rayleigh[F]) Survival(x F) F {
	return F(math.Exp(float64(r.LogSurvival(x))))
}

// CDF returns the cumulative distribution function at x, computed as
// -expm1(LogSurvival(x)) to stay accurate deep in the lower tail.
func (r Rayleigh[F]) CDF(x F) F {
	return F(-math.Expm1(float64(r.LogSurvival(x))))
}

// LogCDF returns the log of the cumulative distribution function at x. The
// log1mexp helper keeps it stable when the survival probability is close
// to 1.
func (r Rayleigh[F]) LogCDF(x F) F {
	return F(log1mexp(float64(r.LogSurvival(x))))
}

// Quantile returns the inverse of the CDF at p, sqrt(-2 sigma^2 log1p(-p)).
// Fails with ErrInvalidArgument for any p outside [0, 1), including NaN: the
// closed form diverges at 1 and is meaningless beyond the unit interval.
func (r Rayleigh[F]) Quantile(p F) (F, error) {
	pv := float64(p)
	if !(pv >= 0 && pv < 1) {
		return 0, errors.Wrapf(ErrInvalidArgument, "quantile probability %v, want [0,1)", p)
	}
	s := float64(r.sigma)
	return F(math.Sqrt(-2 * s * s * math.Log1p(-pv))), nil
}

// Rand returns a random sample drawn from the distribution. It composes the
// standard exponential sampler: if E ~ Exponential(1) then
// sigma*sqrt(2E) ~ Rayleigh(sigma).
func (r Rayleigh[F]) Rand() F {
	e := distuv.Exponential{Rate: 1, Src: r.src}.Rand()
	return F(float64(r.sigma) * math.Sqrt(2*e))
}

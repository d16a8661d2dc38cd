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
	"crypto/sha256"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// SamplerFunc adapts a closure to the Sampler interface.
type SamplerFunc func() float64

func (f SamplerFunc) Rand() float64 { return f() }

// New builds a named float64 sampler backed by a ChaCha8 source seeded from a
// hash of all the arguments, so equal arguments always reproduce the same
// stream. Recognized names are "rayleigh" (sigma is the scale, mu is
// ignored), "lognormal", "normal", "uniform" (interpreted as the interval
// [mu-sigma, mu+sigma)) and "zipf", an integer-valued stream on [0, size]
// for index-style consumers. size only parameterizes zipf.
func New(distribution string, size, seed uint64, mu, sigma float64) (*rand.ChaCha8, Sampler, error) {
	hash := sha256.Sum256(
		[]byte(
			distribution + strconv.FormatUint(
				size,
				10,
			) + strconv.FormatUint(
				seed,
				10,
			) + strconv.FormatFloat(
				mu,
				'f',
				-1,
				64,
			) + strconv.FormatFloat(
				sigma,
				'f',
				-1,
				64,
			),
		),
	)

	src := rand.NewChaCha8(hash)

	switch strings.ToLower(distribution) {
	case "zipf":
		if size < 1 {
			return nil, nil, errors.Wrapf(ErrInvalidParameter, "zipf size %d, want at least 1", size)
		}

		zipf := rand.NewZipf(rand.New(src), 1.001, float64(size), size)

		return src, SamplerFunc(func() float64 {
			return float64(zipf.Uint64())
		}), nil
	case "lognormal":
		d := distuv.LogNormal{
			Src:   src,
			Mu:    mu,
			Sigma: sigma,
		}

		return src, SamplerFunc(d.Rand), nil
	default:
		d, err := NewContinuous(distribution, mu, sigma, src)
		if err != nil {
			return nil, nil, err
		}

		return src, SamplerFunc(d.Rand), nil
	}
}

// NewContinuous builds a named Continuous[float64] distribution on the given
// source. Recognized names are "rayleigh", "normal" and "uniform", with the
// same (mu, sigma) interpretation as New.
func NewContinuous(distribution string, mu, sigma float64, src rand.Source) (Continuous[float64], error) {
	switch strings.ToLower(distribution) {
	case "rayleigh":
		d, err := NewRayleigh(sigma, src)
		if err != nil {
			return nil, err
		}
		return d, nil
	case "normal":
		d, err := NewNormal(mu, sigma, src)
		if err != nil {
			return nil, err
		}
		return d, nil
	case "uniform":
		d, err := NewUniform(mu-sigma, mu+sigma, src)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, errors.Errorf("unsupported distribution: %s", distribution)
	}
}

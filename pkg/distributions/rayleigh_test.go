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
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestRayleighInvalidScale(t *testing.T) {
	t.Parallel()

	for name, scale := range map[string]float64{
		"zero":     0,
		"negative": -1,
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := NewRayleigh(scale, nil)
			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestRayleighParams(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	d, err := NewRayleigh(2.0, nil)
	assert.NoError(err)

	assert.Equal(1, d.NumParameters())
	assert.InDelta(2.0, d.Scale(), 0)
	assert.Empty(cmp.Diff([]float64{2}, d.Params()))

	lo, hi := d.Support()
	assert.Zero(lo)
	assert.True(math.IsInf(hi, 1))
}

func TestRayleighMoments(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	unit := DefaultRayleigh[float64](nil)

	assert.InDelta(1.2533141373155001, unit.Mean(), 1e-15)
	assert.InDelta(1.6651092223153954, unit.Median(), 1e-15)
	assert.InDelta(1.0, unit.Mode(), 0)
	assert.InDelta(0.42920367320510344, unit.Variance(), 1e-15)
	assert.InDelta(0.6551363775620336, unit.StdDev(), 1e-15)
	assert.InDelta(0.6311106578189364, unit.Skewness(), 1e-15)
	assert.InDelta(0.2450893006876391, unit.ExKurtosis(), 1e-15)
	assert.InDelta(0.9420342421707937, unit.Entropy(), 1e-15)

	wide, err := NewRayleigh(2.0, nil)
	assert.NoError(err)

	assert.InDelta(1.7168146928204138, wide.Variance(), 1e-15)
	assert.InDelta(2*1.2533141373155001, wide.Mean(), 1e-15)
	assert.InDelta(unit.Entropy()+math.Log(2), wide.Entropy(), 1e-15)
}

func TestRayleighDensity(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	d := DefaultRayleigh[float64](nil)

	assert.Zero(d.Prob(0))
	assert.Zero(d.Prob(-1))
	assert.True(math.IsInf(d.LogProb(0), -1))
	assert.True(math.IsInf(d.LogProb(-1), -1))

	assert.InDelta(0.6065306597126334, d.Prob(1), 1e-15)

	for _, x := range []float64{0.01, 0.5, 1, 2.5, 7} {
		assert.InEpsilon(d.Prob(x), math.Exp(d.LogProb(x)), 1e-12)
	}
}

func TestRayleighCumulativeConsistency(t *testing.T) {
	t.Parallel()

	for _, sigma := range []float64{0.5, 1, 2, 10} {
		t.Run(strconv.FormatFloat(sigma, 'f', -1, 64), func(t *testing.T) {
			t.Parallel()

			assert := require.New(t)

			d, err := NewRayleigh(sigma, nil)
			assert.NoError(err)

			for _, x := range []float64{0.01 * sigma, sigma, 5 * sigma, 20 * sigma} {
				assert.InDelta(1.0, d.CDF(x)+d.Survival(x), 1e-12)
				assert.InDelta(math.Log(d.CDF(x)), d.LogCDF(x), 1e-12)
				assert.InDelta(math.Log(d.Survival(x)), d.LogSurvival(x), 1e-12)
			}

			assert.InDelta(1.0, d.Survival(-3), 0)
			assert.Zero(d.CDF(-3))
			assert.Zero(d.LogSurvival(0))
		})
	}
}

func TestRayleighQuantileRoundTrip(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	d, err := NewRayleigh(2.0, nil)
	assert.NoError(err)

	p := d.CDF(3)
	assert.InDelta(0.6753475326416503, p, 1e-15)

	x, err := d.Quantile(p)
	assert.NoError(err)
	assert.InDelta(3.0, x, 1e-12)

	unit := DefaultRayleigh[float64](nil)
	for _, want := range []float64{0.1, 1, 2.5, 6} {
		x, err = unit.Quantile(unit.CDF(want))
		assert.NoError(err)
		assert.InDelta(want, x, 1e-9)
	}

	zero, err := unit.Quantile(0)
	assert.NoError(err)
	assert.Zero(zero)
}

func TestRayleighQuantileDomain(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	d := DefaultRayleigh[float64](nil)

	for _, p := range []float64{-0.1, 1, 1.5, math.NaN()} {
		_, err := d.Quantile(p)
		assert.ErrorIs(err, ErrInvalidArgument)
	}
}

func TestRayleighSampling(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	d := DefaultRayleigh[float64](rand.NewPCG(100, 100))

	samples := make([]float64, 100_000)
	for i := range samples {
		s := d.Rand()
		assert.Positive(s)
		samples[i] = s
	}

	mean, std := stat.MeanStdDev(samples, nil)

	assert.InEpsilon(1.2533141373155001, mean, 0.02)
	assert.InEpsilon(0.42920367320510344, std*std, 0.05)
}

func TestRayleighConvert(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	d, err := NewRayleigh(2.5, rand.NewPCG(1, 2))
	assert.NoError(err)

	narrow := Convert[float32](d)
	assert.InDelta(float32(2.5), narrow.Scale(), 0)
	assert.InDelta(float32(d.Mean()), narrow.Mean(), 1e-6)
	assert.Positive(narrow.Rand())

	back := Convert[float64](narrow)
	assert.InDelta(2.5, back.Scale(), 0)
}

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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	data := []struct {
		dist          string
		size          uint64
		mu, sigma     float64
		maxSameValues int
	}{
		{dist: "rayleigh", sigma: 1, maxSameValues: 10},
		{dist: "lognormal", mu: 0, sigma: 0.25, maxSameValues: 10},
		{dist: "normal", mu: 10, sigma: 2, maxSameValues: 10},
		{dist: "uniform", mu: 5, sigma: 2, maxSameValues: 10},
		{dist: "zipf", size: 10_000, maxSameValues: 10},
	}

	for _, item := range data {
		t.Run("test-"+item.dist, func(t *testing.T) {
			t.Parallel()

			assert := require.New(t)

			src, sampler, err := New(item.dist, item.size, 42, item.mu, item.sigma)
			assert.NoError(err)
			assert.NotNil(src)

			same := 0
			for range 1000 {
				if sampler.Rand() == sampler.Rand() {
					same++
				}
			}

			assert.LessOrEqual(same, item.maxSameValues, "too many identical consecutive draws")
		})
	}
}

func TestNewZipf(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	const size = 10_000

	_, first, err := New("zipf", size, 42, 0, 0)
	assert.NoError(err)

	_, second, err := New("zipf", size, 42, 0, 0)
	assert.NoError(err)

	for range 1000 {
		v := first.Rand()
		assert.InDelta(v, second.Rand(), 0)
		assert.GreaterOrEqual(v, 0.0)
		assert.LessOrEqual(v, float64(size))
		assert.InDelta(math.Trunc(v), v, 0)
	}

	_, _, err = New("zipf", 0, 42, 0, 0)
	assert.ErrorIs(err, ErrInvalidParameter)
}

func TestNewDeterministic(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	_, first, err := New("rayleigh", 0, 7, 0, 2)
	assert.NoError(err)

	_, second, err := New("rayleigh", 0, 7, 0, 2)
	assert.NoError(err)

	for range 100 {
		assert.InDelta(first.Rand(), second.Rand(), 0)
	}

	_, reseeded, err := New("rayleigh", 0, 8, 0, 2)
	assert.NoError(err)
	assert.NotEqual(first.Rand(), reseeded.Rand())
}

func TestNewUnsupported(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	_, _, err := New("poisson", 0, 1, 0, 1)
	assert.Error(err)

	_, err = NewContinuous("cauchy", 0, 1, nil)
	assert.Error(err)
}

func TestNewContinuous(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	d, err := NewContinuous("uniform", 5, 2, nil)
	assert.NoError(err)

	lo, hi := d.Support()
	assert.InDelta(3.0, lo, 0)
	assert.InDelta(7.0, hi, 0)

	r, err := NewContinuous("rayleigh", 0, 2, nil)
	assert.NoError(err)
	assert.Empty(r.Params()[1:])
	assert.InDelta(2.0, r.Params()[0], 0)

	_, err = NewContinuous("rayleigh", 0, -2, nil)
	assert.ErrorIs(err, ErrInvalidParameter)
}

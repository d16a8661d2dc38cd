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

// Package random provides the entropy sources samplers draw from: a
// crypto-backed process default, a time-mixed fallback for environments
// without a usable crypto source, and deterministic seeded sources for
// reproducible runs.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/bits"
	"math/rand/v2"
	"time"
)

// Source is the process-wide default source. It is crypto-backed when the
// platform provides entropy and time-mixed otherwise.
var Source rand.Source

type cryptoSource struct{}

func (c *cryptoSource) Uint64() uint64 {
	var out [8]byte
	_, _ = crand.Read(out[:])
	return binary.LittleEndian.Uint64(out[:])
}

// TimeSource mixes a PCG stream with the wall clock. It is not suitable for
// anything but last-resort seeding.
type TimeSource struct {
	source rand.Source
}

func NewTimeSource() *TimeSource {
	now := time.Now()
	val := uint64(now.Nanosecond() * now.Second())

	return &TimeSource{
		source: rand.NewPCG(val, val),
	}
}

func (c *TimeSource) Uint64() uint64 {
	now := time.Now()
	val := c.source.Uint64()
	return bits.RotateLeft64(val^uint64(now.Nanosecond()*now.Second()), -int(val>>58))
}

// NewSeeded returns a deterministic source for the given seed. Equal seeds
// produce equal streams.
func NewSeeded(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

func init() {
	var b [8]byte
	_, err := crand.Read(b[:])
	if err == nil {
		Source = &cryptoSource{}
	} else {
		// TimeSource advances an unguarded PCG stream, so the shared
		// fallback gets the locked wrapper.
		Source = NewLocked(NewTimeSource())
	}
}

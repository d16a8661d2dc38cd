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

package random

import (
	"math/rand/v2"
	"sync"
)

// Locked wraps a source with a mutex so one stream can be shared across
// goroutines. Deterministic sources stay deterministic in aggregate, though
// the per-goroutine interleaving is scheduling dependent.
type Locked struct {
	source rand.Source
	mu     sync.Mutex
}

func NewLocked(source rand.Source) *Locked {
	return &Locked{source: source}
}

func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.source.Uint64()
}

/*
 * Copyright 2019 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package store implements the VI-CBF counter store: a mapping from slot
// index to a bounded counter value, with absent entries denoting zero.
package store

// Store is the interface fulfilled by both counter store implementations.
// Get returns 0 for an absent slot. Set with v == 0 deletes the slot.
// Neither implementation is safe for concurrent use.
type Store interface {
	Get(slot uint32) uint32
	Set(slot uint32, v uint32)
	// Len returns the number of non-zero counters currently stored.
	Len() int
	// Range calls f for every non-zero counter. Iteration order is
	// unspecified. f must not mutate the store.
	Range(f func(slot uint32, v uint32))
}

// NewSparse returns a hash-map-backed Store, preferred while the filter is
// lightly loaded.
func NewSparse() Store {
	return &Sparse{counters: make(map[uint32]uint32)}
}

// NewDense returns an array-backed Store sized for m slots of width bits
// each, preferred once occupancy crosses the switchover threshold.
func NewDense(m uint32, width uint8) Store {
	return newDense(m, width)
}

// SwitchoverThreshold returns the occupancy count at which a dense array
// becomes more space-efficient than a sparse map: m*b / (b + ceil(log2 m)).
func SwitchoverThreshold(m uint32, b uint8) int {
	bits := bitLen(m)
	denom := int(b) + bits
	if denom <= 0 {
		return int(m)
	}
	threshold := (int(m) * int(b)) / denom
	if threshold < 0 {
		return 0
	}
	return threshold
}

func bitLen(m uint32) int {
	n := 0
	for v := uint32(1); v < m; v <<= 1 {
		n++
		if v == 1<<31 { // overflow guard for m close to 2^32
			break
		}
	}
	if n == 0 {
		n = 1
	}
	return n
}

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

package store

// Sparse is a hash-map-backed Store. Absent entries denote a counter value
// of 0; Set(slot, 0) deletes the entry instead of storing an explicit
// zero.
type Sparse struct {
	counters map[uint32]uint32
}

// Get returns the counter at slot, or 0 if absent.
func (s *Sparse) Get(slot uint32) uint32 {
	return s.counters[slot]
}

// Set stores v at slot, or deletes slot if v == 0.
func (s *Sparse) Set(slot uint32, v uint32) {
	if v == 0 {
		delete(s.counters, slot)
		return
	}
	s.counters[slot] = v
}

// Len returns the number of non-zero counters.
func (s *Sparse) Len() int {
	return len(s.counters)
}

// Range calls f for every non-zero counter. Iteration order follows Go's
// unspecified map iteration order.
func (s *Sparse) Range(f func(slot uint32, v uint32)) {
	for slot, v := range s.counters {
		f(slot, v)
	}
}

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

// Package vicbf implements a Variable-Increment Counting Bloom Filter, an
// approximate-membership data structure supporting insertion, deletion,
// and membership query over a stream of keys with a lower false-positive
// rate than a standard Counting Bloom Filter at equal counter width
// (Rottenstreich et al., "The Variable-Increment Counting Bloom Filter",
// INFOCOM 2012).
//
// The filter is not safe for concurrent use; callers that need to share a
// Filter across goroutines must provide their own synchronization.
package vicbf

import (
	"github.com/pkg/errors"

	"github.com/dgraph-io/vicbf/store"
	"github.com/dgraph-io/vicbf/vihash"
)

// validVibases enumerates the allowed variable-increment bases.
var validVibases = map[uint32]bool{2: true, 4: true, 8: true, 16: true}

// Filter is a Variable-Increment Counting Bloom Filter. Its parameters
// (m, k, L, b) are frozen at construction; only its counters mutate, via
// Insert and Remove.
type Filter struct {
	m uint32 // slot count
	k int    // hash function count
	l uint32 // variable-increment base
	b uint8  // bits per counter

	n      int64 // logical element count, may be transiently negative
	counts store.Store
	hasher vihash.Hasher
	log    Logger
}

// New constructs a Filter with m slots, k hash functions, and
// variable-increment base l. b defaults to 8 bits per counter; pass
// WithBits to change it. Returns ErrInvalidArgument if any parameter is
// outside its documented domain.
func New(m uint32, k int, l uint32, opts ...Option) (*Filter, error) {
	f := &Filter{
		m:      m,
		k:      k,
		l:      l,
		b:      8,
		hasher: vihash.Default,
		log:    noopLogger,
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	f.counts = store.NewSparse()
	f.log("vicbf: new filter m=%d k=%d l=%d b=%d", f.m, f.k, f.l, f.b)
	return f, nil
}

func (f *Filter) validate() error {
	if f.m < 1 {
		return errors.Wrap(ErrInvalidArgument, "m must be >= 1")
	}
	if f.k < 1 || f.k > 7 {
		return errors.Wrap(ErrInvalidArgument, "k must be in [1,7]")
	}
	if !validVibases[f.l] {
		return errors.Wrap(ErrInvalidArgument, "vibase must be one of {2,4,8,16}")
	}
	if f.b < 1 || f.b > 15 {
		return errors.Wrap(ErrInvalidArgument, "bits per counter must be in [1,15]")
	}
	return nil
}

// max returns the saturation value 2^b - 1.
func (f *Filter) max() uint32 {
	return (uint32(1) << f.b) - 1
}

// Insert adds x to the filter. Every touched counter either grows by its
// derived increment or clamps to the saturation value MAX; a saturated
// counter is never decremented below MAX again.
func (f *Filter) Insert(x interface{}) error {
	encoded, ok := encodeKey(x)
	if !ok {
		return errors.Wrap(ErrInvalidArgument, "key must be non-nil")
	}
	max := f.max()
	for _, t := range deriveTerms(f.hasher, encoded, f.k, f.m, f.l) {
		v := f.counts.Get(t.slot) + t.delta
		if v >= max {
			v = max
		}
		f.counts.Set(t.slot, v)
	}
	f.n++
	return nil
}

// remove action kinds, computed during Remove's plan phase before any
// counter is touched. A saturated slot is frozen; every other slot
// decrements by its derived delta, which naturally deletes the slot's
// entry in the Store once it reaches 0.
type removeAction int

const (
	actionFreeze removeAction = iota
	actionDecrement
)

// Remove deletes one occurrence of x from the filter. It validates every
// touched slot before mutating any of them: if any non-saturated slot
// can't accommodate the decrement, Remove returns ErrNotPresent and leaves
// the filter bitwise unchanged. This two-phase plan-then-apply structure
// avoids mutating earlier slots before discovering a later slot can't
// accommodate the decrement.
func (f *Filter) Remove(x interface{}) error {
	encoded, ok := encodeKey(x)
	if !ok {
		return errors.Wrap(ErrInvalidArgument, "key must be non-nil")
	}
	terms := deriveTerms(f.hasher, encoded, f.k, f.m, f.l)
	max := f.max()

	actions := make([]removeAction, len(terms))
	// need sums the decrements planned so far per slot, so a slot shared by
	// two of this key's k terms must accommodate both deltas.
	need := make(map[uint32]uint32, len(terms))
	for i, t := range terms {
		v := f.counts.Get(t.slot)
		switch {
		case v == max:
			actions[i] = actionFreeze
		case v < need[t.slot]+t.delta:
			return ErrNotPresent
		default:
			actions[i] = actionDecrement
			need[t.slot] += t.delta
		}
	}

	for i, t := range terms {
		if actions[i] == actionDecrement {
			// re-read at apply time: if two of this key's k slots
			// collided, this reflects any decrement already applied to
			// the same slot earlier in this same loop.
			f.counts.Set(t.slot, f.counts.Get(t.slot)-t.delta)
		}
		// actionFreeze: saturated counters are frozen to avoid inducing
		// false negatives; no-op.
	}
	f.n--
	return nil
}

// Query reports whether x is possibly present. A false return is
// definitive; a true return may be a false positive. Query never returns
// false for a key with at least one net insertion outstanding and no
// saturation at its slots.
func (f *Filter) Query(x interface{}) (bool, error) {
	encoded, ok := encodeKey(x)
	if !ok {
		return false, errors.Wrap(ErrInvalidArgument, "key must be non-nil")
	}
	for _, t := range deriveTerms(f.hasher, encoded, f.k, f.m, f.l) {
		v := f.counts.Get(t.slot)
		if v == 0 {
			return false, nil
		}
		if v < t.delta {
			return false, nil
		}
		residue := v - t.delta
		if residue > 0 && residue < f.l {
			return false, nil
		}
	}
	return true, nil
}

// Contains is an alias for Query.
func (f *Filter) Contains(x interface{}) (bool, error) {
	return f.Query(x)
}

// Len returns the filter's logical element count. Len can drift below the
// true multiset size because a Remove through a saturated slot decrements
// it without touching any counter.
func (f *Filter) Len() int64 {
	return f.n
}

// Size is an alias for Len.
func (f *Filter) Size() int64 {
	return f.n
}

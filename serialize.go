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

package vicbf

import (
	"sort"

	perrors "github.com/pkg/errors"

	"github.com/dgraph-io/vicbf/store"
	"github.com/dgraph-io/vicbf/vihash"
	"github.com/dgraph-io/vicbf/wire"
)

// Wire format constants. The header carries an extra 32-bit n field beyond
// the minimal mode/k/m/L/b fields, so size() and FPR() are correct
// immediately after Deserialize, bringing the header to 76 bits.
const (
	modeDumpAll   = 0
	modeSelective = 1

	headerModeBits = 1
	headerKBits    = 3
	headerMBits    = 32
	headerLBits    = 4
	headerBBits    = 4
	headerNBits    = 32
)

// indexBits returns ceil(log2(m)), the width of a selective-mode slot
// index field for m slots.
func indexBits(m uint32) int {
	if m <= 1 {
		return 0
	}
	bits := 0
	for (uint64(1) << uint(bits)) < uint64(m) {
		bits++
	}
	return bits
}

// Serialize encodes the filter into a freshly owned byte buffer. The
// payload uses whichever of DUMP_ALL or SELECTIVE is smaller, ties
// breaking toward DUMP_ALL.
func (f *Filter) Serialize() []byte {
	idxBits := indexBits(f.m)
	nonzero := f.counts.Len()
	costSel := nonzero * (idxBits + int(f.b))
	costAll := int(f.m) * int(f.b)

	mode := uint64(modeDumpAll)
	if costSel < costAll {
		mode = modeSelective
	}

	w := wire.NewWriter()
	w.WriteBits(mode, headerModeBits)
	w.WriteBits(uint64(f.k), headerKBits)
	w.WriteBits(uint64(f.m), headerMBits)
	w.WriteBits(uint64(f.l%16), headerLBits)
	w.WriteBits(uint64(f.b), headerBBits)
	w.WriteBits(uint64(uint32(int32(f.n))), headerNBits)

	if mode == modeDumpAll {
		f.writeDumpAll(w)
		f.log("vicbf: serialize mode=dump_all bytes=%d", len(w.Bytes()))
	} else {
		f.writeSelective(w, idxBits)
		f.log("vicbf: serialize mode=selective bytes=%d", len(w.Bytes()))
	}
	return w.Bytes()
}

func (f *Filter) writeDumpAll(w *wire.Writer) {
	for slot := uint32(0); slot < f.m; slot++ {
		w.WriteBits(uint64(f.counts.Get(slot)), int(f.b))
	}
}

func (f *Filter) writeSelective(w *wire.Writer, idxBits int) {
	type pair struct {
		slot uint32
		v    uint32
	}
	pairs := make([]pair, 0, f.counts.Len())
	f.counts.Range(func(slot uint32, v uint32) {
		pairs = append(pairs, pair{slot, v})
	})
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].slot < pairs[j].slot })
	for _, p := range pairs {
		w.WriteBits(uint64(p.slot), idxBits)
		w.WriteBits(uint64(p.v), int(f.b))
	}
}

// Deserialize reconstructs a Filter from a byte buffer produced by
// Serialize. It does not retain buf. Returns ErrMalformedInput if the
// header is truncated or describes out-of-range parameters, or if the
// payload is truncated, has an out-of-range selective index, or a
// duplicate selective index.
func Deserialize(buf []byte, opts ...Option) (*Filter, error) {
	r := wire.NewReader(buf)

	mode, err := r.ReadBits(headerModeBits)
	if err != nil {
		return nil, perrors.Wrap(ErrMalformedInput, "truncated mode")
	}
	kRaw, err := r.ReadBits(headerKBits)
	if err != nil {
		return nil, perrors.Wrap(ErrMalformedInput, "truncated k")
	}
	mRaw, err := r.ReadBits(headerMBits)
	if err != nil {
		return nil, perrors.Wrap(ErrMalformedInput, "truncated m")
	}
	lRaw, err := r.ReadBits(headerLBits)
	if err != nil {
		return nil, perrors.Wrap(ErrMalformedInput, "truncated L_tag")
	}
	bRaw, err := r.ReadBits(headerBBits)
	if err != nil {
		return nil, perrors.Wrap(ErrMalformedInput, "truncated b")
	}
	nRaw, err := r.ReadBits(headerNBits)
	if err != nil {
		return nil, perrors.Wrap(ErrMalformedInput, "truncated n")
	}

	k := int(kRaw)
	m := uint32(mRaw)
	l := uint32(lRaw)
	if l == 0 {
		l = 16
	}
	b := uint8(bRaw)
	n := int64(int32(uint32(nRaw)))

	f := &Filter{
		m:      m,
		k:      k,
		l:      l,
		b:      b,
		n:      n,
		hasher: vihash.Default,
		log:    noopLogger,
	}
	for _, opt := range opts {
		opt(f)
	}
	if verr := f.validate(); verr != nil {
		return nil, perrors.Wrap(ErrMalformedInput, verr.Error())
	}

	switch mode {
	case modeDumpAll:
		if err := f.readDumpAll(r); err != nil {
			return nil, err
		}
	case modeSelective:
		if err := f.readSelective(r); err != nil {
			return nil, err
		}
	default:
		return nil, perrors.Wrap(ErrMalformedInput, "unknown mode")
	}

	f.log("vicbf: deserialize m=%d k=%d l=%d b=%d n=%d", f.m, f.k, f.l, f.b, f.n)
	return f, nil
}

func (f *Filter) readDumpAll(r *wire.Reader) error {
	values := make([]uint32, f.m)
	nonzero := 0
	for slot := uint32(0); slot < f.m; slot++ {
		v, err := r.ReadBits(int(f.b))
		if err != nil {
			return perrors.Wrap(ErrMalformedInput, "truncated dump_all payload")
		}
		values[slot] = uint32(v)
		if v != 0 {
			nonzero++
		}
	}
	f.counts = newStoreFor(f.m, f.b, nonzero)
	for slot, v := range values {
		if v != 0 {
			f.counts.Set(uint32(slot), v)
		}
	}
	return nil
}

func (f *Filter) readSelective(r *wire.Reader) error {
	idxBits := indexBits(f.m)
	pairWidth := idxBits + int(f.b)
	type pair struct {
		slot uint32
		v    uint32
	}
	var pairs []pair
	seen := make(map[uint32]bool)
	// The payload carries no explicit pair count; the writer only zero-pads
	// up to the next byte boundary, so trailing padding is always under 8
	// bits, and the writer never emits a pair with a zero counter. With a
	// narrow pairWidth (< 8, e.g. a tiny m and b) the final under-8-bit tail
	// may hold one more pair or only padding; a zero counter read from that
	// tail marks it as padding and ends the payload.
	for pairWidth > 0 && r.Remaining() >= pairWidth {
		tail := r.Remaining() < 8
		idx, err := r.ReadBits(idxBits)
		if err != nil {
			return perrors.Wrap(ErrMalformedInput, "truncated selective index")
		}
		v, err := r.ReadBits(int(f.b))
		if err != nil {
			return perrors.Wrap(ErrMalformedInput, "truncated selective counter")
		}
		if tail && v == 0 {
			break
		}
		slot := uint32(idx)
		if slot >= f.m {
			return perrors.Wrap(ErrMalformedInput, "selective index out of range")
		}
		if seen[slot] {
			return perrors.Wrap(ErrMalformedInput, "duplicate selective index")
		}
		seen[slot] = true
		pairs = append(pairs, pair{slot, uint32(v)})
	}
	if r.Remaining() >= 8 {
		return perrors.Wrap(ErrMalformedInput, "truncated selective payload")
	}
	f.counts = newStoreFor(f.m, f.b, len(pairs))
	for _, p := range pairs {
		if p.v != 0 {
			f.counts.Set(p.slot, p.v)
		}
	}
	return nil
}

// newStoreFor picks Dense or Sparse for a filter being constructed with
// `occupancy` counters already known up front (true only via Deserialize;
// store choice is otherwise re-evaluated only at construction time).
func newStoreFor(m uint32, b uint8, occupancy int) store.Store {
	if occupancy > store.SwitchoverThreshold(m, b) {
		return store.NewDense(m, b)
	}
	return store.NewSparse()
}

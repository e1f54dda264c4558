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
	"github.com/dgraph-io/vicbf/vihash"
)

// term is one of the k (slot, delta) pairs produced by deriving a key
// against a single hash-function index.
type term struct {
	slot  uint32
	delta uint32
}

// deriveTerms computes the k (slot, delta) pairs for encoded key bytes: hash
// a key plus a running index, fold the digest down to a bounded value. It
// uses two differently-ordered hash inputs per index so the slot and
// increment draws are independent:
//
//	slot(x,i)  = H(encode(x) || encode(i))      mod m
//	dl(x,i)    = H(encode(-i) || encode(x))     mod L
//	delta(x,i) = L + dl(x,i)
func deriveTerms(h vihash.Hasher, encoded []byte, k int, m uint32, l uint32) []term {
	terms := make([]term, k)
	for i := 0; i < k; i++ {
		terms[i] = term{
			slot:  slotFor(h, encoded, i, m),
			delta: l + dlFor(h, encoded, i, l),
		}
	}
	return terms
}

func slotFor(h vihash.Hasher, encoded []byte, i int, m uint32) uint32 {
	buf := make([]byte, 0, len(encoded)+11)
	buf = append(buf, encoded...)
	buf = append(buf, encodeInt(i)...)
	return uint32(h.Sum(buf) % uint64(m))
}

func dlFor(h vihash.Hasher, encoded []byte, i int, l uint32) uint32 {
	buf := make([]byte, 0, len(encoded)+12)
	buf = append(buf, encodeInt(-i)...)
	buf = append(buf, encoded...)
	return uint32(h.Sum(buf) % uint64(l))
}

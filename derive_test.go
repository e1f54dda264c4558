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
	"testing"

	"github.com/dgraph-io/vicbf/vihash"
	"github.com/stretchr/testify/require"
)

func TestDeriveTermsDeterministic(t *testing.T) {
	key, ok := encodeKey(123)
	require.True(t, ok)

	a := deriveTerms(vihash.Default, key, 3, 10000, 4)
	b := deriveTerms(vihash.Default, key, 3, 10000, 4)
	require.Equal(t, a, b)
}

func TestDeriveTermsBounds(t *testing.T) {
	key, ok := encodeKey("bound-check")
	require.True(t, ok)
	terms := deriveTerms(vihash.Default, key, 5, 997, 8)
	require.Len(t, terms, 5)
	for _, term := range terms {
		require.Less(t, term.slot, uint32(997))
		require.GreaterOrEqual(t, term.delta, uint32(8))
		require.Less(t, term.delta, uint32(16))
	}
}

func TestSlotAndDeltaAreIndependentDraws(t *testing.T) {
	key, ok := encodeKey("independent")
	require.True(t, ok)
	slot := slotFor(vihash.Default, key, 0, 10000)
	dl := dlFor(vihash.Default, key, 0, 4)
	// The two derivations hash differently-ordered inputs (encode(x)||encode(i)
	// vs encode(-i)||encode(x)), so nothing ties slot's value to dl's beyond
	// both being deterministic functions of the same key.
	require.Less(t, slot, uint32(10000))
	require.Less(t, dl, uint32(4))
}

func TestDifferentIndicesUsuallyProduceDifferentSlots(t *testing.T) {
	key, ok := encodeKey("distinct-slots")
	require.True(t, ok)
	terms := deriveTerms(vihash.Default, key, 7, 1<<20, 16)
	seen := make(map[uint32]bool)
	for _, term := range terms {
		seen[term.slot] = true
	}
	require.Greater(t, len(seen), 1, "k distinct hash indices should rarely collapse to one slot at this m")
}

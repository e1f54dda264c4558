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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func generateStoreTest(create func() Store) func(t *testing.T) {
	return func(t *testing.T) {
		s := create()
		require.Equal(t, uint32(0), s.Get(5))
		require.Equal(t, 0, s.Len())

		s.Set(5, 7)
		require.Equal(t, uint32(7), s.Get(5))
		require.Equal(t, 1, s.Len())

		s.Set(5, 9)
		require.Equal(t, uint32(9), s.Get(5))
		require.Equal(t, 1, s.Len())

		s.Set(5, 0)
		require.Equal(t, uint32(0), s.Get(5))
		require.Equal(t, 0, s.Len())

		seen := map[uint32]uint32{}
		s.Set(1, 10)
		s.Set(2, 20)
		s.Set(3, 30)
		s.Range(func(slot uint32, v uint32) { seen[slot] = v })
		require.Equal(t, map[uint32]uint32{1: 10, 2: 20, 3: 30}, seen)
	}
}

func TestSparse(t *testing.T) {
	generateStoreTest(func() Store { return NewSparse() })(t)
}

func TestDense(t *testing.T) {
	generateStoreTest(func() Store { return NewDense(16, 8) })(t)
}

func TestDenseNarrowWidth(t *testing.T) {
	d := NewDense(8, 3) // max counter value 7
	d.Set(0, 7)
	d.Set(1, 5)
	d.Set(7, 1)
	require.Equal(t, uint32(7), d.Get(0))
	require.Equal(t, uint32(5), d.Get(1))
	require.Equal(t, uint32(0), d.Get(2))
	require.Equal(t, uint32(1), d.Get(7))
	require.Equal(t, 3, d.Len())
}

func TestDenseOutOfRange(t *testing.T) {
	d := NewDense(4, 8)
	require.Equal(t, uint32(0), d.Get(100))
	d.Set(100, 5) // silently ignored, slot index is caller-validated upstream
	require.Equal(t, 0, d.Len())
	require.Equal(t, uint32(0), d.Get(100))
}

func TestSwitchoverThreshold(t *testing.T) {
	require.Greater(t, SwitchoverThreshold(10000, 8), 0)
	require.Less(t, SwitchoverThreshold(10000, 8), 10000)
}

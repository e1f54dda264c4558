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

// Package vihash supplies the hash kernel used to derive slot and increment
// indices for the Variable-Increment Counting Bloom Filter. The filter
// treats the kernel as a black box producing uniform bytes; callers may swap
// implementations via vicbf.WithHasher without touching the derivation math
// in the root package.
package vihash

import "github.com/cespare/xxhash/v2"

// Hasher turns an arbitrary byte string into a 64-bit digest. Implementations
// must be deterministic and safe for reuse across many calls on a single
// goroutine; the filter never calls a Hasher concurrently with itself.
type Hasher interface {
	Sum(data []byte) uint64
}

// XXHash is the default Hasher, backed by cespare/xxhash's one-shot
// 64-bit Sum64. It is allocation-free per call.
type XXHash struct{}

// Sum returns the xxhash digest of data.
func (XXHash) Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Default is the Hasher used when a Filter is constructed without an
// explicit WithHasher option.
var Default Hasher = XXHash{}

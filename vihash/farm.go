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

package vihash

import farm "github.com/dgryski/go-farm"

// FarmHasher is an alternate Hasher backed by Google's FarmHash, offered as
// a drop-in swap for XXHash so callers can pick whichever kernel performs
// best for their key distribution.
type FarmHasher struct{}

// Sum returns the FarmHash Fingerprint64 digest of data.
func (FarmHasher) Sum(data []byte) uint64 {
	return farm.Fingerprint64(data)
}

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

import "strconv"

// encodeKey canonicalizes a user-supplied key into the byte representation
// fed to the hash kernel. Strings and byte slices pass through unchanged;
// integers render as decimal ASCII so that insert(123) and a later
// query(123) agree whether or not the two calls cross process or wire
// boundaries. The bool return is false for a nil or empty key, which
// callers reject with ErrInvalidArgument.
func encodeKey(key interface{}) ([]byte, bool) {
	switch k := key.(type) {
	case nil:
		return nil, false
	case string:
		if k == "" {
			return nil, false
		}
		return []byte(k), true
	case []byte:
		if len(k) == 0 {
			return nil, false
		}
		out := make([]byte, len(k))
		copy(out, k)
		return out, true
	case int:
		return []byte(strconv.FormatInt(int64(k), 10)), true
	case int8:
		return []byte(strconv.FormatInt(int64(k), 10)), true
	case int16:
		return []byte(strconv.FormatInt(int64(k), 10)), true
	case int32:
		return []byte(strconv.FormatInt(int64(k), 10)), true
	case int64:
		return []byte(strconv.FormatInt(k, 10)), true
	case uint:
		return []byte(strconv.FormatUint(uint64(k), 10)), true
	case uint8:
		return []byte(strconv.FormatUint(uint64(k), 10)), true
	case uint16:
		return []byte(strconv.FormatUint(uint64(k), 10)), true
	case uint32:
		return []byte(strconv.FormatUint(uint64(k), 10)), true
	case uint64:
		return []byte(strconv.FormatUint(k, 10)), true
	default:
		return nil, false
	}
}

// encodeInt renders i as its canonical decimal ASCII form, used for both
// the hash-function index and its negation when deriving the increment
// sub-hash.
func encodeInt(i int) []byte {
	return []byte(strconv.Itoa(i))
}

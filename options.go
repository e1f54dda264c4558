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

import "github.com/dgraph-io/vicbf/vihash"

// Option configures a Filter at construction time. See tinylfu.Option for
// the style this is generalized from: small functional knobs applied in
// New, rather than a Config struct, since this filter only has a handful.
type Option func(f *Filter)

// WithHasher swaps the hash kernel used to derive slot and increment
// indices. The default is vihash.XXHash; vihash.FarmHasher is provided as
// an alternate.
func WithHasher(h vihash.Hasher) Option {
	return func(f *Filter) {
		f.hasher = h
	}
}

// WithBits overrides the default 8-bit counter width. b must be in [1,15];
// New returns ErrInvalidArgument otherwise.
func WithBits(b uint8) Option {
	return func(f *Filter) {
		f.b = b
	}
}

// Logger receives a handful of diagnostic lines: the filter's parameters
// when New or Deserialize builds it, and the serialization mode chosen by
// Serialize. It is never called from Insert, Remove, or Query.
type Logger func(format string, args ...interface{})

// WithLogger installs a diagnostic sink. The default is a no-op.
func WithLogger(l Logger) Option {
	return func(f *Filter) {
		if l != nil {
			f.log = l
		}
	}
}

func noopLogger(string, ...interface{}) {}

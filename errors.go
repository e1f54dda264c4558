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

import "github.com/pkg/errors"

// Sentinel error kinds returned by Filter's exported methods.
var (
	// ErrInvalidArgument is returned for a nil/empty key, or for a
	// constructor parameter outside its documented domain.
	ErrInvalidArgument = errors.New("vicbf: invalid argument")

	// ErrNotPresent is returned by Remove when the filter's counters
	// cannot accommodate the decrement implied by the key; the filter is
	// left unchanged.
	ErrNotPresent = errors.New("vicbf: key not present")

	// ErrMalformedInput is returned by Deserialize when the byte buffer
	// does not describe a valid filter.
	ErrMalformedInput = errors.New("vicbf: malformed input")
)

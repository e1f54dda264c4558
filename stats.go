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
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/dgraph-io/vicbf/store"
)

// Stats reports a human-readable summary of the filter's current memory
// footprint and occupancy.
func (f *Filter) Stats() string {
	occupied := f.counts.Len()
	denseBytes := (uint64(f.m)*uint64(f.b) + 7) / 8
	sparseBytes := uint64(occupied) * (4 + 4) // approximate slot+counter map entry cost
	threshold := store.SwitchoverThreshold(f.m, f.b)

	return fmt.Sprintf(
		"vicbf: m=%d k=%d L=%d b=%d n=%d occupied=%d dense=%s sparse=%s switchover=%d",
		f.m, f.k, f.l, f.b, f.n, occupied,
		humanize.IBytes(denseBytes), humanize.IBytes(sparseBytes), threshold,
	)
}

// String implements fmt.Stringer with the same summary as Stats.
func (f *Filter) String() string {
	return f.Stats()
}

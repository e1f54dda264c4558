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

import "math"

// estimateFPR implements the closed-form false-positive-rate estimate from
// Rottenstreich et al., "The Variable-Increment Counting Bloom Filter"
// (INFOCOM 2012):
//
//	p0 = (1 - 1/m)^(nk)
//	p1 = ((L-1)/L) * (nk) * (1/m) * (1 - 1/m)^(nk-1)
//	p2 = (((L-1)(L+1)) / (6L^2)) * C(nk, 2) * (1/m)^2 * (1 - 1/m)^(nk-2)
//	FPR = (1 - p0 - p1 - p2)^k
//
// All arithmetic is IEEE-754 double precision.
func estimateFPR(m uint32, n int64, k int, l uint32) float64 {
	if n <= 0 {
		return 0
	}
	mf := float64(m)
	nk := float64(n) * float64(k)
	lf := float64(l)

	q := 1 - 1/mf
	p0 := math.Pow(q, nk)
	p1 := ((lf - 1) / lf) * nk * (1 / mf) * math.Pow(q, nk-1)
	p2 := (((lf - 1) * (lf + 1)) / (6 * lf * lf)) * comb2(nk) * (1 / mf / mf) * math.Pow(q, nk-2)

	inner := 1 - p0 - p1 - p2
	if inner < 0 {
		inner = 0
	}
	return math.Pow(inner, float64(k))
}

// comb2 returns C(a, 2) = a(a-1)/2 for a real-valued a; the estimator
// evaluates this combinatorial term at the real value nk, not an integer.
func comb2(a float64) float64 {
	return a * (a - 1) / 2
}

// FPR returns the estimated false-positive rate for the filter's current
// parameters and element count, via the closed form above evaluated at
// (m, max(n,0), k, L).
func (f *Filter) FPR() float64 {
	n := f.n
	if n < 0 {
		n = 0
	}
	return estimateFPR(f.m, n, f.k, f.l)
}

// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package myers

import (
	"math"

	"znkr.io/unidiff/internal/rvecs"
)

// Diff compares the token IDs in x and y and returns result vectors describing a minimal edit
// script: rx[s] is true if x[s] is deleted and ry[t] is true if y[t] is inserted. Both vectors
// have one extra false element at the end.
func Diff(x, y []int) (rx, ry []bool) {
	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	rx, ry = rvecs.Make(x, y)

	switch {
	case smin == smax && tmin == tmax:
		return rx, ry
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return rx, ry
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return rx, ry
	}

	// seen[id] has bit 1 set if id occurs in x and bit 2 set if it occurs in y.
	seen := make(map[int]uint8, smax-smin)
	for s := smin; s < smax; s++ {
		seen[x[s]] |= 1
	}
	for t := tmin; t < tmax; t++ {
		seen[y[t]] |= 2
	}

	// Elements that don't appear on the other side are changes, the rest goes into the search.
	var x0, y0, xidx, yidx []int
	for s := smin; s < smax; s++ {
		if seen[x[s]] == 3 {
			xidx = append(xidx, s)
			x0 = append(x0, x[s])
		} else {
			rx[s] = true
		}
	}
	for t := tmin; t < tmax; t++ {
		if seen[y[t]] == 3 {
			yidx = append(yidx, t)
			y0 = append(y0, y[t])
		} else {
			ry[t] = true
		}
	}

	var m myers
	m.xidx, m.yidx = xidx, yidx
	m.rx, m.ry = rx, ry
	smin0, smax0, tmin0, tmax0 := m.init(x0, y0)
	m.compare(smin0, smax0, tmin0, tmax0)
	return rx, ry
}

type myers struct {
	x, y []int

	// Furthest reaching endpoints for the forward and backward search. The endpoint of diagonal k
	// is stored as its s coordinate in v[v0+k], t is implied by t = s - k.
	vf, vb []int
	v0     int

	// Maps indices in x and y to indices in the result vectors.
	xidx, yidx []int

	rx, ry []bool
}

// init prepares m for comparing x and y and returns the bounds of the region that's left after
// stripping common prefixes and suffixes.
func (m *myers) init(x, y []int) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	diagonals := (smax - smin) + (tmax - tmin)
	vlen := 2*diagonals + 3 // all diagonals, the middle and one border on each side
	buf := make([]int, 2*vlen)
	m.x, m.y = x, y
	m.vf, m.vb = buf[:vlen], buf[vlen:]
	m.v0 = diagonals + 1

	if m.xidx == nil || m.yidx == nil {
		idx := make([]int, max(len(x), len(y)))
		for i := range idx {
			idx[i] = i
		}
		m.xidx = idx[:len(x)]
		m.yidx = idx[:len(y)]
	}
	if m.rx == nil || m.ry == nil {
		m.rx, m.ry = rvecs.Make(x, y)
	}
	return smin, smax, tmin, tmax
}

// compare marks the edits of a minimal path from (smin, tmin) to (smax, tmax).
//
// x[smin:smax] and y[tmin:tmax] must not have a common prefix or suffix.
func (m *myers) compare(smin, smax, tmin, tmax int) {
	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[m.yidx[t]] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[m.xidx[s]] = true
		}
	default:
		// The middle run of matches (s0, t0) to (s1, t1) splits the problem into two smaller
		// ones. Neither of them has a common prefix or suffix.
		s0, s1, t0, t1 := m.split(smin, smax, tmin, tmax)
		m.compare(smin, s0, tmin, t0)
		m.compare(s1, smax, t1, tmax)
	}
}

// split returns the start and end of a, possibly empty, run of matches in the middle of a minimal
// path from (smin, tmin) to (smax, tmax).
//
// x[smin:smax] and y[tmin:tmax] must not have a common prefix or suffix and must not both be
// empty.
func (m *myers) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int) {
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Diagonals that intersect the region.
	kmin, kmax := smin-tmax, smax-tmin

	// Both searches use the same diagonal numbers but start on different diagonals. That way an
	// overlap check compares vf[v0+k] and vb[v0+k] directly.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// By Corollary 1, the length of a minimal path has the parity of fmid-bmid. With an odd delta,
	// the searches can only meet after a forward step, otherwise after a backward step.
	odd := (fmid-bmid)%2 != 0

	// There is no common prefix or suffix, so there's no 0-path and the search starts at d=1.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	// Lemma 3 guarantees an overlap once d reaches ⌈(N+M)/2⌉, the loop needs no condition.
	for d := 1; ; d++ {
		// Grow the range of forward diagonals by one in each direction, but stay inside the
		// region. A sentinel at the border makes the predecessor choice below work without
		// special cases.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		// vf holds the endpoints of the furthest reaching (d-1)-paths on the diagonals of the
		// other parity (Lemma 1), so the d-paths can be written into the same array.
		for k := fmin; k <= fmax; k += 2 {
			k0 := v0 + k
			// Lemma 2: the furthest reaching d-path on k extends the one on k-1 by a deletion or
			// the one on k+1 by an insertion, whichever gets further.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1] // insertion from k+1
			} else {
				s = vf[k0-1] + 1 // deletion from k-1, also on ties
			}
			t := s - k
			sstart, tstart := s, t
			// Snake: follow the matches as far as possible.
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s
			// Overlap with the furthest reaching backward path on k, the snake is the middle run.
			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return sstart, s, tstart, t
			}
		}

		// The backward search mirrors the forward search.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := v0 + k
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k
			send, tend := s, t
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[k0] = s
			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, send, t, tend
			}
		}
	}
}

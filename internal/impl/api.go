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

// Package impl combines the building blocks of this module into the diff engine: Token IDs go in,
// a minimal and compacted edit script comes out.
//
// The engine doesn't know what the IDs stand for. It's used for lines as well as for word groups
// within lines.
package impl

import (
	"znkr.io/unidiff/internal/compact"
	"znkr.io/unidiff/internal/edits"
	"znkr.io/unidiff/internal/myers"
)

// Diff compares the token IDs x and y and returns compacted result vectors.
func Diff(x, y []int) (rx, ry []bool) {
	rx, ry = myers.Diff(x, y)
	compact.Apply(x, y, rx, ry)
	return rx, ry
}

// Script compares the token IDs x and y and returns a compacted edit script.
func Script(x, y []int) []edits.DiffRange {
	return edits.FromVectors(Diff(x, y))
}

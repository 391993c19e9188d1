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

package edits

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromVectors(t *testing.T) {
	tests := []struct {
		name   string
		rx, ry []bool
		want   []DiffRange
	}{
		{
			name: "empty",
			rx:   []bool{false},
			ry:   []bool{false},
			want: nil,
		},
		{
			name: "only-deletes",
			rx:   []bool{true, true, false},
			ry:   []bool{false},
			want: []DiffRange{
				{Delete, Range{0, 2}, Range{0, 0}},
			},
		},
		{
			name: "only-inserts",
			rx:   []bool{false},
			ry:   []bool{true, false},
			want: []DiffRange{
				{Insert, Range{0, 0}, Range{0, 1}},
			},
		},
		{
			name: "ABCABBA_to_CBABAC",
			rx:   []bool{true, false, true, false, false, true, false, false},
			ry:   []bool{true, false, false, false, false, true, false},
			want: []DiffRange{
				{Delete, Range{0, 1}, Range{0, 0}},
				{Insert, Range{1, 1}, Range{0, 1}},
				{Equal, Range{1, 2}, Range{1, 2}},
				{Delete, Range{2, 3}, Range{2, 2}},
				{Equal, Range{3, 5}, Range{2, 4}},
				{Delete, Range{5, 6}, Range{4, 4}},
				{Equal, Range{6, 7}, Range{4, 5}},
				{Insert, Range{7, 7}, Range{5, 6}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromVectors(tt.rx, tt.ry)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromVectors(...) result are different [-want,+got]:\n%s", diff)
			}
			rx, ry := ToVectors(got, len(tt.rx)-1, len(tt.ry)-1)
			if diff := cmp.Diff(tt.rx, rx); diff != "" {
				t.Errorf("ToVectors(...) rx is different [-want,+got]:\n%s", diff)
			}
			if diff := cmp.Diff(tt.ry, ry); diff != "" {
				t.Errorf("ToVectors(...) ry is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestToVectorsPanics(t *testing.T) {
	tests := []struct {
		name   string
		script []DiffRange
		n, m   int
	}{
		{
			name:   "gap",
			script: []DiffRange{{Equal, Range{0, 1}, Range{0, 1}}, {Equal, Range{2, 3}, Range{1, 2}}},
			n:      3,
			m:      2,
		},
		{
			name:   "overlap",
			script: []DiffRange{{Delete, Range{0, 2}, Range{0, 0}}, {Equal, Range{1, 2}, Range{0, 1}}},
			n:      2,
			m:      1,
		},
		{
			name:   "unequal-equal",
			script: []DiffRange{{Equal, Range{0, 2}, Range{0, 1}}},
			n:      2,
			m:      1,
		},
		{
			name:   "incomplete",
			script: []DiffRange{{Equal, Range{0, 1}, Range{0, 1}}},
			n:      2,
			m:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("ToVectors(...) did not panic")
				}
			}()
			ToVectors(tt.script, tt.n, tt.m)
		})
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{Equal: "Equal", Delete: "Delete", Insert: "Insert", Op(7): "Op(7)"} {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", int(op), got, want)
		}
	}
}

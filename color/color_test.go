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

package color

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/unidiff/internal/config"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want config.ColorConfig
	}{
		{"headers", Headers(1, 4), config.ColorConfig{Header: "\033[1;4m"}},
		{"hunk-headers", HunkHeaders(35), config.ColorConfig{HunkHeader: "\033[35m"}},
		{"sections", Sections(2), config.ColorConfig{Section: "\033[2m"}},
		{"matches", Matches(90), config.ColorConfig{Match: "\033[90m"}},
		{"deletes", Deletes(38, 5, 196), config.ColorConfig{Delete: "\033[38;5;196m"}},
		{"inserts", Inserts(32), config.ColorConfig{Insert: "\033[32m"}},
		{"no-params", Inserts(), config.ColorConfig{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got config.ColorConfig
			tt.opt(&got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("option result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestNoParamsDisablesStyling(t *testing.T) {
	cc := config.DefaultColors
	Deletes()(&cc)
	if cc.Delete != "" {
		t.Errorf("Deletes() = %q, want empty sequence", cc.Delete)
	}
	if cc.Insert != config.DefaultColors.Insert {
		t.Errorf("Deletes() changed the insert color to %q", cc.Insert)
	}
}

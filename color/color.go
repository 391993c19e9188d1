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

// Package color provides options to customize the colors used by [unidiff.TerminalColors].
//
// Every option takes a list of SGR parameters, e.g., color.Deletes(1, 31) renders deleted lines
// in bold red. Calling an option without parameters disables styling for that element.
//
// [unidiff.TerminalColors]: https://pkg.go.dev/znkr.io/unidiff#TerminalColors
package color

import (
	"fmt"
	"strings"

	"znkr.io/unidiff/internal/config"
)

// A Option makes it possible to configure custom colors in unidiff.TerminalColors.
type Option func(*config.ColorConfig)

// Headers colors the "---" and "+++" patch header lines.
func Headers(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Header = code
	}
}

// HunkHeaders colors hunk headers, the "@@ ... @@" part of the unified diff.
func HunkHeaders(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.HunkHeader = code
	}
}

// Sections colors the section label that follows a hunk header.
func Sections(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Section = code
	}
}

// Matches colors context lines.
func Matches(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Match = code
	}
}

// Deletes colors deleted lines and the deleted words within replaced lines.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors inserted lines and the inserted words within replaced lines.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}

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

package unidiff

import (
	"znkr.io/unidiff/color"
	"znkr.io/unidiff/internal/config"
)

// Option configures the behavior of comparison and formatting functions.
type Option = config.Option

// Context sets the number of matching lines to include before and after each change. The default
// is 3. Negative values are treated as 0.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Labels sets the labels for the "---" and "+++" header lines of a patch, typically the names of
// the compared files. By default, the header is omitted.
func Labels(original, modified string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Original = original
		cfg.Modified = modified
		return config.Labels
	}
}

// Sections annotates every hunk header with the nearest line before the hunk that looks like the
// beginning of a function or a section, similar to "git diff".
//
// A line qualifies if it starts with a letter, an underscore or a dollar sign.
func Sections() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Sections = true
		return config.Sections
	}
}

// TerminalColors enables colored output using ANSI escape sequences. Colors can be customized
// using the options in package [color]; elements without a custom color use the default palette.
//
// In color mode, lines that were replaced are compared word by word and only the words that
// changed are highlighted. This only happens for string inputs, patches created from []byte
// are never highlighted within lines.
func TerminalColors(opts ...color.Option) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Color = true
		cfg.Colors = config.DefaultColors
		for _, opt := range opts {
			opt(&cfg.Colors)
		}
		return config.Color
	}
}

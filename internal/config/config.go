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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// unidiff.Option and color.Option.
package config

// Config collects all configurable parameters for creating and formatting patches.
type Config struct {
	// Context is the number of matching lines to include before and after each change.
	Context int

	// Original and Modified are the labels for the "---" and "+++" patch header lines. Headers
	// are omitted if both are empty.
	Original, Modified string

	// If set, hunk headers are annotated with the nearest preceding line that looks like a
	// function or section heading.
	Sections bool

	// If set, output is decorated with ANSI escape sequences according to Colors.
	Color bool

	// Colors holds the SGR sequences used when Color is set.
	Colors ColorConfig
}

// ColorConfig holds the SGR escape sequences for every element of a patch. An empty sequence
// leaves the element unstyled.
type ColorConfig struct {
	Header     string
	HunkHeader string
	Section    string
	Match      string
	Delete     string
	Insert     string
}

// Reset ends any SGR styling.
const Reset = "\033[0m"

// DefaultColors is the default palette.
var DefaultColors = ColorConfig{
	Header:     "\033[1m",
	HunkHeader: "\033[36m",
	Section:    "",
	Match:      "",
	Delete:     "\033[31m",
	Insert:     "\033[32m",
}

// Default is the default configuration.
var Default = Config{
	Context: 3,
	Colors:  DefaultColors,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Context Flag = 1 << iota
	Labels
	Sections
	Color
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options. It panics if an option is used
// that's not in allowed.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "unidiff.Context"
	case Labels:
		return "unidiff.Labels"
	case Sections:
		return "unidiff.Sections"
	case Color:
		return "unidiff.TerminalColors"
	default:
		panic("never reached")
	}
}

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

package token

import (
	"unicode"
	"unicode/utf8"
)

// Grouping describes a class of characters that are grouped together.
//
// A group starts with a character for which Start holds, extends as long as Belongs holds and
// ends with the last character for which End holds.
type Grouping interface {
	Start(r rune) bool
	Belongs(r rune) bool
	End(r rune) bool
}

// Groupings are tried in order, the first one that starts at a position wins.
var groupings = [...]Grouping{
	Number{},
	AlphaNumeric{},
	Whitespace{},
}

// Number groups numeric literals like 3.1415. A number must start and end with a digit, so that a
// full stop ending a sentence is not mistaken for a decimal separator.
type Number struct{}

func (Number) Start(r rune) bool   { return unicode.IsNumber(r) }
func (Number) Belongs(r rune) bool { return unicode.IsNumber(r) || r == '.' }
func (Number) End(r rune) bool     { return unicode.IsNumber(r) }

// AlphaNumeric groups words and identifiers, including connector punctuation like '_'.
type AlphaNumeric struct{}

func (AlphaNumeric) Start(r rune) bool { return isAlphaNumeric(r) }
func (AlphaNumeric) Belongs(r rune) bool {
	return isAlphaNumeric(r)
}
func (AlphaNumeric) End(r rune) bool { return isAlphaNumeric(r) }

func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.In(r, unicode.Other_Alphabetic, unicode.Pc)
}

// Whitespace groups runs of whitespace, including newlines.
type Whitespace struct{}

func (Whitespace) Start(r rune) bool   { return unicode.In(r, unicode.White_Space) }
func (Whitespace) Belongs(r rune) bool { return unicode.In(r, unicode.White_Space) }
func (Whitespace) End(r rune) bool     { return unicode.In(r, unicode.White_Space) }

// groupLen returns the length in bytes of the group at the start of s. s must not be empty.
func groupLen(s string) int {
	first, size := utf8.DecodeRuneInString(s)
	for _, g := range groupings {
		if !g.Start(first) {
			continue
		}

		// Find the first character that doesn't belong to the group.
		end := len(s)
		for i, r := range s {
			if !g.Belongs(r) {
				end = i
				break
			}
		}

		// Walk back until we find a character that can end the group. This terminates at the
		// latest with the first character, because for all groupings Start implies End.
		for end > 0 {
			r, n := utf8.DecodeLastRuneInString(s[:end])
			if g.End(r) {
				return end
			}
			end -= n
		}
	}
	// By default, characters don't group at all.
	return size
}

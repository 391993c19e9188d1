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
	"znkr.io/unidiff/internal/byteview"
)

// Classifier maps tokens to dense integer IDs. Tokens with identical content always receive the
// same ID.
//
// A Classifier is meant to be used for a single comparison: Classify tokens of both sides with the
// same Classifier and discard it afterwards. The zero value is ready to use.
type Classifier struct {
	ids map[byteview.ByteView]int
}

// Classify returns the ID for the token v.
func (c *Classifier) Classify(v byteview.ByteView) int {
	if c.ids == nil {
		c.ids = make(map[byteview.ByteView]int)
	}
	id, ok := c.ids[v]
	if !ok {
		id = len(c.ids)
		c.ids[v] = id
	}
	return id
}

// Len returns the number of distinct tokens classified so far.
func (c *Classifier) Len() int { return len(c.ids) }

// ClassifyLines splits text into lines and classifies them.
func ClassifyLines[T byteview.Text](c *Classifier, text T) (lines []T, ids []int) {
	for line := range Lines(text) {
		lines = append(lines, line)
		ids = append(ids, c.Classify(byteview.From(line)))
	}
	return lines, ids
}

// ClassifyGroups splits text into word groups and classifies them.
func (c *Classifier) ClassifyGroups(text string) (groups []string, ids []int) {
	for group := range Groups(text) {
		groups = append(groups, group)
		ids = append(ids, c.Classify(byteview.From(group)))
	}
	return groups, ids
}

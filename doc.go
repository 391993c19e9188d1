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

// Package unidiff compares text line by line and renders the result as a unified diff.
//
// [Create] and [CreateBytes] compare two texts and return a [Patch], a sequence of hunks that
// each describe a changed region with a few lines of context. [Write] and [Format] render a patch
// in unified format, optionally decorated with ANSI colors. In color mode, lines that were
// replaced are compared a second time, word by word, and only the words that actually changed are
// highlighted. [Unified] and [UnifiedBytes] combine both steps.
//
// The diff is minimal: Myers' algorithm finds the smallest number of deleted and inserted lines.
// Among all minimal diffs, the one returned is chosen deterministically and changes are moved to
// positions that make them easy to read (e.g., deletions and insertions are placed next to each
// other where possible).
//
// Performance: Time complexity is O(ND) where N is the total number of lines and D is the number
// of deleted and inserted lines. Lines that appear in only one of the inputs are removed before
// the search starts, which keeps D small for typical inputs.
//
// A Patch references the texts it was created from, it doesn't copy them.
package unidiff

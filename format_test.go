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
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/unidiff/color"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		opts []Option
		want string
	}{
		{
			name: "intraline",
			x:    "foo bar baz\n",
			y:    "foo qux baz\n",
			opts: []Option{TerminalColors()},
			want: "\x1b[36m@@ -1,1 +1,1 @@\x1b[0m\n" +
				"\x1b[31m-\x1b[0mfoo \x1b[31mbar\x1b[0m baz\n" +
				"\x1b[32m+\x1b[0mfoo \x1b[32mqux\x1b[0m baz\n",
		},
		{
			name: "intraline-missing-newline",
			x:    "foo bar",
			y:    "foo baz",
			opts: []Option{TerminalColors()},
			want: "\x1b[36m@@ -1,1 +1,1 @@\x1b[0m\n" +
				"\x1b[31m-\x1b[0mfoo \x1b[31mbar\x1b[0m\n\\ No newline at end of file\n" +
				"\x1b[32m+\x1b[0mfoo \x1b[32mbaz\x1b[0m\n\\ No newline at end of file\n",
		},
		{
			name: "custom-colors",
			x:    "foo bar baz\n",
			y:    "foo qux baz\n",
			opts: []Option{TerminalColors(color.Deletes(1, 31), color.HunkHeaders())},
			want: "@@ -1,1 +1,1 @@\n" +
				"\x1b[1;31m-\x1b[0mfoo \x1b[1;31mbar\x1b[0m baz\n" +
				"\x1b[32m+\x1b[0mfoo \x1b[32mqux\x1b[0m baz\n",
		},
		{
			name: "labels",
			x:    "a\n",
			y:    "b\n",
			opts: []Option{Labels("x.txt", "y.txt"), TerminalColors()},
			want: "\x1b[1m--- x.txt\x1b[0m\n" +
				"\x1b[1m+++ y.txt\x1b[0m\n" +
				"\x1b[36m@@ -1,1 +1,1 @@\x1b[0m\n" +
				"\x1b[31m-\x1b[0m\x1b[31ma\x1b[0m\n" +
				"\x1b[32m+\x1b[0m\x1b[32mb\x1b[0m\n",
		},
		{
			name: "only-one-label",
			x:    "a\n",
			y:    "b\n",
			opts: []Option{Labels("", "new")},
			want: "--- \n+++ new\n@@ -1,1 +1,1 @@\n-a\n+b\n",
		},
		{
			name: "section",
			x:    "func f() {\n\ta\n}\n",
			y:    "func f() {\n\tb\n}\n",
			opts: []Option{Context(0), Sections(), TerminalColors(color.Sections(2))},
			want: "\x1b[36m@@ -2,1 +2,1 @@\x1b[0m \x1b[2mfunc f() {\x1b[0m\n" +
				"\x1b[31m-\x1b[0m\t\x1b[31ma\x1b[0m\n" +
				"\x1b[32m+\x1b[0m\t\x1b[32mb\x1b[0m\n",
		},
		{
			name: "colored-context",
			x:    "a\nb\n",
			y:    "a\nc\n",
			opts: []Option{TerminalColors(color.Matches(90))},
			want: "\x1b[36m@@ -1,2 +1,2 @@\x1b[0m\n" +
				"\x1b[90m a\x1b[0m\n" +
				"\x1b[31m-\x1b[0m\x1b[31mb\x1b[0m\n" +
				"\x1b[32m+\x1b[0m\x1b[32mc\x1b[0m\n",
		},
		{
			name: "pure-deletion-is-not-highlighted-within-lines",
			x:    "a\nb\n",
			y:    "a\n",
			opts: []Option{TerminalColors()},
			want: "\x1b[36m@@ -1,2 +1,1 @@\x1b[0m\n" +
				" a\n" +
				"\x1b[31m-b\x1b[0m\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unified(tt.x, tt.y, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Unified(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	// No intraline highlighting for []byte.
	got := UnifiedBytes([]byte("foo bar baz\n"), []byte("foo qux baz\n"), TerminalColors())
	want := "\x1b[36m@@ -1,1 +1,1 @@\x1b[0m\n" +
		"\x1b[31m-foo bar baz\x1b[0m\n" +
		"\x1b[32m+foo qux baz\x1b[0m\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("UnifiedBytes(...) result is different [-want,+got]:\n%s", diff)
	}

	p := CreateBytes([]byte("a\n"), []byte("b\n"))
	if got, want := string(Format(p)), "@@ -1,1 +1,1 @@\n-a\n+b\n"; got != want {
		t.Errorf("Format(...) = %q, want %q", got, want)
	}
}

var sgr = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestColorsAreInert(t *testing.T) {
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			p := Create(string(tt.x), string(tt.y), Sections())
			plain := Format(p)
			colored := Format(p, TerminalColors(color.Sections(1), color.Matches(2)))
			if got := sgr.ReplaceAllString(colored, ""); got != plain {
				t.Errorf("stripping escape sequences doesn't yield the plain output [-want,+got]:\n%s", cmp.Diff(plain, got))
			}
		})
	}
}

func TestPatchString(t *testing.T) {
	p := Create("a\nb\n", "a\nc\n", Labels("a", "b"))
	want := "--- a\n+++ b\n@@ -1,2 +1,2 @@\n a\n-b\n+c\n"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := Format(p); got != want {
		t.Errorf("Format(...) = %q, want %q", got, want)
	}
}

var errBoom = errors.New("boom")

// failingWriter accepts n bytes and fails afterwards.
type failingWriter struct {
	n             int
	writesOnError int
}

func (w *failingWriter) Write(b []byte) (int, error) {
	if len(b) > w.n {
		w.writesOnError++
		n := w.n
		w.n = 0
		return n, errBoom
	}
	w.n -= len(b)
	return len(b), nil
}

func TestWriteError(t *testing.T) {
	p := Create("a\nb\nc\n", "a\nB\nc\nd\n", Labels("x", "y"))
	full := len(p.String())
	for n := range full {
		w := &failingWriter{n: n}
		err := Write(w, p, TerminalColors())
		if err != errBoom {
			t.Fatalf("Write(...) with a writer failing after %d bytes = %v, want %v", n, err, errBoom)
		}
		if w.writesOnError != 1 {
			t.Errorf("Write(...) kept writing after an error: %d failed writes", w.writesOnError)
		}
	}
	if err := Write(io.Discard, p); err != nil {
		t.Errorf("Write(io.Discard, ...) = %v, want nil", err)
	}
}

func TestWriteInvalidBlocksPanics(t *testing.T) {
	tests := []struct {
		name string
		hunk Hunk[string]
		want string
	}{
		{
			name: "missing-original",
			hunk: Hunk[string]{
				Old:   HunkRange{1, 1},
				New:   HunkRange{0, 0},
				Lines: []Line[string]{{Delete, "a\n"}},
			},
			want: "hunk has more deletion runs than original blocks (0)",
		},
		{
			name: "missing-modified",
			hunk: Hunk[string]{
				Old:       HunkRange{1, 1},
				New:       HunkRange{1, 1},
				Lines:     []Line[string]{{Delete, "a\n"}, {Insert, "b\n"}},
				Originals: []string{"a\n"},
			},
			want: "hunk has more insertion runs than modified blocks (0)",
		},
		{
			name: "extra-block",
			hunk: Hunk[string]{
				Old:       HunkRange{1, 1},
				New:       HunkRange{0, 0},
				Lines:     []Line[string]{{Delete, "a\n"}},
				Originals: []string{"a\n", "b\n"},
			},
			want: "hunk has 2 original and 0 modified blocks, but 1 deletion and 0 insertion runs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != tt.want {
					t.Errorf("Format(...) panicked with %v, want %q", r, tt.want)
				}
			}()
			Format(&Patch[string]{Hunks: []Hunk[string]{tt.hunk}})
		})
	}
}

func TestFormatOptionNotAllowed(t *testing.T) {
	defer func() {
		const want = "Option unidiff.Context not allowed here"
		if r := recover(); r != want {
			t.Errorf("Format(..., Context(1)) panicked with %v, want %q", r, want)
		}
	}()
	Format(Create("a\n", "b\n"), Context(1))
}

func TestIntralineMultipleLines(t *testing.T) {
	x := "one two\nthree four\n"
	y := "one 2\nthree 4\n"
	got := Unified(x, y, TerminalColors(color.HunkHeaders()))
	want := strings.Join([]string{
		"@@ -1,2 +1,2 @@",
		"\x1b[31m-\x1b[0mone \x1b[31mtwo\x1b[0m",
		"\x1b[31m-\x1b[0mthree \x1b[31mfour\x1b[0m",
		"\x1b[32m+\x1b[0mone \x1b[32m2\x1b[0m",
		"\x1b[32m+\x1b[0mthree \x1b[32m4\x1b[0m",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unified(...) result is different [-want,+got]:\n%s", diff)
	}
}

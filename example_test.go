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

package unidiff_test

import (
	"fmt"
	"os"
	"strings"

	"znkr.io/unidiff"
	"znkr.io/unidiff/color"
)

func ExampleUnified() {
	x := `this paragraph
is not
changed and
barely long
enough to
create a
new hunk

this paragraph
is going to be
removed
`

	y := `this is a new paragraph
that is inserted at the top

this paragraph
is not
changed and
barely long
enough to
create a
new hunk
`
	fmt.Print(unidiff.Unified(x, y))
	// Output:
	// @@ -1,3 +1,6 @@
	// +this is a new paragraph
	// +that is inserted at the top
	// +
	//  this paragraph
	//  is not
	//  changed and
	// @@ -5,7 +8,3 @@
	//  enough to
	//  create a
	//  new hunk
	// -
	// -this paragraph
	// -is going to be
	// -removed
}

func ExampleCreate() {
	p := unidiff.Create("one\ntwo\nthree\n", "one\n2\nthree\n")
	for _, h := range p.Hunks {
		fmt.Printf("old lines %d-%d, new lines %d-%d\n", h.Old.Start, h.Old.Start+h.Old.Len-1, h.New.Start, h.New.Start+h.New.Len-1)
		for _, line := range h.Lines {
			fmt.Printf("%-7v %q\n", line.Kind, line.Text)
		}
	}
	// Output:
	// old lines 1-3, new lines 1-3
	// Match   "one\n"
	// Delete  "two\n"
	// Insert  "2\n"
	// Match   "three\n"
}

func ExampleWrite() {
	x := `package main

import "fmt"

func main() {
	fmt.Println("Hello, World!")
}
`
	y := `package main

import "fmt"

func main() {
	fmt.Println("Hello, 世界!")
}
`
	p := unidiff.Create(x, y, unidiff.Context(1), unidiff.Sections(), unidiff.Labels("a/main.go", "b/main.go"))
	if err := unidiff.Write(os.Stdout, p); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	// Output:
	// --- a/main.go
	// +++ b/main.go
	// @@ -5,3 +5,3 @@ import "fmt"
	//  func main() {
	// -	fmt.Println("Hello, World!")
	// +	fmt.Println("Hello, 世界!")
	//  }
}

func ExampleTerminalColors() {
	out := unidiff.Unified("The quick brown fox\n", "The quick red fox\n", unidiff.TerminalColors(color.HunkHeaders(1)))
	// Make the escape sequences visible.
	fmt.Print(strings.ReplaceAll(out, "\x1b", `\e`))
	// Output:
	// \e[1m@@ -1,1 +1,1 @@\e[0m
	// \e[31m-\e[0mThe quick \e[31mbrown\e[0m fox
	// \e[32m+\e[0mThe quick \e[32mred\e[0m fox
}

func ExampleParse() {
	p, err := unidiff.Parse([]byte("@@ -1,1 +1,1 @@\n-The quick brown fox\n+The quick red fox\n"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	fmt.Printf("%d hunk, %d original block, %d modified block\n", len(p.Hunks), len(p.Hunks[0].Originals), len(p.Hunks[0].Modifieds))
	fmt.Print(p)
	// Output:
	// 1 hunk, 1 original block, 1 modified block
	// @@ -1,1 +1,1 @@
	// -The quick brown fox
	// +The quick red fox
}

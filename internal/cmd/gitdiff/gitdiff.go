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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff HEAD~
//
// git calls it once for every changed file. The output is colored if stdout is a terminal and
// NO_COLOR isn't set.
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"znkr.io/unidiff"
)

func main() {
	color := term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	if err := run(os.Args, os.Stdout, color); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, color bool) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, _, newFile, newHex, newMode := args[1], args[2], args[3], args[4], args[5], args[6], args[7]

	old, err := readFile(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %w", err)
	}
	new, err := readFile(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %w", err)
	}

	origLabel, modLabel := "a/"+path, "b/"+path
	if oldFile == "/dev/null" {
		origLabel = "/dev/null"
	}
	if newFile == "/dev/null" {
		modLabel = "/dev/null"
	}
	p := unidiff.Create(old, new, unidiff.Labels(origLabel, modLabel), unidiff.Sections())

	var opts []unidiff.Option
	if color {
		opts = append(opts, unidiff.TerminalColors())
	}
	if _, err := fmt.Fprintf(stdout, "diff --git a/%s b/%s\nindex %s..%s %s\n", path, path, short(oldHex), short(newHex), newMode); err != nil {
		return err
	}
	return unidiff.Write(stdout, p, opts...)
}

func readFile(name string) (string, error) {
	if name == "/dev/null" {
		return "", nil
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

// short abbreviates an object id the way git does in index lines.
func short(hex string) string {
	return hex[:min(len(hex), 10)]
}

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

// eval validates patches on the history of a git repository. For every file changed by a commit,
// it creates a patch and checks that
//
//   - applying it with the unix patch tool yields the new file,
//   - parsing and formatting it again yields the same output, and
//   - removing the escape sequences from the colored output yields the plain output.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"znkr.io/unidiff"
	"znkr.io/unidiff/internal/cmd/eval/internal/git"
	"znkr.io/unidiff/internal/unixpatch"
)

type config struct {
	repo     string
	sample   int
	parallel int
	stats    string
	validate bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.BoolVar(&cfg.validate, "validate", true, "if patches should be applied with the unix patch tool")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(context.Background(), &cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var variants = []struct {
	name string
	opts []unidiff.Option
}{
	{"default", nil},
	{"context=0", []unidiff.Option{unidiff.Context(0)}},
	{"context=10:sections", []unidiff.Option{unidiff.Context(10), unidiff.Sections()}},
}

// reporter serializes problem reports and stats.
type reporter struct {
	mu       sync.Mutex
	out      io.Writer
	stats    *bufio.Writer // nil if stats are disabled
	problems atomic.Int64
	files    atomic.Int64
}

func (r *reporter) problem(prefix, format string, args ...any) {
	r.problems.Add(1)
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%s: %s\n", prefix, fmt.Sprintf(format, args...))
}

func (r *reporter) stat(commitID, file, variant string, p *unidiff.Patch[string], duration time.Duration) error {
	if r.stats == nil {
		return nil
	}
	var edits int
	for _, h := range p.Hunks {
		for _, line := range h.Lines {
			if line.Kind != unidiff.Match {
				edits++
			}
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintf(r.stats, "%s,%s,%s,%d,%d,%d\n", commitID, file, variant, len(p.Hunks), edits, duration.Nanoseconds())
	return err
}

const statsHeader = "commit_id,file,variant,hunks,edits,duration_ns\n"

// newStatsWriter returns a buffered CSV writer for stats with the header already written.
func newStatsWriter(w io.Writer) (*bufio.Writer, error) {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(statsHeader); err != nil {
		return nil, err
	}
	return bw, nil
}

func run(ctx context.Context, cfg *config, out io.Writer) error {
	start := time.Now()
	rep := &reporter{out: out}

	if cfg.stats != "" {
		f, err := os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %w", err)
		}
		defer f.Close()
		rep.stats, err = newStatsWriter(f)
		if err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}

	repo, err := git.Open(cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %w", err)
	}
	defer repo.Close()

	commitIDs, err := repo.RevList()
	if err != nil {
		return fmt.Errorf("reading rev-list: %w", err)
	}
	if cfg.sample > 0 && cfg.sample < len(commitIDs) {
		rand.Shuffle(len(commitIDs), func(i, j int) { commitIDs[i], commitIDs[j] = commitIDs[j], commitIDs[i] })
		commitIDs = commitIDs[:cfg.sample]
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.parallel))
	for _, commitID := range commitIDs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return evalCommit(repo, rep, cfg, commitID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if rep.stats != nil {
		if err := rep.stats.Flush(); err != nil {
			return fmt.Errorf("flushing stats: %w", err)
		}
	}
	fmt.Fprintf(out, "evaluated %d files in %d commits in %v, found %d problems\n",
		rep.files.Load(), len(commitIDs), time.Since(start).Round(time.Millisecond), rep.problems.Load())
	return nil
}

func evalCommit(repo *git.Repo, rep *reporter, cfg *config, commitID string) error {
	changes, err := repo.DiffTree(commitID)
	if err != nil {
		rep.problem(commitID, "error processing commit: %v", err)
		return nil
	}
	for _, change := range changes {
		old, err := repo.Blob(change.OldID)
		if err != nil {
			return err
		}
		upd, err := repo.Blob(change.NewID)
		if err != nil {
			return err
		}
		rep.files.Add(1)
		for _, v := range variants {
			start := time.Now()
			p := unidiff.Create(old, upd, v.opts...)
			duration := time.Since(start)
			if err := rep.stat(commitID, change.Name, v.name, p, duration); err != nil {
				return fmt.Errorf("writing stats: %w", err)
			}
			prefix := commitID + ":" + change.Name + ":" + v.name
			for _, problem := range check(old, upd, p, cfg.validate) {
				rep.problem(prefix, "%s", problem)
			}
		}
	}
	return nil
}

var sgr = regexp.MustCompile("\x1b\\[[0-9;]*m")

// check validates the patch p that was created for old and upd.
func check(old, upd string, p *unidiff.Patch[string], validate bool) []string {
	var problems []string
	plain := p.String()

	if validate {
		patched, err := unixpatch.Patch(old, plain)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("failed to run patch: %v", err))
		case patched != upd:
			problems = append(problems, "file is different after applying patch")
		}
	}

	// Carriage returns don't survive parsing.
	if !strings.Contains(plain, "\r") {
		parsed, err := unidiff.Parse([]byte(plain))
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("failed to parse patch: %v", err))
		case parsed.String() != plain:
			problems = append(problems, "patch is different after parsing")
		}
	}

	colored := unidiff.Format(p, unidiff.TerminalColors())
	if sgr.ReplaceAllString(colored, "") != plain {
		problems = append(problems, "colored patch is different from plain patch")
	}
	return problems
}

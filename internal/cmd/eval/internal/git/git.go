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

// Package git provides a simplified git interface for reading a repository for evaluations.
package git

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// zeroID is used by git for the missing side of added or deleted files.
const zeroID = "0000000000000000000000000000000000000000"

// Repo reads commits and blobs from a repository. It's safe for concurrent use.
type Repo struct {
	dir string

	mu  sync.Mutex // guards the cat-file process
	cmd *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader
}

// Open starts reading the repository in dir. The caller must call Close when done.
func Open(dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	cmd := exec.Command("git", "-C", dir, "cat-file", "--batch")
	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdin: %w", err)
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting git cat-file: %w", err)
	}
	return &Repo{
		dir: dir,
		cmd: cmd,
		in:  in,
		out: bufio.NewReader(out),
	}, nil
}

func (r *Repo) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.in.Close()
	return r.cmd.Wait()
}

// RevList returns the ids of all non-merge commits reachable from HEAD.
func (r *Repo) RevList() ([]string, error) {
	out, err := git("-C", r.dir, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// Change describes a file changed by a commit.
type Change struct {
	Name  string
	OldID string
	NewID string
}

// DiffTree returns the files changed by commit.
func (r *Repo) DiffTree(commit string) ([]Change, error) {
	out, err := git("-C", r.dir, "diff-tree", "-r", commit)
	if err != nil {
		return nil, err
	}
	return parseDiffTree(out)
}

// parseDiffTree parses the output of git diff-tree -r. The first line is the commit id, every
// other line has the form ":<old mode> <new mode> <old id> <new id> <status>\t<name>".
func parseDiffTree(out string) ([]Change, error) {
	lines := strings.Split(out, "\n")
	var changes []Change
	for _, line := range lines[1:] {
		if len(line) == 0 {
			continue
		}
		if line[0] != ':' {
			return nil, fmt.Errorf("diff-tree line not starting with ':': %q", line)
		}
		meta, name, found := strings.Cut(line[1:], "\t")
		fields := strings.Fields(meta)
		if !found || len(fields) != 5 {
			return nil, fmt.Errorf("malformed diff-tree line: %q", line)
		}
		changes = append(changes, Change{
			Name:  name,
			OldID: fields[2],
			NewID: fields[3],
		})
	}
	return changes, nil
}

// Blob returns the contents of the blob id. The zero id yields an empty blob.
func (r *Repo) Blob(id string) (string, error) {
	if id == zeroID {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := fmt.Fprintf(r.in, "%s\n", id); err != nil {
		return "", fmt.Errorf("writing to git cat-file: %w", err)
	}
	header, err := r.out.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading from git cat-file: %w", err)
	}
	size, err := parseBlobHeader(header, id)
	if err != nil {
		return "", err
	}
	// The contents are followed by a newline.
	buf := make([]byte, size+1)
	if _, err := io.ReadFull(r.out, buf); err != nil {
		return "", fmt.Errorf("reading blob %s: %w", id, err)
	}
	return string(buf[:size]), nil
}

// parseBlobHeader parses the "<id> <type> <size>" line git cat-file --batch writes before every
// object.
func parseBlobHeader(header, id string) (int, error) {
	fields := strings.Fields(header)
	if len(fields) == 2 && fields[1] == "missing" {
		return 0, fmt.Errorf("blob %s is missing", id)
	}
	if len(fields) != 3 {
		return 0, fmt.Errorf("malformed cat-file header %q", header)
	}
	if fields[0] != id {
		return 0, fmt.Errorf("ids don't match %s vs %s", fields[0], id)
	}
	if fields[1] != "blob" {
		return 0, fmt.Errorf("object %s is a %s, not a blob", id, fields[1])
	}
	return strconv.Atoi(fields[2])
}

func git(args ...string) (string, error) {
	var wout, werr strings.Builder
	cmd := exec.Command("git", args...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git command %v: %w\n%s", cmd, err, werr.String())
	}
	return wout.String(), nil
}

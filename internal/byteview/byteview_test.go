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

package byteview

import (
	"bytes"
	"testing"
	"unsafe"
)

func TestFromString(t *testing.T) {
	str := "my string"

	got := From(str)
	if unsafe.StringData(got.data) != unsafe.StringData(str) {
		t.Errorf("From(str) points to different memory")
	}
	if got.Len() != len(str) {
		t.Errorf("got.Len() = %v, want %v", got.Len(), len(str))
	}

	t.Run("allocs", func(t *testing.T) {
		allocs := testing.AllocsPerRun(10, func() {
			_ = From(str)
		})
		if allocs > 0 {
			t.Errorf("From[string](...) allocated %v times, want 0", allocs)
		}
	})
}

func TestFromBytes(t *testing.T) {
	b := []byte("my byte slice")

	got := From(b)
	if unsafe.StringData(got.data) != unsafe.SliceData(b) {
		t.Errorf("From(b) points to different memory")
	}
	if got.Len() != len(b) {
		t.Errorf("got.Len() = %v, want %v", got.Len(), len(b))
	}
}

func TestByteViewSplitAt(t *testing.T) {
	v := From([]byte("line one\nline two"))
	i := v.IndexByte('\n')
	if i != 8 {
		t.Fatalf("IndexByte('\\n') = %d, want 8", i)
	}
	head, tail := v.SplitAt(i + 1)
	if head.String() != "line one\n" || tail.String() != "line two" {
		t.Errorf("SplitAt(%d) = %q, %q", i+1, head, tail)
	}
	if !From("").IsEmpty() || head.IsEmpty() {
		t.Errorf("IsEmpty reports wrong state")
	}
}

func TestBuilder(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		var b Builder[string]
		b.Grow(16)
		b.WriteString("foo")
		b.Write([]byte(" bar"))
		b.WriteString(" baz")
		if b.Len() != 11 {
			t.Errorf("Len() = %d, want 11", b.Len())
		}
		if got := b.Build(); got != "foo bar baz" {
			t.Errorf("Build() = %q, want %q", got, "foo bar baz")
		}
		if b.Len() != 0 {
			t.Errorf("Build() did not reset the builder")
		}
	})
	t.Run("bytes", func(t *testing.T) {
		var b Builder[[]byte]
		b.WriteString("foo")
		if got := b.Build(); !bytes.Equal(got, []byte("foo")) {
			t.Errorf("Build() = %q, want %q", got, "foo")
		}
	})
}

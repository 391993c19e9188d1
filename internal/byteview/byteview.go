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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
//
// A ByteView never copies the data it views. It's used everywhere text needs to be inspected
// without caring whether the caller handed us a string or a []byte.
package byteview

import (
	"slices"
	"strings"
	"sync"
	"unsafe"
)

// Text is the set of text representations supported by this module.
type Text interface {
	string | []byte
}

type ByteView struct {
	data string
}

func From[T Text](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

func (v ByteView) IsEmpty() bool { return len(v.data) == 0 }

// String returns the view as a string. For views of a []byte, the result aliases the underlying
// memory and must not be retained beyond the lifetime of that slice.
func (v ByteView) String() string { return v.data }

// SplitAt splits v into v[:i] and v[i:].
func (v ByteView) SplitAt(i int) (ByteView, ByteView) {
	return ByteView{v.data[:i]}, ByteView{v.data[i:]}
}

// IndexByte returns the index of the first instance of c in v, or -1 if c is not present.
func (v ByteView) IndexByte(c byte) int { return strings.IndexByte(v.data, c) }

type Builder[T Text] struct {
	_   [0]sync.Mutex // don't copy
	buf []byte
}

func (b *Builder[T]) Grow(n int) {
	b.buf = slices.Grow(b.buf, n)
}

func (b *Builder[T]) Len() int { return len(b.buf) }

func (b *Builder[T]) Write(v []byte) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

func (b *Builder[T]) WriteString(v string) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

func (b *Builder[T]) Build() T {
	defer func() {
		b.buf = nil
	}()
	switch any((*T)(nil)).(type) {
	case *string:
		return T(unsafe.String(unsafe.SliceData(b.buf), len(b.buf)))
	case *[]byte:
		return T(b.buf)
	}
	panic("never reached")
}

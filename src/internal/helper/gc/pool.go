// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"fmt"
	"io"
	"os"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	io.Writer
	io.WriterTo
	io.ReaderFrom
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	Len() int
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool. Buffers not obtained from a
// bytebufferpool are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the buffer pool shared by metadata reads and signed document
// serialisation. Large aggregates (the eduGAIN feed is tens of megabytes)
// make buffer reuse across files worthwhile.
//
// Typical use:
//
//	buf := gc.Default.Get()
//	defer func() {
//		buf.Reset()
//		gc.Default.Put(buf)
//	}()
var Default Pool = &pool{p: &bytebufferpool.Pool{}}

// WithBuffer runs fn with a buffer from Default and returns it to the pool
// afterwards. The buffer contents must not be retained after fn returns.
func WithBuffer(fn func(buf Buffer) error) error {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()
	return fn(buf)
}

// ReadFile reads the whole file at path into a pooled buffer and hands the
// bytes to fn. The slice is only valid for the duration of fn.
func ReadFile(path string, fn func(data []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("gc: open %s: %w", path, err)
	}
	defer f.Close()

	return WithBuffer(func(buf Buffer) error {
		if _, err := buf.ReadFrom(f); err != nil {
			return fmt.Errorf("gc: read %s: %w", path, err)
		}
		return fn(buf.Bytes())
	})
}

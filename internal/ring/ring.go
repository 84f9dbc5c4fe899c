// Package ring implements the fixed-capacity single-producer/
// single-consumer byte buffer that decouples the PTY reader goroutine
// from the decoder's drain tick. It has exactly one blocking point: the
// producer waits when the buffer is full.
//
// The original design uses a std::binary_semaphore for that wait. Go has
// no binary semaphore in the standard library; a chan struct{} of
// capacity 1 is the idiomatic equivalent — acquire is a blocking
// receive, release is a non-blocking send that saturates at one credit.
package ring

import "sync/atomic"

// Buffer is a lock-free SPSC ring. There must be at most one goroutine
// calling the Write* methods and at most one calling the Read* methods;
// concurrent calls from more than one of either are undefined, exactly
// as for the C++ original.
type Buffer struct {
	buf     []byte
	w       atomic.Uint64 // write cursor, producer-owned, [0,N)
	r       atomic.Uint64 // read cursor, consumer-owned, [0,N)
	full    atomic.Bool
	fullSem chan struct{} // capacity 1, binary semaphore
}

// New allocates a ring with the given byte capacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return &Buffer{
		buf:     make([]byte, capacity),
		fullSem: make(chan struct{}, 1),
	}
}

// Cap returns the ring's fixed capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// WriteBuffer returns the largest contiguous writable span without
// blocking. It may be empty. Producer-only.
//
// One byte of capacity is always kept unwritable so that w == r
// unambiguously means empty; without that reserved byte, filling the
// buffer exactly to capacity would wrap the write cursor back onto the
// read cursor and be indistinguishable from empty.
func (b *Buffer) WriteBuffer() []byte {
	w := int(b.w.Load())
	r := int(b.r.Load())
	n := len(b.buf)
	if w >= r {
		end := n
		if r == 0 {
			end = n - 1
		}
		return b.buf[w:end]
	}
	return b.buf[w : r-1]
}

// AcquireWriteBuffer returns a non-empty writable span, blocking until
// the consumer frees space if the ring is currently full. Producer-only.
func (b *Buffer) AcquireWriteBuffer() []byte {
	span := b.WriteBuffer()
	if len(span) > 0 {
		return span
	}
	b.full.Store(true)
	<-b.fullSem
	return b.WriteBuffer()
}

// BytesWritten publishes n bytes written into the span returned by the
// most recent WriteBuffer/AcquireWriteBuffer call. Producer-only.
func (b *Buffer) BytesWritten(n int) {
	w := int(b.w.Load()) + n
	if w == len(b.buf) {
		w = 0
	}
	b.w.Store(uint64(w))
}

// ReadBuffer returns the largest contiguous readable span without
// blocking. It may be empty; the consumer never blocks. Consumer-only.
func (b *Buffer) ReadBuffer() []byte {
	r := int(b.r.Load())
	w := int(b.w.Load())
	n := len(b.buf)
	if r <= w {
		return b.buf[r:w]
	}
	return b.buf[r:n]
}

// BytesRead publishes n bytes consumed from the span returned by the
// most recent ReadBuffer call, and wakes a blocked producer if the ring
// had been marked full. Consumer-only.
func (b *Buffer) BytesRead(n int) {
	r := int(b.r.Load()) + n
	if r == len(b.buf) {
		r = 0
	}
	b.r.Store(uint64(r))
	if b.full.Swap(false) {
		select {
		case b.fullSem <- struct{}{}:
		default:
		}
	}
}

// Write is a convenience wrapper that copies all of p into the ring,
// blocking via AcquireWriteBuffer as needed. It is what the PTY reader
// goroutine calls once per successful read.
func (b *Buffer) Write(p []byte) {
	for len(p) > 0 {
		span := b.AcquireWriteBuffer()
		n := copy(span, p)
		b.BytesWritten(n)
		p = p[n:]
	}
}

// Read is a convenience wrapper that drains whatever is currently
// available (possibly zero bytes) into p, returning the count copied.
// It never blocks.
func (b *Buffer) Read(p []byte) int {
	span := b.ReadBuffer()
	n := copy(p, span)
	if n > 0 {
		b.BytesRead(n)
	}
	return n
}

// Drain returns a copy of everything currently readable, consuming it.
// Used by the consumer tick to hand a contiguous slice to the decoder.
func (b *Buffer) Drain() []byte {
	span := b.ReadBuffer()
	if len(span) == 0 {
		return nil
	}
	out := make([]byte, len(span))
	copy(out, span)
	b.BytesRead(len(span))
	return out
}

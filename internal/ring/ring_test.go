package ring

import (
	"bytes"
	"testing"
	"time"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	b := New(16)
	b.Write([]byte("hello"))
	got := b.Drain()
	if string(got) != "hello" {
		t.Fatalf("Drain() = %q, want %q", got, "hello")
	}
}

func TestAcquireWriteBuffer_NMinusOneWithoutBlocking(t *testing.T) {
	b := New(8)
	// Capacity 8 reserves one byte to disambiguate full from empty, so
	// 7 bytes must fit without the producer ever blocking.
	done := make(chan struct{})
	go func() {
		b.Write(bytes.Repeat([]byte{'x'}, 7))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Write of capacity-1 bytes blocked")
	}
	if got := b.Drain(); len(got) != 7 {
		t.Fatalf("Drain() returned %d bytes, want 7", len(got))
	}
}

func TestBytesRead_WakesBlockedProducer(t *testing.T) {
	b := New(4)
	b.Write([]byte{1, 2, 3}) // fills the 3 usable bytes

	writeDone := make(chan struct{})
	go func() {
		b.Write([]byte{4}) // must block until the consumer frees space
		close(writeDone)
	}()

	select {
	case <-writeDone:
		t.Fatal("producer did not block on a full ring")
	case <-time.After(20 * time.Millisecond):
	}

	out := make([]byte, 3)
	n := b.Read(out)
	if n != 3 {
		t.Fatalf("Read() = %d, want 3", n)
	}

	select {
	case <-writeDone:
	case <-time.After(time.Second):
		t.Fatal("producer did not wake after consumer freed space")
	}

	got := b.Drain()
	if len(got) != 1 || got[0] != 4 {
		t.Fatalf("Drain() = %v, want [4]", got)
	}
}

func TestSumOfReadsEqualsSumOfWrites(t *testing.T) {
	b := New(32)
	total := []byte("the quick brown fox jumps over the lazy dog")

	writeDone := make(chan struct{})
	go func() {
		b.Write(total)
		close(writeDone)
	}()

	var got []byte
	buf := make([]byte, 4)
	for len(got) < len(total) {
		n := b.Read(buf)
		got = append(got, buf[:n]...)
	}
	<-writeDone

	if !bytes.Equal(got, total) {
		t.Fatalf("got %q, want %q", got, total)
	}
}

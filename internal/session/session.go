// Package session is the glue: component G. A Session owns a Shell
// (component C), a byte ring (component B), a decoder (component E)
// and the screen it drives (component D), and the producer/consumer
// goroutines that move bytes between them.
package session

import (
	"sync"

	"github.com/google/uuid"

	"termic/internal/logx"
	"termic/internal/ptysession"
	"termic/internal/ring"
	"termic/internal/screen"
	"termic/internal/termcolor"
	"termic/internal/vtparse"
)

const defaultRingCapacity = 64 * 1024

// Options configures a new Session.
type Options struct {
	Label           string
	Cols, Rows      int
	Command         string
	Args            []string
	ScrollbackLines int
	RingCapacity    int
}

// Session is the top-level owner: Shell -> PtySession, Ring, Decoder,
// ScreenState, and the producer goroutine. It carries a uuid.UUID id and
// a human label, the fields the session registry persists.
type Session struct {
	ID    uuid.UUID
	Label string

	Cols, Rows int

	shell   *ptysession.Shell
	ring    *ring.Buffer
	decoder *vtparse.Decoder
	screen  *screen.State

	wake chan struct{}
	done chan struct{}

	mu     sync.Mutex
	closed bool
}

// New starts the child process and wires the pipeline. The producer
// goroutine is not started until Run is called.
func New(opts Options) (*Session, error) {
	if opts.Cols <= 0 {
		opts.Cols = 80
	}
	if opts.Rows <= 0 {
		opts.Rows = 24
	}
	capacity := opts.RingCapacity
	if capacity <= 0 {
		capacity = defaultRingCapacity
	}

	id := uuid.New()
	label := opts.Label
	if label == "" {
		label = id.String()[:8]
	}

	shell := ptysession.NewShell(label)
	if err := shell.Start(opts.Command, opts.Args, uint16(opts.Cols), uint16(opts.Rows)); err != nil {
		return nil, err
	}

	scr := screen.New(opts.Cols, opts.Rows, opts.ScrollbackLines)
	dec := vtparse.New(scr, shell.Session)
	fg, bg := termcolor.Query()
	dec.SetColorQuery(vtparse.ColorQuery{Fg: fg, Bg: bg})

	s := &Session{
		ID:      id,
		Label:   label,
		Cols:    opts.Cols,
		Rows:    opts.Rows,
		shell:   shell,
		ring:    ring.New(capacity),
		decoder: dec,
		screen:  scr,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	scr.OnBell(func() { logx.Debugf("session %s: bell", s.Label) })
	return s, nil
}

// Screen exposes the grid a renderer draws from.
func (s *Session) Screen() *screen.State { return s.screen }

// Scrollback and CancelScrollback delegate to the screen, making Session
// satisfy input.Scroller: a renderer adjusts scrollback through the
// session rather than reaching into the screen directly.
func (s *Session) Scrollback(delta int) { s.screen.Scrollback(delta) }
func (s *Session) CancelScrollback()    { s.screen.CancelScrollback() }

// Pid returns the child process id.
func (s *Session) Pid() int { return s.shell.Session.Pid() }

// WakeChan fires (best-effort, coalesced) whenever the producer
// publishes new bytes into the ring.
func (s *Session) WakeChan() <-chan struct{} { return s.wake }

// Done closes once the producer observes PTY EOF or a hard read error.
func (s *Session) Done() <-chan struct{} { return s.done }

// Run starts the producer goroutine: acquire_write_buffer -> PTY.read
// -> bytes_written -> wake, looping until EOF or error.
func (s *Session) Run() {
	go s.produce()
}

func (s *Session) produce() {
	for {
		span := s.ring.AcquireWriteBuffer()
		n, err := s.shell.Session.Read(span)
		if n > 0 {
			s.ring.BytesWritten(n)
			s.notifyWake()
		}
		if err != nil {
			logx.Infof("session %s: pty read ended: %v", s.Label, err)
			break
		}
	}
	close(s.done)
}

func (s *Session) notifyWake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
	yield()
}

// Drain consumes everything currently buffered in the ring and feeds it
// to the decoder. Call this once per render tick; it never blocks.
func (s *Session) Drain() {
	data := s.ring.Drain()
	if len(data) == 0 {
		return
	}
	s.decoder.Decode(data)
}

// Write sends bytes — typically from the input encoder — to the child.
func (s *Session) Write(p []byte) (int, error) {
	return s.shell.Session.Write(p)
}

// Resize propagates a grid resize to the screen model and the PTY.
func (s *Session) Resize(cols, rows int) error {
	s.screen.Resize(cols, rows)
	s.Cols, s.Rows = cols, rows
	return s.shell.Session.SetWinsize(uint16(cols), uint16(rows))
}

// Stop sends SIGHUP and waits for the child to exit.
func (s *Session) Stop() error {
	s.shell.Stop()
	return s.shell.Join()
}

// Close tears the session down, waiting for the child to be reaped. Safe
// to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	return s.shell.Join()
}

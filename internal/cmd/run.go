package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/shlex"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"termic/internal/config"
	"termic/internal/input"
	"termic/internal/logx"
	"termic/internal/ptysession"
	"termic/internal/registry"
	"termic/internal/session"
)

func newRunCmd() *cobra.Command {
	var label string
	var commandLine string
	var cols, rows int

	cmd := &cobra.Command{
		Use:   "run [-c \"<command line>\"] [-- <command> [args...]]",
		Short: "Start a PTY session and attach the CLI demo renderer",
		Long: `Fork a shell (or, with -c/--command, an arbitrary command line split
with shlex) behind a pseudo-terminal, decode its output into a cell
grid, and draw that grid to the controlling terminal until the child
exits or stdin reaches end of file. Keystrokes, Ctrl+D included, are
forwarded to the child.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cmdArgs, err := resolveCommand(commandLine, args)
			if err != nil {
				return err
			}

			if label == "" {
				label = defaultLabel()
			}
			c, r := resolveSize(cols, rows)

			sess, err := session.New(session.Options{
				Label:   label,
				Cols:    c,
				Rows:    r,
				Command: command,
				Args:    cmdArgs,
			})
			if err != nil {
				return fmt.Errorf("start session: %w", err)
			}

			entry := registry.Entry{
				ID:        sess.ID.String(),
				Pid:       sess.Pid(),
				Label:     sess.Label,
				CreatedAt: time.Now(),
				Cols:      c,
				Rows:      r,
			}
			if err := registry.Write(entry); err != nil {
				logx.Warnf("run: register session: %v", err)
			}
			defer func() {
				if err := registry.Remove(entry.ID); err != nil {
					logx.Warnf("run: deregister session: %v", err)
				}
			}()

			janitor := registry.StartJanitor(10)
			defer janitor.Stop()

			return runRenderLoop(sess)
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Session label (default: derived from $USER and cwd)")
	cmd.Flags().StringVarP(&commandLine, "command", "c", "", "Command line to run instead of the login shell, split with shlex")
	cmd.Flags().IntVar(&cols, "cols", 0, "Grid columns (default: controlling terminal width, or 80)")
	cmd.Flags().IntVar(&rows, "rows", 0, "Grid rows (default: controlling terminal height, or 24)")

	return cmd
}

func resolveCommand(commandLine string, args []string) (string, []string, error) {
	if commandLine != "" {
		fields, err := shlex.Split(commandLine)
		if err != nil {
			return "", nil, fmt.Errorf("split --command: %w", err)
		}
		if len(fields) == 0 {
			return "", nil, fmt.Errorf("--command produced no tokens")
		}
		return fields[0], fields[1:], nil
	}
	if len(args) > 0 {
		return args[0], args[1:], nil
	}
	return "", nil, nil
}

func resolveSize(cols, rows int) (int, int) {
	cfg, err := config.Load()
	if err != nil {
		logx.Warnf("run: load config: %v", err)
		cfg = &config.Config{}
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		cfg.ApplyDefaults(w, h, 10000)
	} else {
		cfg.ApplyDefaults(80, 24, 10000)
	}
	if cols <= 0 {
		cols = cfg.Cols
	}
	if rows <= 0 {
		rows = cfg.Rows
	}
	return cols, rows
}

// scrollPageLines is how many lines Shift+PageUp/PageDown moves the
// scrollback offset by — a fixed step rather than the full screen height,
// so the last few lines of context carry over between pages.
const scrollPageLines = 10

// handleScroll recognizes the one scroll-capable key binding the CLI demo
// renderer exposes (Shift+PageUp/PageDown) and adjusts scrollback through
// the input.Scroller half of sess instead of writing to the PTY, per the
// "on scroll, adjust the scrollback offset; do not write to PTY" contract.
// It reports whether ev was a scroll binding.
func handleScroll(scroller input.Scroller, ev input.Event) bool {
	if ev.Mod&input.ModShift == 0 {
		return false
	}
	switch ev.Key {
	case input.KeyPageUp:
		scroller.Scrollback(scrollPageLines)
	case input.KeyPageDown:
		scroller.Scrollback(-scrollPageLines)
	default:
		return false
	}
	return true
}

// runRenderLoop puts the controlling terminal into raw mode, redraws
// the grid whenever the session reports new bytes, and forwards
// keystrokes read from stdin through the input encoder until the child
// exits.
func runRenderLoop(sess *session.Session) error {
	fd := int(os.Stdin.Fd())
	var restore *term.State
	if term.IsTerminal(fd) {
		var err error
		restore, err = term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("enable raw mode: %w", err)
		}
		defer term.Restore(fd, restore)
	}

	profile := termenv.ColorProfile()

	sess.Run()

	stdinBytes := make(chan []byte)
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				stdinBytes <- chunk
			}
			if err != nil {
				close(stdinBytes)
				return
			}
		}
	}()

	for {
		select {
		case chunk, ok := <-stdinBytes:
			if !ok {
				_ = sess.Stop()
				drawGrid(os.Stdout, sess.Screen(), profile)
				return nil
			}
			for _, ev := range scanEvents(chunk) {
				if handleScroll(sess, ev) {
					drawGrid(os.Stdout, sess.Screen(), profile)
					continue
				}
				out, handled := input.Encode(ev, sess.Screen().Modes.AppCursorKeys, nil)
				if !handled {
					continue
				}
				sess.CancelScrollback()
				if len(out) > 0 {
					sess.Write(out)
				}
			}
		case <-sess.WakeChan():
			sess.Drain()
			drawGrid(os.Stdout, sess.Screen(), profile)
		case <-sess.Done():
			sess.Drain()
			drawGrid(os.Stdout, sess.Screen(), profile)
			os.Exit(ptysession.ExitCode(sess.Close()))
		}
	}
}

// Package ssh adapts gliderlabs SSH sessions into tcell screens so the
// seed browser can run over a remote terminal.
package ssh

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client sends no TERM or one tcell is not
// trusted to drive.
const DefaultTerm = "xterm-256color"

// ErrNoPTY is returned by OpenScreen for sessions without a pseudo-terminal.
var ErrNoPTY = errors.New("session has no pty")

var allowedTerms = []string{
	"xterm", "xterm-256color", "screen", "screen-256color",
	"tmux", "tmux-256color", "rxvt-unicode", "rxvt-unicode-256color",
	"alacritty", "xterm-kitty", "vt100", "linux",
}

// SessionTty implements tcell.Tty on top of an SSH session.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	onSize func()
	once   sync.Once
}

// NewSessionTty wraps s. pty carries the initial window size and winCh the
// later resizes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{session: s, window: pty.Window, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is owned by the
// server handler.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the last size the client reported.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The watcher goroutine is
// started on the first call and ends when the session closes winCh.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()
	t.once.Do(func() { go t.watch() })
}

func (t *SessionTty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onSize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

// Term picks the terminal type from the session environment, falling back
// to DefaultTerm for unknown values.
func Term(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			if slices.Contains(allowedTerms, v) {
				return v
			}
			break
		}
	}
	return DefaultTerm
}

// termMu serialises the TERM swap around terminfo screen creation.
var termMu sync.Mutex

// OpenScreen creates and initialises a tcell screen for s. The caller must
// Fini it.
func OpenScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	tty := NewSessionTty(s, pty, winCh)

	// tcell resolves terminfo from the process environment.
	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", Term(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}

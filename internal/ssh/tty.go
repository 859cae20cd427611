// Package ssh adapts gliderlabs SSH sessions to tcell terminals.
package ssh

import (
	"errors"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a pseudo-terminal.
var ErrNoPTY = errors.New("session has no PTY")

// DefaultTerm is used when the client does not send a usable TERM.
const DefaultTerm = "xterm-256color"

// allowedTerms lists the terminal types the server will look up in terminfo.
// Anything else falls back to DefaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// AllowedTerm reports whether term may be passed to terminfo.
func AllowedTerm(term string) bool { return allowedTerms[term] }

// SessionTty implements tcell.Tty on top of one SSH session.
type SessionTty struct {
	session gossh.Session
	term    string

	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	cb     func()
	watch  sync.Once
}

// NewSessionTty wraps s, reading its PTY request for the initial size and
// terminal type.
func NewSessionTty(s gossh.Session) (*SessionTty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := pty.Term
	if term == "" {
		term = termFromEnv(s.Environ())
	}
	if !AllowedTerm(term) {
		term = DefaultTerm
	}
	return &SessionTty{session: s, term: term, window: pty.Window, winCh: winCh}, nil
}

func termFromEnv(env []string) string {
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "TERM="); ok {
			return v
		}
	}
	return ""
}

// Term returns the sanitized terminal type for terminfo lookup.
func (t *SessionTty) Term() string { return t.term }

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain are no-ops: the channel is already open and the
// server handler owns its lifetime.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The channel is drained by
// one goroutine for the life of the session no matter how often tcell
// re-registers.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.watch.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				notify := t.cb
				t.mu.Unlock()
				if notify != nil {
					notify()
				}
			}
		}()
	})
}

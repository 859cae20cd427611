// zonegen-server serves the zone previewer over SSH. Every connection gets
// its own seed and layout. Build:
//
//	go build -o zonegen-server ./cmd/server
//
// Usage:
//
//	./zonegen-server [--port 2222] [--key server_host_key] [--instance hub] [--theme ascii]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"zonegen/assets"
	"zonegen/internal/preview"
	"zonegen/internal/render"
	internalssh "zonegen/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	instance := flag.String("instance", "", "Archetype every session previews (default: pick by weight)")
	instances := flag.String("instances", "", "Path to a JSON instance table (default: built-in)")
	themeName := flag.String("theme", "emoji", "Glyph theme: emoji or ascii")
	flag.Parse()

	table, err := assets.Resolve(*instances, *instance)
	if err != nil {
		log.Fatalf("instance table: %v", err)
	}
	theme, ok := render.ThemeByName(*themeName)
	if !ok {
		log.Fatalf("unknown theme %q", *themeName)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := &server{
		gen:    preview.TableGenerator(table, *instance, logger),
		theme:  theme,
		logger: logger,
		base:   time.Now().UnixNano(),
	}

	sshSrv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     srv.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; the previewer exposes nothing private.
		HostSigners: []gossh.Signer{loadOrCreateHostKey(*keyFile)},
	}

	log.Printf("zonegen SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(sshSrv.ListenAndServe())
}

// server runs one preview per SSH session.
type server struct {
	gen    preview.Generator
	theme  render.Theme
	logger *slog.Logger

	base     int64 // seed of the first session
	sessions atomic.Int64
}

// nextSeed hands every session a distinct starting seed.
func (s *server) nextSeed() int64 {
	return s.base + s.sessions.Add(1) - 1
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (s *server) handleSession(sess gossh.Session) {
	tty, err := internalssh.NewSessionTty(sess)
	if err != nil {
		fmt.Fprintln(sess, "The previewer needs a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	termMu.Lock()
	_ = os.Setenv("TERM", tty.Term())
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(sess, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	seed := s.nextSeed()
	logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
	logger.Info("session started", "seed", seed)
	if err := preview.New(screen, s.gen, seed, s.theme, logger).Run(); err != nil {
		logger.Error("session ended", "error", err)
		return
	}
	logger.Info("session ended")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "zonegen server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}

// server exposes the floor-plan seed browser over SSH. Build:
//
//	go build -o floorplan-server ./cmd/server
//
// Usage:
//
//	./floorplan-server [-port 2222] [-key server_host_key] [-rooms 3]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
//
// A numeric user name picks the starting seed: ssh -t -p 2222 42@localhost.
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	mrand "math/rand/v2"
	"os"
	"strconv"

	"floorplan/internal/browse"
	internalssh "floorplan/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (generated if absent)")
	rooms := flag.Int("rooms", 3, "Initial room count for new sessions")
	flag.Parse()

	signer, err := loadOrCreateHostKey(*keyFile)
	if err != nil {
		log.Fatalf("host key: %v", err)
	}
	srv := newServer(*port, *rooms, slog.Default())

	sshSrv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: srv.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: the browser is read-only.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("floorplan SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(sshSrv.ListenAndServe())
}

// server holds the settings shared by every session. Sessions share
// nothing mutable.
type server struct {
	port   int
	rooms  int
	logger *slog.Logger
}

func newServer(port, rooms int, logger *slog.Logger) *server {
	return &server{port: port, rooms: rooms, logger: logger}
}

// ptyHint tells clients that connected without -t how to retry.
func (srv *server) ptyHint() string {
	return fmt.Sprintf("The floor-plan browser needs a PTY. Connect with: ssh -t -p %d <host>", srv.port)
}

// handleSession runs one browser for the lifetime of the connection.
func (srv *server) handleSession(s gossh.Session) {
	logger := srv.logger.With("remote", s.RemoteAddr().String(), "user", s.User())

	screen, err := internalssh.OpenScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, srv.ptyHint())
		return
	}
	if err != nil {
		logger.Warn("open screen", "err", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()

	opts := srv.options(s.User())
	logger.Info("session start", "seed", opts.Seed, "rooms", opts.Rooms)
	b := browse.New(screen, opts)
	b.Run()
	logger.Info("session end", "seed", b.Seed(), "rooms", b.Rooms())
}

// options builds the browser options for a session whose user name is user.
func (srv *server) options(user string) browse.Options {
	return browse.Options{Seed: seedFor(user, mrand.Uint32), Rooms: srv.rooms}
}

// seedFor reads the starting seed from a numeric user name, or asks random.
func seedFor(user string, random func() uint32) uint32 {
	if n, err := strconv.ParseUint(user, 10, 32); err == nil {
		return uint32(n)
	}
	return random()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer, nil
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run; a read-only directory is not fatal.
	block, err := xssh.MarshalPrivateKey(key, "floorplan server")
	if err != nil {
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0600); err != nil {
		log.Printf("could not save host key: %v", err)
	}
	return signer, nil
}

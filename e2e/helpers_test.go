// ABOUTME: PTY harness for running the real echostatus binary in e2e tests
// ABOUTME: Builds the binary once in TestMain; sessions capture output from the pseudo-terminal

package e2e

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "echostatus-e2e")
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating temp dir: %v\n", err)
		os.Exit(1)
	}
	binPath = filepath.Join(dir, "echostatus")

	build := exec.Command("go", "build", "-o", binPath, "../cmd/echostatus")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "building echostatus: %v\n", err)
		os.RemoveAll(dir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// session is one run of the binary attached to a PTY.
type session struct {
	cmd  *exec.Cmd
	ptmx *os.File

	mu   sync.Mutex
	out  bytes.Buffer
	done chan struct{}
}

// startEcho runs the binary with args under a PTY. HOME points at a temp dir
// so no user config is picked up.
func startEcho(t *testing.T, args ...string) *session {
	t.Helper()

	cmd := exec.Command(binPath, args...)
	cmd.Env = append(filteredEnv(),
		"HOME="+t.TempDir(),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
	)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 40, Cols: 100})
	if err != nil {
		t.Fatalf("starting echostatus: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	return s
}

// filteredEnv drops ECHOSTATUS_* overrides from the test environment.
func filteredEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "ECHOSTATUS_") {
			env = append(env, kv)
		}
	}
	return env
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q; output so far:\n%s", want, s.output())
}

// waitExit waits for the process to exit and returns its exit code.
func (s *session) waitExit(t *testing.T, timeout time.Duration) int {
	t.Helper()
	exited := make(chan error, 1)
	go func() { exited <- s.cmd.Wait() }()

	select {
	case err := <-exited:
		// Let the reader drain what is left in the PTY buffer.
		select {
		case <-s.done:
		case <-time.After(time.Second):
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		if err != nil {
			t.Fatalf("waiting for echostatus: %v", err)
		}
		return 0
	case <-time.After(timeout):
		_ = s.cmd.Process.Kill()
		t.Fatalf("echostatus did not exit within %s; output:\n%s", timeout, s.output())
		return -1
	}
}

func (s *session) close() {
	if s.cmd.ProcessState == nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.ptmx.Close()
}

// writeConfig writes a config.yaml pointing the status API at baseURL.
func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "api:\n  base_url: " + baseURL + "\n  timeout: 2s\ncache:\n  size: 0\n  ttl: 0s\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}


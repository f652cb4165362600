//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// binPath is set by TestMain once the binary is built
var binPath = "docsearch_e2e"

const (
	KeyEnter = "\r"
	KeyTab   = "\t"
	KeyCtrlC = "\x03"
	KeyDown  = "j"
	KeyNext  = "n"
	KeyPrev  = "p"
	KeyQuit  = "q"
	KeyPager = "o"
	KeyHelp  = "?"

	termRows = 40
	termCols = 120

	pollInterval = 25 * time.Millisecond
	seeTimeout   = 3 * time.Second
)

// ansiRe matches CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// appDriver runs docsearch in a PTY and records everything it draws
type appDriver struct {
	t    *testing.T
	home string
	cmd  *exec.Cmd
	pty  *os.File

	mu  sync.Mutex
	out bytes.Buffer
}

// newDriver creates a driver with an isolated home directory; the app is stopped on cleanup
func newDriver(t *testing.T) *appDriver {
	d := &appDriver{t: t, home: t.TempDir()}
	t.Cleanup(d.stop)
	return d
}

// Start launches docsearch against apiURL
func (d *appDriver) Start(apiURL string, args ...string) error {
	d.cmd = exec.Command(binPath, append([]string{"--api", apiURL}, args...)...)
	d.cmd.Dir = d.home
	d.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LANG=C.UTF-8",
		"HOME="+d.home,
		"XDG_CONFIG_HOME="+filepath.Join(d.home, ".config"),
		"DOCSEARCH_LOG_FILE="+filepath.Join(d.home, "docsearch.log"),
	)

	f, err := pty.StartWithSize(d.cmd, &pty.Winsize{Rows: termRows, Cols: termCols})
	if err != nil {
		return fmt.Errorf("failed to start in pty: %w", err)
	}
	d.pty = f

	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				d.mu.Lock()
				d.out.Write(buf[:n])
				d.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	return nil
}

// stop closes the PTY, which hangs up the app, then kills it if it is still running
func (d *appDriver) stop() {
	if d.pty != nil {
		_ = d.pty.Close()
		d.pty = nil
	}
	if d.cmd != nil && d.cmd.Process != nil {
		_ = d.cmd.Process.Kill()
		_, _ = d.cmd.Process.Wait()
		d.cmd = nil
	}
}

// Send writes raw keystrokes
func (d *appDriver) Send(keys string) error {
	d.t.Helper()
	_, err := d.pty.Write([]byte(keys))
	return err
}

// Search types a query into the focused search bar and submits it
func (d *appDriver) Search(query string) error {
	d.t.Helper()
	if err := d.Send(query); err != nil {
		return err
	}
	// let the text input draw before submitting
	time.Sleep(50 * time.Millisecond)
	return d.Send(KeyEnter)
}

// Mark returns a position in the output for use with SeeAfter and PlainSince
func (d *appDriver) Mark() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.out.Len()
}

// PlainSince returns the output drawn after mark with escape sequences removed
func (d *appDriver) PlainSince(mark int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	raw := d.out.Bytes()
	if mark > len(raw) {
		mark = 0
	}
	return ansiRe.ReplaceAllString(string(raw[mark:]), "")
}

// See waits for text anywhere in the output
func (d *appDriver) See(text string) bool {
	d.t.Helper()
	return d.SeeAfter(0, text)
}

// SeeAfter waits for text drawn after mark
func (d *appDriver) SeeAfter(mark int, text string) bool {
	d.t.Helper()
	return d.waitFor(seeTimeout, func() bool {
		return strings.Contains(d.PlainSince(mark), text)
	})
}

// Ready waits for the search screen's first frame
func (d *appDriver) Ready() bool {
	d.t.Helper()
	return d.waitFor(5*time.Second, func() bool {
		return strings.Contains(d.PlainSince(0), "docsearch")
	})
}

func (d *appDriver) waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
	return true
}

// WaitExit waits for the app to exit on its own
func (d *appDriver) WaitExit(timeout time.Duration) (exited bool, err error) {
	d.t.Helper()
	cmd := d.cmd
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	select {
	case err := <-done:
		d.cmd = nil
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

// DumpTail writes the last n bytes of plain output to a file and logs where
func (d *appDriver) DumpTail(name string, n int) {
	d.t.Helper()
	s := d.PlainSince(0)
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(d.t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0644)
	d.t.Logf("Saved output tail to %s", p)
}

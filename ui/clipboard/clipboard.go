// Package clipboard copies row text to the system clipboard. It writes an
// OSC 52 sequence to the controlling terminal, which also works over SSH,
// and falls back to the platform clipboard command.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Copy copies text to the system clipboard.
func Copy(text string) error {
	if err := copyOSC52(text); err == nil {
		return nil
	}
	return copyNative(text)
}

// OSC52 returns the escape sequence that asks the terminal to set its
// clipboard to text.
func OSC52(text string) string {
	return "\033]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\a"
}

// copyOSC52 writes to /dev/tty rather than stdout, which the UI owns.
func copyOSC52(text string) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer tty.Close()
	_, err = io.WriteString(tty, OSC52(text))
	return err
}

func copyNative(text string) error {
	name, args := nativeCommand(runtime.GOOS, exec.LookPath)
	if name == "" {
		return fmt.Errorf("clipboard: no clipboard command found for %s", runtime.GOOS)
	}
	c := exec.Command(name, args...)
	c.Stdin = strings.NewReader(text)
	if out, err := c.CombinedOutput(); err != nil {
		return fmt.Errorf("clipboard: %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// nativeCommand picks the clipboard command for goos. lookPath reports
// whether a Linux/BSD candidate is installed.
func nativeCommand(goos string, lookPath func(string) (string, error)) (string, []string) {
	switch goos {
	case "darwin":
		return "pbcopy", nil
	case "windows":
		return "clip", nil
	case "linux", "freebsd", "openbsd", "netbsd":
		candidates := []struct {
			name string
			args []string
		}{
			{"wl-copy", nil},
			{"xclip", []string{"-in", "-selection", "clipboard"}},
			{"xsel", []string{"--clipboard", "--input"}},
		}
		for _, c := range candidates {
			if path, err := lookPath(c.name); err == nil {
				return path, c.args
			}
		}
	}
	return "", nil
}

package console

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Keyboard delivers single keypresses from a terminal without waiting for
// Enter. When the input is not a terminal it reads bytes as they arrive.
type Keyboard struct {
	in    *os.File
	state *term.State
	keys  chan byte
}

// OpenKeyboard switches in to raw mode if it is a terminal and starts
// reading keys. Close must be called to restore the terminal.
func OpenKeyboard(in *os.File) (*Keyboard, error) {
	k := &Keyboard{
		in:   in,
		keys: make(chan byte, 16),
	}

	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("failed to put terminal in raw mode: %w", err)
		}
		k.state = state
	}

	go k.read()
	return k, nil
}

func (k *Keyboard) read() {
	defer close(k.keys)
	buf := make([]byte, 1)
	for {
		n, err := k.in.Read(buf)
		if n == 1 {
			k.keys <- buf[0]
		}
		if err != nil {
			return
		}
	}
}

// Keys returns the channel of keypresses. It is closed when input ends.
func (k *Keyboard) Keys() <-chan byte {
	return k.keys
}

// Raw reports whether the terminal is in raw mode
func (k *Keyboard) Raw() bool {
	return k.state != nil
}

// Output wraps w so that line endings render correctly while the terminal
// is in raw mode.
func (k *Keyboard) Output(w io.Writer) io.Writer {
	if !k.Raw() {
		return w
	}
	return crlfWriter{w: w}
}

// Close restores the terminal state
func (k *Keyboard) Close() error {
	if k.state == nil {
		return nil
	}
	return term.Restore(int(k.in.Fd()), k.state)
}

// crlfWriter turns "\n" into "\r\n"; raw mode disables output processing.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

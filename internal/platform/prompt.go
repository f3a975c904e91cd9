package platform

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ReadPassphrase prints prompt to out and reads one line from in without
// echo when in is a terminal. The trailing newline is stripped.
func ReadPassphrase(prompt string, in *os.File, out io.Writer) ([]byte, error) {
	fmt.Fprint(out, prompt)
	if term.IsTerminal(int(in.Fd())) {
		b, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return nil, errors.Wrap(err, "cannot read passphrase")
		}
		return b, nil
	}
	return ReadLine(bufio.NewReader(in))
}

// ReadLine reads a single line from r without its line ending.
func ReadLine(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return nil, errors.Wrap(err, "cannot read input")
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

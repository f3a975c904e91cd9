package platform

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("clipboard is not available on this system")

// Clipboard copies text for the user to paste.
type Clipboard interface {
	// Set copies text. If ttl is positive it blocks for ttl and then clears
	// the clipboard, unless something else has been copied meanwhile.
	Set(text string, ttl time.Duration) error
}

type systemClipboard struct {
	read  func() (string, error)
	write func(string) error
	sleep func(time.Duration)
}

// NewClipboard returns the system clipboard, or one that always fails with
// ErrClipboardUnsupported when no clipboard utility is installed.
func NewClipboard() Clipboard {
	if clipboard.Unsupported {
		return unsupportedClipboard{}
	}
	return &systemClipboard{
		read:  clipboard.ReadAll,
		write: clipboard.WriteAll,
		sleep: time.Sleep,
	}
}

func (c *systemClipboard) Set(text string, ttl time.Duration) error {
	if err := c.write(text); err != nil {
		return errors.Wrap(err, "cannot write clipboard")
	}
	if ttl <= 0 {
		return nil
	}
	c.sleep(ttl)
	current, err := c.read()
	if err != nil {
		return errors.Wrap(err, "cannot read clipboard")
	}
	if current != text {
		return nil
	}
	return errors.Wrap(c.write(""), "cannot clear clipboard")
}

type unsupportedClipboard struct{}

func (unsupportedClipboard) Set(string, time.Duration) error { return ErrClipboardUnsupported }

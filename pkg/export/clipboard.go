package export

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard receives copied summaries.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the host clipboard (pbcopy, xclip, xsel,
// wl-copy or the Windows API, whichever is present).
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}

type disabledClipboard struct{}

func (disabledClipboard) WriteAll(string) error {
	return ErrClipboardDisabled
}

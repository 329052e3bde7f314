package export

import "errors"

var (
	// ErrClipboardUnavailable signals that no system clipboard could be found.
	ErrClipboardUnavailable = errors.New("export: clipboard unavailable")
	// ErrClipboardDisabled is returned when copying was turned off by config.
	ErrClipboardDisabled = errors.New("export: clipboard disabled")
	// ErrNilWriter is returned when the print page has nowhere to go.
	ErrNilWriter = errors.New("export: writer is nil")
)

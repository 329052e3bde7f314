package editor

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("editor: aborted")
	// ErrUnknownSection is returned for a section the editor does not know.
	ErrUnknownSection = errors.New("editor: unknown section")
	// ErrNilTarget is returned when there is no state to edit.
	ErrNilTarget = errors.New("editor: target is nil")
)

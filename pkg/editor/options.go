package editor

import (
	"io"
	"log/slog"
)

// Option configures the Editor.
type Option func(*Editor)

// WithPromptDriver overrides the prompt driver used by the editor.
func WithPromptDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithOutput sets where informational messages are written when the default
// survey driver is used.
func WithOutput(w io.Writer) Option {
	return func(e *Editor) {
		if w != nil {
			e.out = w
		}
	}
}

// WithPageSize limits how many options a select prompt shows at once.
func WithPageSize(size int) Option {
	return func(e *Editor) {
		if size > 0 {
			e.pageSize = size
		}
	}
}

// WithLogger sets the logger that records applied updates.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

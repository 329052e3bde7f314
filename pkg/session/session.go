// Package session owns the aggregate for one form session. It is the glue
// between the host shell and the core: it gates on authentication, applies
// editor updates, and exposes validation, visibility, the summary, and the
// export actions.
package session

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/saad12354/site-stock-app/pkg/export"
	"github.com/saad12354/site-stock-app/pkg/inventory"
	"github.com/saad12354/site-stock-app/pkg/summary"
	"github.com/saad12354/site-stock-app/pkg/validation"
	"github.com/saad12354/site-stock-app/pkg/visibility"
)

// Auth is the authentication signal handed over by the host.
type Auth struct {
	Authenticated bool
	User          string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Export failures are logged through it
// with the session id attached.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithState seeds the session with an existing aggregate instead of the
// defaults.
func WithState(state *inventory.State) Option {
	return func(s *Session) {
		if state != nil {
			s.state = state
		}
	}
}

// WithExportOptions configures the exporter used by Copy, Share and Print.
func WithExportOptions(options ...export.Option) Option {
	return func(s *Session) {
		s.exportOptions = append(s.exportOptions, options...)
	}
}

// Session holds one aggregate. Reads and updates are safe for concurrent
// use, although a form session normally has a single actor.
type Session struct {
	id            uuid.UUID
	auth          Auth
	logger        *slog.Logger
	exportOptions []export.Option
	exporter      *export.Exporter

	mu    sync.RWMutex
	state *inventory.State
}

// New starts a session for an authenticated user.
func New(auth Auth, options ...Option) (*Session, error) {
	if !auth.Authenticated {
		return nil, ErrUnauthenticated
	}
	s := &Session{
		id:     uuid.New(),
		auth:   auth,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:  inventory.New(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	s.logger = s.logger.With(slog.String("session", s.id.String()))
	if s.auth.User != "" {
		s.logger = s.logger.With(slog.String("user", s.auth.User))
	}
	exportOptions := append([]export.Option{export.WithLogger(s.logger)}, s.exportOptions...)
	s.exporter = export.New(exportOptions...)
	s.logger.Debug("session started")
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// User returns the display name of the signed-in user.
func (s *Session) User() string {
	return s.auth.User
}

// State returns the current aggregate snapshot. Snapshots are never mutated;
// a later update produces a new one.
func (s *Session) State() *inventory.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Apply runs update against the current aggregate and stores the result.
// A failed update leaves the aggregate unchanged.
func (s *Session) Apply(update func(*inventory.State) (*inventory.State, error)) error {
	if update == nil {
		return ErrNilUpdate
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := update(s.state)
	if err != nil {
		return fmt.Errorf("session: apply: %w", err)
	}
	if next == nil {
		return fmt.Errorf("session: apply: %w", inventory.ErrNilState)
	}
	s.state = next
	return nil
}

// SetEntry replaces one catalog entry with a fully formed value. It does not
// consult the entry's selected flag; inert quantity inputs are a
// presentation rule.
func (s *Session) SetEntry(c inventory.Catalog, index int, entry any) error {
	return s.Apply(func(state *inventory.State) (*inventory.State, error) {
		return state.WithEntry(c, index, entry)
	})
}

// SetScalars replaces the scalar fields.
func (s *Session) SetScalars(scalars inventory.Scalars) error {
	return s.Apply(func(state *inventory.State) (*inventory.State, error) {
		return state.WithScalars(scalars), nil
	})
}

// Reset restores the default aggregate.
func (s *Session) Reset() {
	s.mu.Lock()
	s.state = inventory.New()
	s.mu.Unlock()
	s.logger.Debug("session reset")
}

// Validate checks the current aggregate. Issues are advisory; they never
// block edits.
func (s *Session) Validate() validation.Result {
	return validation.Validate(s.State())
}

// Visibility evaluates a search/filter query against the current aggregate.
func (s *Session) Visibility(q visibility.Query) visibility.Result {
	return visibility.Compute(s.State(), q)
}

// Summary renders the report for the current aggregate.
func (s *Session) Summary() string {
	return summary.Generate(s.State())
}

// Copy copies the current report to the clipboard.
func (s *Session) Copy() export.Notice {
	return s.exporter.Copy(s.Summary())
}

// Share returns the share link for the current report.
func (s *Session) Share() (string, export.Notice) {
	return s.exporter.Share(s.Summary())
}

// Print writes the print page for the current report to w.
func (s *Session) Print(w io.Writer) export.Notice {
	return s.exporter.Print(w, export.Page{Text: s.Summary(), PreparedBy: s.auth.User})
}

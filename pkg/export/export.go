// Package export delivers a generated summary to the outside world: the
// clipboard, a WhatsApp share link, or a printable HTML page. Failures in
// the environment (no clipboard, unwritable output) are reported as Notices
// and logged; they never corrupt or reset the form state.
package export

import (
	"embed"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

const printTemplate = "templates/print.html.tpl"

// Defaults used when no option overrides them.
const (
	DefaultShareScheme = "https"
	DefaultShareHost   = "wa.me"
	DefaultPrintTitle  = "Inventory Summary"
)

// Level classifies a Notice.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notice is the short user-facing message shown after an export action.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       Level  `json:"level"`
}

// Failed reports whether the notice describes a failure.
func (n Notice) Failed() bool {
	return n.Level == LevelError
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClipboard overrides the clipboard. A nil clipboard disables copying.
func WithClipboard(cb Clipboard) Option {
	return func(e *Exporter) {
		if cb == nil {
			cb = disabledClipboard{}
		}
		e.clipboard = cb
	}
}

// WithShareHost sets the scheme and host the share link points at.
func WithShareHost(scheme, host string) Option {
	return func(e *Exporter) {
		if s := strings.TrimSpace(scheme); s != "" {
			e.shareScheme = s
		}
		if h := strings.TrimSpace(host); h != "" {
			e.shareHost = h
		}
	}
}

// WithPrintTitle sets the title of the print page.
func WithPrintTitle(title string) Option {
	return func(e *Exporter) {
		if t := strings.TrimSpace(title); t != "" {
			e.printTitle = t
		}
	}
}

// WithLogger sets the logger that records environment failures.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Exporter copies, shares and prints summaries.
type Exporter struct {
	clipboard   Clipboard
	shareScheme string
	shareHost   string
	printTitle  string
	logger      *slog.Logger

	once    sync.Once
	tmpl    *pongo2.Template
	tmplErr error
}

// New constructs an Exporter backed by the system clipboard.
func New(options ...Option) *Exporter {
	e := &Exporter{
		clipboard:   SystemClipboard{},
		shareScheme: DefaultShareScheme,
		shareHost:   DefaultShareHost,
		printTitle:  DefaultPrintTitle,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Copy places text on the clipboard.
func (e *Exporter) Copy(text string) Notice {
	if err := e.clipboard.WriteAll(text); err != nil {
		e.logger.Warn("copy summary failed", slog.Any("error", err))
		return Notice{
			Title:       "Copy failed",
			Description: fmt.Sprintf("Could not copy the inventory summary: %v.", err),
			Level:       LevelError,
		}
	}
	e.logger.Debug("summary copied", slog.Int("bytes", len(text)))
	return Notice{
		Title:       "Copied!",
		Description: "Inventory summary copied to clipboard.",
		Level:       LevelInfo,
	}
}

// ShareURL returns the WhatsApp link that pre-fills text. Text is escaped the
// way a browser's encodeURIComponent does, so spaces become %20.
func (e *Exporter) ShareURL(text string) string {
	u := url.URL{
		Scheme:   e.shareScheme,
		Host:     e.shareHost,
		Path:     "/",
		RawQuery: "text=" + EscapeComponent(text),
	}
	return u.String()
}

// Share returns the share link together with its notice.
func (e *Exporter) Share(text string) (string, Notice) {
	link := e.ShareURL(text)
	e.logger.Debug("share link built", slog.String("host", e.shareHost))
	return link, Notice{
		Title:       "Share link ready",
		Description: "Open the link to send the inventory summary on WhatsApp.",
		Level:       LevelInfo,
	}
}

// Page is the content of a print page.
type Page struct {
	Text       string
	PreparedBy string
}

// PrintPage writes the printable HTML page to w. The summary text is only
// HTML-escaped, so the page shows and copies it unchanged.
func (e *Exporter) PrintPage(w io.Writer, page Page) error {
	if w == nil {
		return ErrNilWriter
	}
	tmpl, err := e.template()
	if err != nil {
		return err
	}
	ctx := pongo2.Context{
		"title":       e.printTitle,
		"text":        page.Text,
		"share_url":   e.ShareURL(page.Text),
		"prepared_by": displayName(page.PreparedBy),
	}
	if err := tmpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("export: execute print page: %w", err)
	}
	return nil
}

// Print writes the print page and reports the outcome as a Notice. Write
// failures are logged and surfaced, never returned.
func (e *Exporter) Print(w io.Writer, page Page) Notice {
	if err := e.PrintPage(w, page); err != nil {
		e.logger.Warn("print page failed", slog.Any("error", err))
		return PrintFailed(err)
	}
	return Notice{
		Title:       "Summary Generated",
		Description: "Your inventory summary has been generated and opened in a new window.",
		Level:       LevelInfo,
	}
}

// PrintFailed is the notice for a print page that could not be delivered.
func PrintFailed(err error) Notice {
	return Notice{
		Title:       "Print failed",
		Description: fmt.Sprintf("Could not open the inventory summary: %v.", err),
		Level:       LevelError,
	}
}

func (e *Exporter) template() (*pongo2.Template, error) {
	e.once.Do(func() {
		set := pongo2.NewSet("export", pongo2.NewFSLoader(templatesFS))
		e.tmpl, e.tmplErr = set.FromFile(printTemplate)
		if e.tmplErr != nil {
			e.tmplErr = fmt.Errorf("export: load print template: %w", e.tmplErr)
		}
	})
	return e.tmpl, e.tmplErr
}

// EscapeComponent escapes s for use inside a URL query value, leaving the
// same characters unescaped as encodeURIComponent.
func EscapeComponent(s string) string {
	escaped := url.QueryEscape(s)
	return componentReplacer.Replace(escaped)
}

var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

var (
	namePolicyOnce sync.Once
	namePolicy     *bluemonday.Policy
)

// displayName strips markup from the signed-in user name shown on the page.
// The result is plain text; the template escapes it.
func displayName(raw string) string {
	namePolicyOnce.Do(func() {
		namePolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(namePolicy.Sanitize(raw)))
}

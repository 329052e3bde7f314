package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/saad12354/site-stock-app/internal/statefile"
	"github.com/saad12354/site-stock-app/pkg/inventory"
)

// LoadState reads a state file fixture through the same decoder the CLI
// uses and fails the test if it cannot be decoded or does not validate.
func LoadState(t *testing.T, path string) *inventory.State {
	t.Helper()

	state, result, err := statefile.Load(path)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if !result.Valid {
		t.Fatalf("state fixture %s has issues: %v", path, result.Issues)
	}
	return state
}

// SiteState returns the default aggregate with site details filled in, the
// smallest state that passes validation.
func SiteState(name, location string) *inventory.State {
	state := inventory.New()
	scalars := state.Scalars
	scalars.SiteName = name
	scalars.SiteLocation = location
	return state.WithScalars(scalars)
}

// MustApply runs an aggregate update and fails the test if it errors.
// Call it as MustApply(state.WithPipe(i, p))(t).
func MustApply(state *inventory.State, err error) func(testing.TB) *inventory.State {
	return func(t testing.TB) *inventory.State {
		t.Helper()
		if err != nil {
			t.Fatalf("apply update: %v", err)
		}
		return state
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureOutput runs render against a buffer and returns what it wrote.
func CaptureOutput(t *testing.T, render func(io.Writer) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

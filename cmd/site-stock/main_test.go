package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saad12354/site-stock-app/internal/statefile"
	"github.com/saad12354/site-stock-app/pkg/editor"
	"github.com/saad12354/site-stock-app/pkg/session"
	"github.com/saad12354/site-stock-app/pkg/testsupport"
)

type stubClipboard struct{ text string }

func (s *stubClipboard) WriteAll(text string) error {
	s.text = text
	return nil
}

// scriptedDriver answers prompts in order; it only supports the prompts the
// nuts section and the menu use.
type scriptedDriver struct {
	selects []int
	multi   [][]int
	inputs  []string
}

func (d *scriptedDriver) Input(context.Context, editor.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	v := d.inputs[0]
	d.inputs = d.inputs[1:]
	return v, nil
}

func (d *scriptedDriver) Confirm(context.Context, editor.ConfirmConfig) (bool, error) {
	return false, errors.New("no confirm scripted")
}

func (d *scriptedDriver) Select(context.Context, editor.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return -1, errors.New("no select scripted")
	}
	v := d.selects[0]
	d.selects = d.selects[1:]
	return v, nil
}

func (d *scriptedDriver) MultiSelect(context.Context, editor.SelectConfig) ([]int, error) {
	if len(d.multi) == 0 {
		return nil, errors.New("no multiselect scripted")
	}
	v := d.multi[0]
	d.multi = d.multi[1:]
	return v, nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()
	root := a.rootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", "", "--user", "tester"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func testApp() *app {
	a := newApp(io.Discard)
	a.clipboard = &stubClipboard{}
	return a
}

func TestSummaryCommand_MatchesGolden(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, testApp(), "summary", "-f", "testdata/state.yaml")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	path := "testdata/summary.golden"
	if testsupport.WriteMaybeGolden(t, path, []byte(out)) {
		return
	}
	if diff := testsupport.CompareGolden(testsupport.MustReadGoldenString(t, path), out); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryCommand_CopyAndShare(t *testing.T) {
	t.Parallel()

	a := testApp()
	out, stderr, err := execute(t, a, "summary", "-f", "testdata/state.yaml", "--copy", "--share")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	clip := a.clipboard.(*stubClipboard)
	if !strings.HasPrefix(clip.text, "📋 INVENTORY SUMMARY") {
		t.Fatalf("expected summary on clipboard, got %q", clip.text)
	}
	if !strings.Contains(stderr, "Copied!") {
		t.Fatalf("expected copy notice, got %q", stderr)
	}
	if !strings.Contains(out, "https://wa.me/?text=%F0%9F%93%8B%20INVENTORY%20SUMMARY") {
		t.Fatalf("expected share link, got %q", out)
	}
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, testApp(), "validate", "-f", "testdata/state.yaml")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "inventory is valid") {
		t.Fatalf("unexpected output %q", out)
	}

	out, _, err = execute(t, testApp(), "validate", "-f", "testdata/invalid.yaml")
	if !errors.Is(err, errInvalidState) {
		t.Fatalf("expected errInvalidState, got %v", err)
	}
	for _, want := range []string{"siteName", "brazingRods"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestFilterCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, testApp(), "filter", "-f", "testdata/state.yaml", "-c", "wires")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if !strings.Contains(out, "⚡ Wires (6)") || strings.Contains(out, "Copper Pipes") {
		t.Fatalf("unexpected filter output %q", out)
	}

	out, _, err = execute(t, testApp(), "filter", "-f", "testdata/state.yaml", "--selected-only", "--search", "gas")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if !strings.Contains(out, "Tools (1)") || !strings.Contains(out, "Materials (2)") {
		t.Fatalf("unexpected filter output %q", out)
	}
}

func TestFilterCommand_RepeatedCategoryIsKept(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, testApp(), "filter", "-f", "testdata/state.yaml", "-c", "wires", "-c", "wires", "-c", "nuts,wires")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if !strings.Contains(out, "⚡ Wires (6)") || !strings.Contains(out, "Flare Nuts") {
		t.Fatalf("expected wires and nuts, got %q", out)
	}
	if strings.Contains(out, "Copper Pipes") || strings.Contains(out, "Insulation") {
		t.Fatalf("repeated category should not clear the filter, got %q", out)
	}
}

func TestPrintCommand_WritesPage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summary.html")
	_, stderr, err := execute(t, testApp(), "print", "-f", "testdata/state.yaml", "-o", path)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	page, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(page), `<pre id="text">📋 INVENTORY SUMMARY`) {
		t.Fatalf("unexpected page:\n%s", page)
	}
	if !strings.Contains(stderr, "Summary Generated") {
		t.Fatalf("expected notice, got %q", stderr)
	}
}

func TestPrintCommand_ReportsWriteFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, stderr, err := execute(t, testApp(), "print", "-f", "testdata/state.yaml", "-o", dir)
	if !errors.Is(err, errReported) {
		t.Fatalf("expected errReported, got %v", err)
	}
	if !strings.Contains(stderr, "Print failed") || strings.Contains(stderr, "Summary Generated") {
		t.Fatalf("expected failure notice, got %q", stderr)
	}
}

func TestEditCommand_SavesState(t *testing.T) {
	t.Parallel()

	a := testApp()
	a.driver = &scriptedDriver{
		// nuts section, then Done
		selects: []int{5, len(editor.Sections())},
		multi:   [][]int{{1}},
		inputs:  []string{"6"},
	}
	path := filepath.Join(t.TempDir(), "edited.yaml")
	out, _, err := execute(t, a, "edit", "-f", "testdata/state.yaml", "-o", path)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if !strings.Contains(out, `🔩 Flare Nuts: 3/8" ×6`) {
		t.Fatalf("expected nuts in summary, got %q", out)
	}

	state, result, err := statefile.Load(path)
	if err != nil {
		t.Fatalf("load saved state: %v", err)
	}
	if !result.Valid || state.Nuts[1].Quantity != 6 || state.Pipes[2].Quantity != 5 {
		t.Fatalf("unexpected saved state %#v", state.Nuts)
	}
}

func TestSchemaCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, testApp(), "schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	for _, want := range []string{`"siteName"`, `"maxItems": 9`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in schema output", want)
		}
	}
}

func TestRequiresUser(t *testing.T) {
	t.Parallel()

	root := testApp().rootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config", "", "--user", "", "summary", "-f", "testdata/state.yaml"})
	if err := root.Execute(); !errors.Is(err, session.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

package inventory

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestNew_CatalogsFollowKeyOrder(t *testing.T) {
	t.Parallel()

	state := New()

	for _, c := range Catalogs() {
		keys, err := Keys(c)
		if err != nil {
			t.Fatalf("keys %s: %v", c, err)
		}
		if got := state.Len(c); got != len(keys) {
			t.Fatalf("%s: expected %d entries, got %d", c, len(keys), got)
		}
		for i, key := range keys {
			entry, err := state.Entry(c, i)
			if err != nil {
				t.Fatalf("%s[%d]: %v", c, i, err)
			}
			if got := entryKey(entry); got != key {
				t.Fatalf("%s[%d]: expected key %q, got %q", c, i, key, got)
			}
			if state.Selected(c, i) {
				t.Fatalf("%s[%d]: expected unselected default", c, i)
			}
		}
	}

	if state.Wires[0].Cores != 2 {
		t.Fatalf("expected default wire cores 2, got %d", state.Wires[0].Cores)
	}
	if state.Pipes[0].Type != PipeSoft || state.Pipes[0].Unit != UnitFeet {
		t.Fatalf("unexpected pipe defaults: %+v", state.Pipes[0])
	}
}

func TestWithPipe_ReplacesOnlyTarget(t *testing.T) {
	t.Parallel()

	base := New()
	before := base.Clone()

	entry := base.Pipes[2]
	entry.Quantity = 5
	entry.Type = PipeHard
	entry.Selected = true

	next, err := base.WithPipe(2, entry)
	if err != nil {
		t.Fatalf("with pipe: %v", err)
	}
	if next == base {
		t.Fatalf("expected a new aggregate")
	}
	if diff := cmp.Diff(before, base); diff != "" {
		t.Fatalf("base aggregate mutated (-want +got):\n%s", diff)
	}

	want := before.Clone()
	want.Pipes[2] = entry
	if diff := cmp.Diff(want, next); diff != "" {
		t.Fatalf("unexpected aggregate (-want +got):\n%s", diff)
	}
}

func TestWithEntry_SameValueIsContentEqual(t *testing.T) {
	t.Parallel()

	base := New()
	cases := []struct {
		catalog Catalog
		entry   any
	}{
		{CatalogPipes, base.Pipes[0]},
		{CatalogInsulation, base.Insulation[0]},
		{CatalogFittings, base.Fittings[0]},
		{CatalogNuts, base.Nuts[0]},
		{CatalogWires, base.Wires[0]},
		{CatalogDrainPipes, base.DrainPipes[0]},
	}
	for _, tc := range cases {
		next, err := base.WithEntry(tc.catalog, 0, tc.entry)
		if err != nil {
			t.Fatalf("%s: %v", tc.catalog, err)
		}
		if !next.Equal(base) {
			t.Fatalf("%s: expected content-equal aggregate", tc.catalog)
		}
	}
}

func TestWithEntry_Errors(t *testing.T) {
	t.Parallel()

	base := New()
	mismatched := base.Nuts[0]
	mismatched.Size = "3/4"

	cases := []struct {
		name    string
		catalog Catalog
		index   int
		entry   any
		want    error
	}{
		{"unknown catalog", Catalog("valves"), 0, NutEntry{}, ErrUnknownCatalog},
		{"negative index", CatalogNuts, -1, base.Nuts[0], ErrIndexOutOfRange},
		{"past end", CatalogNuts, len(base.Nuts), base.Nuts[0], ErrIndexOutOfRange},
		{"size change", CatalogNuts, 0, mismatched, ErrSizeMismatch},
		{"wrong record type", CatalogWires, 0, base.Nuts[0], ErrEntryType},
		{"drain type change", CatalogDrainPipes, 0, base.DrainPipes[1], ErrSizeMismatch},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			next, err := base.WithEntry(tc.catalog, tc.index, tc.entry)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if next != nil {
				t.Fatalf("expected nil aggregate on error")
			}
		})
	}
}

func TestWithScalars_KeepsCatalogs(t *testing.T) {
	t.Parallel()

	base := New()
	scalars := base.Scalars
	scalars.SiteName = "Site1"
	scalars.HatlonLength = decimal.RequireFromString("12.5")

	next := base.WithScalars(scalars)
	if base.SiteName != "" {
		t.Fatalf("base scalars mutated")
	}
	if next.SiteName != "Site1" || !next.HatlonLength.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected scalars: %+v", next.Scalars)
	}
	if diff := cmp.Diff(base.Pipes, next.Pipes); diff != "" {
		t.Fatalf("pipes changed (-want +got):\n%s", diff)
	}
}

func TestState_EqualComparesDecimalsByValue(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()
	entry := b.Wires[1]
	entry.Length = decimal.RequireFromString("10.0")
	b, _ = b.WithWire(1, entry)

	entry = a.Wires[1]
	entry.Length = decimal.NewFromInt(10)
	a, _ = a.WithWire(1, entry)

	if !a.Equal(b) {
		t.Fatalf("expected 10 and 10.0 to compare equal")
	}
	if a.Equal(New()) {
		t.Fatalf("expected aggregates with different lengths to differ")
	}
}

func entryKey(entry any) string {
	switch e := entry.(type) {
	case PipeEntry:
		return e.Size
	case InsulationEntry:
		return e.Size
	case FittingEntry:
		return e.Size
	case NutEntry:
		return e.Size
	case WireEntry:
		return e.Size
	case DrainPipeEntry:
		return string(e.Type)
	}
	return ""
}

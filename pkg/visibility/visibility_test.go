package visibility

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/saad12354/site-stock-app/pkg/inventory"
)

func TestCompute_EmptyQueryShowsEverything(t *testing.T) {
	t.Parallel()

	result := Compute(inventory.New(), Query{})
	if diff := cmp.Diff(Categories(), result.VisibleCategories()); diff != "" {
		t.Fatalf("visible categories mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_CategoryFilter(t *testing.T) {
	t.Parallel()

	result := Compute(inventory.New(), Query{Categories: []Category{CategoryWires}})
	if diff := cmp.Diff([]Category{CategoryWires}, result.VisibleCategories()); diff != "" {
		t.Fatalf("visible categories mismatch (-want +got):\n%s", diff)
	}
	if result.IsVisible(CategoryPipes) {
		t.Fatalf("pipes should be hidden")
	}
}

func TestCompute_UnknownCategoryHidesOthers(t *testing.T) {
	t.Parallel()

	result := Compute(inventory.New(), Query{Categories: []Category{"valves"}})
	if got := result.VisibleCategories(); len(got) != 0 {
		t.Fatalf("expected nothing visible, got %v", got)
	}
}

func TestCompute_SearchMatchesKeywords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		search string
		want   []Category
	}{
		{"ELBOW", []Category{CategoryFittings}},
		{"pipes", []Category{CategoryPipes}},
		{"gas", []Category{CategoryTools, CategoryMaterials}},
		{"1/2", nil},
		{"", Categories()},
	}

	for _, tc := range cases {
		result := Compute(inventory.New(), Query{Search: tc.search})
		if diff := cmp.Diff(tc.want, result.VisibleCategories()); diff != "" {
			t.Errorf("search %q (-want +got):\n%s", tc.search, diff)
		}
	}
}

func TestCompute_SearchAndCategoryCombine(t *testing.T) {
	t.Parallel()

	q := Query{Search: "nuts", Categories: []Category{CategoryNuts, CategoryWires}}
	result := Compute(inventory.New(), q)
	if diff := cmp.Diff([]Category{CategoryNuts}, result.VisibleCategories()); diff != "" {
		t.Fatalf("visible categories mismatch (-want +got):\n%s", diff)
	}
}

func TestCounts_FollowPositivityPredicates(t *testing.T) {
	t.Parallel()

	state := inventory.New()
	var err error

	pipe := state.Pipes[2]
	pipe.Selected, pipe.Quantity = true, 5
	if state, err = state.WithPipe(2, pipe); err != nil {
		t.Fatal(err)
	}
	pipe = state.Pipes[3]
	pipe.Quantity = 7
	if state, err = state.WithPipe(3, pipe); err != nil {
		t.Fatal(err)
	}
	ins := state.Insulation[0]
	ins.Selected, ins.Volume = true, decimal.NewFromInt(9)
	if state, err = state.WithInsulation(0, ins); err != nil {
		t.Fatal(err)
	}
	fit := state.Fittings[1]
	fit.Selected = true
	if state, err = state.WithFitting(1, fit); err != nil {
		t.Fatal(err)
	}
	fit = state.Fittings[2]
	fit.Selected, fit.CouplingQty = true, 2
	if state, err = state.WithFitting(2, fit); err != nil {
		t.Fatal(err)
	}
	wire := state.Wires[0]
	wire.Selected, wire.Length = true, decimal.RequireFromString("2.5")
	if state, err = state.WithWire(0, wire); err != nil {
		t.Fatal(err)
	}

	scalars := state.Scalars
	scalars.FlaringTool = true
	scalars.BrazingRods = 50
	scalars.ButaneSize = inventory.ButaneSmall
	scalars.ACGas = "R32"
	scalars.CableTies = 10
	state = state.WithScalars(scalars)

	selected := Counts(state, true)
	wantSelected := map[Category]int{
		CategoryPipes:      1,
		CategoryInsulation: 1,
		CategoryFittings:   1,
		CategoryNuts:       0,
		CategoryWires:      1,
		CategoryTools:      1,
		CategoryMaterials:  2,
	}
	if diff := cmp.Diff(wantSelected, selected); diff != "" {
		t.Fatalf("selected counts mismatch (-want +got):\n%s", diff)
	}

	all := Counts(state, false)
	wantAll := map[Category]int{
		CategoryPipes:      9,
		CategoryInsulation: 9,
		CategoryFittings:   5,
		CategoryNuts:       5,
		CategoryWires:      6,
		CategoryTools:      1,
		CategoryMaterials:  2,
	}
	if diff := cmp.Diff(wantAll, all); diff != "" {
		t.Fatalf("all counts mismatch (-want +got):\n%s", diff)
	}

	for _, c := range Categories() {
		catalog, ok := c.Catalog()
		if !ok {
			continue
		}
		if got, want := selected[c], state.ContentCount(catalog); got != want {
			t.Errorf("%s: count %d does not match predicate count %d", c, got, want)
		}
	}
}

func TestMaterialsCount_EachFieldOnce(t *testing.T) {
	t.Parallel()

	scalars := inventory.New().Scalars
	scalars.BrazingRods = 100
	scalars.ButaneQty = 3
	scalars.DrainHeaterLength = decimal.NewFromInt(4)
	scalars.HatlonLength = decimal.NewFromInt(1)
	scalars.OxygenCylinders = 2
	scalars.NitrogenCylinders = 1
	scalars.ACGas = "410"

	if got := materialsCount(scalars); got != 7 {
		t.Fatalf("expected 7 materials, got %d", got)
	}
}

func TestRows_HideUnselected(t *testing.T) {
	t.Parallel()

	state := inventory.New()
	nut := state.Nuts[4]
	nut.Selected, nut.Quantity = true, 8
	state, _ = state.WithNut(4, nut)
	nut = state.Nuts[1]
	nut.Selected = true
	state, _ = state.WithNut(1, nut)

	if diff := cmp.Diff([]int{4}, Rows(state, inventory.CatalogNuts, true)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if got := Rows(state, inventory.CatalogNuts, false); len(got) != 5 {
		t.Fatalf("expected all 5 rows, got %v", got)
	}
}

func TestQuery_ToggleAndClear(t *testing.T) {
	t.Parallel()

	q := Query{}
	if q.Active() {
		t.Fatalf("empty query should be inactive")
	}
	q = q.Toggle(CategoryWires).Toggle(CategoryNuts)
	if diff := cmp.Diff([]Category{CategoryWires, CategoryNuts}, q.Categories); diff != "" {
		t.Fatalf("toggle mismatch (-want +got):\n%s", diff)
	}
	q = q.Toggle(CategoryWires)
	if diff := cmp.Diff([]Category{CategoryNuts}, q.Categories); diff != "" {
		t.Fatalf("untoggle mismatch (-want +got):\n%s", diff)
	}
	if !q.Active() {
		t.Fatalf("expected active query")
	}
	if q.Clear().Active() {
		t.Fatalf("cleared query should be inactive")
	}
}

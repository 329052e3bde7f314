// Package visibility computes which inventory sections are shown for a search
// and category filter, and the per-category counts shown next to each filter
// option. It reads the aggregate and never modifies it.
package visibility

import (
	"strings"

	"github.com/saad12354/site-stock-app/pkg/inventory"
)

// Category is a filterable section of the form.
type Category string

const (
	CategoryPipes      Category = "pipes"
	CategoryInsulation Category = "insulation"
	CategoryFittings   Category = "fittings"
	CategoryNuts       Category = "nuts"
	CategoryWires      Category = "wires"
	CategoryTools      Category = "tools"
	CategoryMaterials  Category = "materials"
)

var categories = []Category{
	CategoryPipes,
	CategoryInsulation,
	CategoryFittings,
	CategoryNuts,
	CategoryWires,
	CategoryTools,
	CategoryMaterials,
}

var labels = map[Category]string{
	CategoryPipes:      "🔥 Copper Pipes",
	CategoryInsulation: "🛡️ Insulation",
	CategoryFittings:   "🔧 Pipe Fittings",
	CategoryNuts:       "🔩 Flare Nuts",
	CategoryWires:      "⚡ Wires",
	CategoryTools:      "🛠️ Tools",
	CategoryMaterials:  "📦 Materials",
}

const consumablesKeywords = "flaring tool brazing rods butane lpg drain heater hatlon oxygen nitrogen ac gas"

// Search matches against these descriptions, not against entry data. Tools
// and materials share one section and therefore one description.
var keywords = map[Category]string{
	CategoryPipes:      "copper pipes",
	CategoryInsulation: "insulation",
	CategoryFittings:   "fittings elbow coupling",
	CategoryNuts:       "flare nuts",
	CategoryWires:      "wires electrical",
	CategoryTools:      consumablesKeywords,
	CategoryMaterials:  consumablesKeywords,
}

var catalogOf = map[Category]inventory.Catalog{
	CategoryPipes:      inventory.CatalogPipes,
	CategoryInsulation: inventory.CatalogInsulation,
	CategoryFittings:   inventory.CatalogFittings,
	CategoryNuts:       inventory.CatalogNuts,
	CategoryWires:      inventory.CatalogWires,
}

// Categories returns every category in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Label returns the display label for c.
func (c Category) Label() string {
	return labels[c]
}

// Keywords returns the searchable description for c.
func (c Category) Keywords() string {
	return keywords[c]
}

// Catalog returns the inventory catalog behind c. Tools and materials are
// backed by scalar fields and report false.
func (c Category) Catalog() (inventory.Catalog, bool) {
	catalog, ok := catalogOf[c]
	return catalog, ok
}

// Query is the current search/filter input.
type Query struct {
	Search       string
	Categories   []Category
	OnlySelected bool
}

// Active reports whether any filter is applied.
func (q Query) Active() bool {
	return q.Search != "" || len(q.Categories) > 0 || q.OnlySelected
}

// Toggle adds c to the category filter, or removes it when already present.
func (q Query) Toggle(c Category) Query {
	out := q
	out.Categories = make([]Category, 0, len(q.Categories)+1)
	found := false
	for _, existing := range q.Categories {
		if existing == c {
			found = true
			continue
		}
		out.Categories = append(out.Categories, existing)
	}
	if !found {
		out.Categories = append(out.Categories, c)
	}
	return out
}

// Clear drops every filter.
func (q Query) Clear() Query {
	return Query{}
}

// Result holds the visible sections and the per-category counts.
type Result struct {
	Counts  map[Category]int
	Visible map[Category]bool
}

// IsVisible reports whether c is visible.
func (r Result) IsVisible(c Category) bool {
	return r.Visible[c]
}

// VisibleCategories lists the visible categories in display order.
func (r Result) VisibleCategories() []Category {
	var out []Category
	for _, c := range categories {
		if r.Visible[c] {
			out = append(out, c)
		}
	}
	return out
}

// Compute evaluates q against state. With an empty category filter every
// category is eligible; otherwise only the listed ones. The search term is a
// case-insensitive substring match on each category's keywords. Unknown
// categories in the filter are ignored.
func Compute(state *inventory.State, q Query) Result {
	result := Result{
		Counts:  Counts(state, q.OnlySelected),
		Visible: make(map[Category]bool, len(categories)),
	}

	selected := make(map[Category]bool, len(q.Categories))
	for _, c := range q.Categories {
		selected[c] = true
	}
	term := strings.ToLower(q.Search)

	for _, c := range categories {
		if len(selected) > 0 && !selected[c] {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(c.Keywords()), term) {
			continue
		}
		result.Visible[c] = true
	}
	return result
}

// Counts returns the count shown next to each category. Catalog categories
// count every entry unless onlySelected is set, in which case only entries
// passing the catalog's positivity predicate are counted. Tools count the
// flaring tool; materials count each consumable that is set, once.
func Counts(state *inventory.State, onlySelected bool) map[Category]int {
	counts := make(map[Category]int, len(categories))
	if state == nil {
		state = inventory.New()
	}
	for c, catalog := range catalogOf {
		if onlySelected {
			counts[c] = state.ContentCount(catalog)
		} else {
			counts[c] = state.Len(catalog)
		}
	}
	counts[CategoryTools] = toolsCount(state.Scalars)
	counts[CategoryMaterials] = materialsCount(state.Scalars)
	return counts
}

func toolsCount(s inventory.Scalars) int {
	if s.FlaringTool {
		return 1
	}
	return 0
}

func materialsCount(s inventory.Scalars) int {
	set := []bool{
		s.BrazingRods > 0,
		s.ButaneQty > 0,
		s.DrainHeaterLength.IsPositive(),
		s.HatlonLength.IsPositive(),
		s.OxygenCylinders > 0,
		s.NitrogenCylinders > 0,
		s.ACGas != "",
	}
	n := 0
	for _, ok := range set {
		if ok {
			n++
		}
	}
	return n
}

// Rows returns the indices of catalog entries to show. With onlySelected the
// list is restricted to entries passing the positivity predicate, which
// drives the "hide unselected rows" mode; otherwise every index is returned.
func Rows(state *inventory.State, c inventory.Catalog, onlySelected bool) []int {
	n := state.Len(c)
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if onlySelected && !state.HasContent(c, i) {
			continue
		}
		out = append(out, i)
	}
	return out
}

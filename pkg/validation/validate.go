package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/saad12354/site-stock-app/pkg/inventory"
)

const (
	RuleMin       = "min"
	RuleMax       = "max"
	RuleRequired  = "required"
	RuleMaxLength = "maxLength"
	RuleEnum      = "enum"
	RuleCatalog   = "catalog"
	RuleType      = "type"
)

// Issue is a single field-level violation.
type Issue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Limit   string `json:"limit,omitempty"`
	Message string `json:"message"`
}

// Result captures the outcome of validating an aggregate.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// ForField returns the issues reported for one field path.
func (r Result) ForField(path string) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Field == path {
			out = append(out, issue)
		}
	}
	return out
}

// Err returns nil for a valid result and an *Error otherwise. Submission
// gates use it to block on invalid input.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &Error{Issues: append([]Issue(nil), r.Issues...)}
}

// Error wraps the issues of an invalid result.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "validation: invalid"
	}
	first := e.Issues[0]
	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation: %s: %s", first.Field, first.Message)
	}
	return fmt.Sprintf("validation: %s: %s (and %d more)", first.Field, first.Message, len(e.Issues)-1)
}

// Validate checks every field of the aggregate against the rule table and
// the catalog layout. It only checks bounds, never relationships between
// fields.
func Validate(state *inventory.State) Result {
	if state == nil {
		return Result{Valid: false, Issues: []Issue{{Field: "", Rule: RuleRequired, Message: "Inventory is required"}}}
	}

	var issues []Issue
	issues = append(issues, checkCatalogs(state)...)
	for _, f := range fieldsOf(state) {
		rule, ok := RuleFor(f.path)
		if !ok || rule.Key {
			continue
		}
		issues = append(issues, Check(rule, f.path, f.value)...)
	}

	return Result{Valid: len(issues) == 0, Issues: issues}
}

// Check applies one rule to a value. Integer fields accept int, number fields
// accept decimal.Decimal, string fields accept string; booleans are always
// valid.
func Check(rule Rule, path string, value any) []Issue {
	switch rule.Type {
	case FieldTypeString:
		s, ok := value.(string)
		if !ok {
			return []Issue{typeIssue(rule, path, value)}
		}
		return checkString(rule, path, s)
	case FieldTypeInteger:
		n, ok := value.(int)
		if !ok {
			return []Issue{typeIssue(rule, path, value)}
		}
		return checkRange(rule, path, decimal.NewFromInt(int64(n)))
	case FieldTypeNumber:
		d, ok := value.(decimal.Decimal)
		if !ok {
			return []Issue{typeIssue(rule, path, value)}
		}
		return checkRange(rule, path, d)
	default:
		return nil
	}
}

func checkString(rule Rule, path, value string) []Issue {
	var out []Issue
	if rule.Required && strings.TrimSpace(value) == "" {
		out = append(out, Issue{
			Field:   path,
			Rule:    RuleRequired,
			Message: rule.Label + " is required",
		})
	}
	if rule.MaxLength > 0 && utf8.RuneCountInString(value) > rule.MaxLength {
		out = append(out, Issue{
			Field:   path,
			Rule:    RuleMaxLength,
			Limit:   strconv.Itoa(rule.MaxLength),
			Message: fmt.Sprintf("%s cannot exceed %d characters", rule.Label, rule.MaxLength),
		})
	}
	if len(rule.Enum) > 0 && !contains(rule.Enum, value) {
		out = append(out, Issue{
			Field:   path,
			Rule:    RuleEnum,
			Limit:   strings.Join(rule.Enum, ","),
			Message: fmt.Sprintf("%s must be one of %s", rule.Label, quoteAll(rule.Enum)),
		})
	}
	return out
}

func checkRange(rule Rule, path string, value decimal.Decimal) []Issue {
	if value.LessThan(decimal.NewFromInt(rule.Min)) {
		return []Issue{{
			Field:   path,
			Rule:    RuleMin,
			Limit:   strconv.FormatInt(rule.Min, 10),
			Message: fmt.Sprintf("%s must be at least %d", rule.Label, rule.Min),
		}}
	}
	if value.GreaterThan(decimal.NewFromInt(rule.Max)) {
		return []Issue{{
			Field:   path,
			Rule:    RuleMax,
			Limit:   strconv.FormatInt(rule.Max, 10),
			Message: fmt.Sprintf("%s cannot exceed %d", rule.Label, rule.Max),
		}}
	}
	return nil
}

func typeIssue(rule Rule, path string, value any) Issue {
	return Issue{
		Field:   path,
		Rule:    RuleType,
		Limit:   string(rule.Type),
		Message: fmt.Sprintf("%s must be a %s, got %T", rule.Label, rule.Type, value),
	}
}

func checkCatalogs(state *inventory.State) []Issue {
	var out []Issue
	for _, c := range inventory.Catalogs() {
		keys, err := inventory.Keys(c)
		if err != nil {
			continue
		}
		if got := state.Len(c); got != len(keys) {
			out = append(out, Issue{
				Field:   string(c),
				Rule:    RuleCatalog,
				Limit:   strconv.Itoa(len(keys)),
				Message: fmt.Sprintf("%s must list %d entries, got %d", c, len(keys), got),
			})
			continue
		}
		for i, want := range keys {
			got := catalogKey(state, c, i)
			if got == want {
				continue
			}
			out = append(out, Issue{
				Field:   fmt.Sprintf("%s.%d.%s", c, i, keyField(c)),
				Rule:    RuleCatalog,
				Limit:   want,
				Message: fmt.Sprintf("Entry %d must be %q, got %q", i+1, want, got),
			})
		}
	}
	return out
}

func keyField(c inventory.Catalog) string {
	if c == inventory.CatalogDrainPipes {
		return "type"
	}
	return "size"
}

func catalogKey(state *inventory.State, c inventory.Catalog, index int) string {
	switch c {
	case inventory.CatalogPipes:
		return state.Pipes[index].Size
	case inventory.CatalogInsulation:
		return state.Insulation[index].Size
	case inventory.CatalogFittings:
		return state.Fittings[index].Size
	case inventory.CatalogNuts:
		return state.Nuts[index].Size
	case inventory.CatalogWires:
		return state.Wires[index].Size
	case inventory.CatalogDrainPipes:
		return string(state.DrainPipes[index].Type)
	}
	return ""
}

type field struct {
	path  string
	value any
}

func at(c inventory.Catalog, index int, name string) string {
	return string(c) + "." + strconv.Itoa(index) + "." + name
}

// fieldsOf flattens the aggregate into (path, value) pairs in a stable order
// so issues are reported deterministically.
func fieldsOf(state *inventory.State) []field {
	s := state.Scalars
	out := []field{
		{"siteName", s.SiteName},
		{"siteLocation", s.SiteLocation},
	}

	for i, e := range state.Pipes {
		out = append(out,
			field{at(inventory.CatalogPipes, i, "quantity"), e.Quantity},
			field{at(inventory.CatalogPipes, i, "type"), string(e.Type)},
			field{at(inventory.CatalogPipes, i, "unit"), string(e.Unit)},
		)
	}
	for i, e := range state.DrainPipes {
		out = append(out,
			field{at(inventory.CatalogDrainPipes, i, "elbowQty"), e.ElbowQty},
			field{at(inventory.CatalogDrainPipes, i, "couplingQty"), e.CouplingQty},
			field{at(inventory.CatalogDrainPipes, i, "solventQty"), e.SolventQty},
			field{at(inventory.CatalogDrainPipes, i, "unit"), string(e.Unit)},
		)
	}
	for i, e := range state.Insulation {
		out = append(out,
			field{at(inventory.CatalogInsulation, i, "volume"), e.Volume},
			field{at(inventory.CatalogInsulation, i, "length"), e.Length},
			field{at(inventory.CatalogInsulation, i, "unit"), string(e.Unit)},
		)
	}
	for i, e := range state.Fittings {
		out = append(out,
			field{at(inventory.CatalogFittings, i, "elbowQty"), e.ElbowQty},
			field{at(inventory.CatalogFittings, i, "couplingQty"), e.CouplingQty},
		)
	}
	for i, e := range state.Nuts {
		out = append(out, field{at(inventory.CatalogNuts, i, "quantity"), e.Quantity})
	}
	for i, e := range state.Wires {
		out = append(out,
			field{at(inventory.CatalogWires, i, "length"), e.Length},
			field{at(inventory.CatalogWires, i, "cores"), e.Cores},
		)
	}

	out = append(out,
		field{"brazingRods", s.BrazingRods},
		field{"butaneSize", string(s.ButaneSize)},
		field{"butaneQty", s.ButaneQty},
		field{"drainHeaterLength", s.DrainHeaterLength},
		field{"hatlonLength", s.HatlonLength},
		field{"hatlonUnit", string(s.HatlonUnit)},
		field{"monsoonTapeLength", s.MonsoonTapeLength},
		field{"monsoonTapeQty", s.MonsoonTapeQty},
		field{"teflonTapeQty", s.TeflonTapeQty},
		field{"tarfeltLength", s.TarfeltLength},
		field{"tarfeltQty", s.TarfeltQty},
		field{"liquidPuffQty", s.LiquidPuffQty},
		field{"wireTapeLength", s.WireTapeLength},
		field{"wireTapeQty", s.WireTapeQty},
		field{"cableTies", s.CableTies},
		field{"cableTray", s.CableTray},
		field{"casingPatti", s.CasingPatti},
		field{"clamPatti", s.ClamPatti},
		field{"asbestosRopeQty", s.AsbestosRopeQty},
		field{"expansionWall", s.ExpansionWall},
		field{"oxygenCylinders", s.OxygenCylinders},
		field{"nitrogenCylinders", s.NitrogenCylinders},
		field{"acGas", s.ACGas},
	)
	return out
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ", ")
}

package validation

import (
	"strings"

	"github.com/saad12354/site-stock-app/pkg/inventory"
)

// FieldType is the primitive kind a rule constrains.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

// Rule declares the bounds for one field path. Catalog fields use "*" in
// place of the entry index (pipes.*.quantity). Numeric rules always carry a
// closed [Min, Max] range.
type Rule struct {
	Path      string
	Label     string
	Type      FieldType
	Min       int64
	Max       int64
	Required  bool
	MaxLength int
	Enum      []string
	// Key marks the catalog key field (size or drain pipe type). Keys are
	// checked against the catalog order rather than as free enum values.
	Key bool
}

// Numeric reports whether the rule carries a numeric range.
func (r Rule) Numeric() bool {
	return r.Type == FieldTypeInteger || r.Type == FieldTypeNumber
}

func catalogRule(c inventory.Catalog, field string, rule Rule) Rule {
	rule.Path = string(c) + ".*." + field
	return rule
}

func count(label string, max int64) Rule {
	return Rule{Label: label, Type: FieldTypeInteger, Min: 0, Max: max}
}

func measure(label string, max int64) Rule {
	return Rule{Label: label, Type: FieldTypeNumber, Min: 0, Max: max}
}

func flag(label string) Rule {
	return Rule{Label: label, Type: FieldTypeBoolean}
}

func oneOf(label string, values ...string) Rule {
	return Rule{Label: label, Type: FieldTypeString, Enum: values}
}

func key(label string, values []string) Rule {
	return Rule{Label: label, Type: FieldTypeString, Enum: values, Key: true}
}

func scalar(path string, rule Rule) Rule {
	rule.Path = path
	return rule
}

var (
	units       = []string{string(inventory.UnitFeet), string(inventory.UnitMeter)}
	unsetUnits  = []string{string(inventory.UnitFeet), string(inventory.UnitMeter), string(inventory.UnitUnset)}
	pipeTypes   = []string{string(inventory.PipeSoft), string(inventory.PipeHard)}
	butaneSizes = []string{string(inventory.ButaneSmall), string(inventory.ButaneBig), string(inventory.ButaneUnset)}
	drainTypes  = []string{string(inventory.DrainCPVC), string(inventory.DrainPVC), string(inventory.DrainUPVC)}
)

var rules = buildRules()

func buildRules() []Rule {
	var out []Rule

	out = append(out,
		scalar("siteName", Rule{Label: "Site name", Type: FieldTypeString, Required: true, MaxLength: 100}),
		scalar("siteLocation", Rule{Label: "Site location", Type: FieldTypeString, Required: true, MaxLength: 200}),
	)

	out = append(out,
		catalogRule(inventory.CatalogPipes, "size", key("Size", inventory.PipeSizes())),
		catalogRule(inventory.CatalogPipes, "quantity", count("Quantity", 1000)),
		catalogRule(inventory.CatalogPipes, "type", oneOf("Type", pipeTypes...)),
		catalogRule(inventory.CatalogPipes, "unit", oneOf("Unit", units...)),
		catalogRule(inventory.CatalogPipes, "selected", flag("Selected")),

		catalogRule(inventory.CatalogDrainPipes, "type", key("Type", drainTypes)),
		catalogRule(inventory.CatalogDrainPipes, "elbowQty", count("Elbow quantity", 1000)),
		catalogRule(inventory.CatalogDrainPipes, "couplingQty", count("Coupling quantity", 1000)),
		catalogRule(inventory.CatalogDrainPipes, "solventQty", count("Solvent quantity", 10000)),
		catalogRule(inventory.CatalogDrainPipes, "unit", oneOf("Unit", units...)),
		catalogRule(inventory.CatalogDrainPipes, "selected", flag("Selected")),

		catalogRule(inventory.CatalogInsulation, "size", key("Size", inventory.PipeSizes())),
		catalogRule(inventory.CatalogInsulation, "volume", measure("Volume", 1000)),
		catalogRule(inventory.CatalogInsulation, "length", measure("Length", 10000)),
		catalogRule(inventory.CatalogInsulation, "unit", oneOf("Unit", units...)),
		catalogRule(inventory.CatalogInsulation, "selected", flag("Selected")),

		catalogRule(inventory.CatalogFittings, "size", key("Size", inventory.FittingSizes())),
		catalogRule(inventory.CatalogFittings, "elbowQty", count("Elbow quantity", 1000)),
		catalogRule(inventory.CatalogFittings, "couplingQty", count("Coupling quantity", 1000)),
		catalogRule(inventory.CatalogFittings, "elbowFeet", flag("Elbow in feet")),
		catalogRule(inventory.CatalogFittings, "couplingFeet", flag("Coupling in feet")),
		catalogRule(inventory.CatalogFittings, "selected", flag("Selected")),

		catalogRule(inventory.CatalogNuts, "size", key("Size", inventory.NutSizes())),
		catalogRule(inventory.CatalogNuts, "quantity", count("Quantity", 1000)),
		catalogRule(inventory.CatalogNuts, "selected", flag("Selected")),

		catalogRule(inventory.CatalogWires, "size", key("Size", inventory.WireSizes())),
		catalogRule(inventory.CatalogWires, "length", measure("Length", 10000)),
		catalogRule(inventory.CatalogWires, "cores", Rule{Label: "Cores", Type: FieldTypeInteger, Min: 1, Max: 8}),
		catalogRule(inventory.CatalogWires, "selected", flag("Selected")),
	)

	out = append(out,
		scalar("flaringTool", flag("Flaring tool")),
		scalar("brazingRods", count("Brazing rods", 100)),
		scalar("butaneSize", oneOf("Butane size", butaneSizes...)),
		scalar("butaneQty", count("Butane quantity", 100)),
		scalar("drainHeaterLength", measure("Drain heater length", 1000)),
		scalar("hatlonLength", measure("Hatlon length", 1000)),
		scalar("hatlonUnit", oneOf("Hatlon unit", unsetUnits...)),
		scalar("monsoonTapeLength", measure("Monsoon tape length", 1000)),
		scalar("monsoonTapeQty", count("Monsoon tape quantity", 100)),
		scalar("teflonTapeQty", count("Teflon tape quantity", 100)),
		scalar("tarfeltLength", measure("Tarfelt length", 1000)),
		scalar("tarfeltQty", count("Tarfelt quantity", 100)),
		scalar("liquidPuffQty", count("Liquid puff quantity", 1000)),
		scalar("wireTapeLength", measure("Wire tape length", 1000)),
		scalar("wireTapeQty", count("Wire tape quantity", 100)),
		scalar("cableTies", count("Cable ties", 1000)),
		scalar("cableTray", count("Cable tray", 1000)),
		scalar("casingPatti", count("Casing patti", 1000)),
		scalar("clamPatti", count("Clam patti", 1000)),
		scalar("asbestosRopeQty", count("Asbestos rope quantity", 1000)),
		scalar("asbestosRopeMeter", flag("Asbestos rope in meters")),
		scalar("expansionWall", count("Expansion wall", 1000)),
		scalar("oxygenCylinders", count("Oxygen cylinders", 100)),
		scalar("nitrogenCylinders", count("Nitrogen cylinders", 100)),
		scalar("acGas", Rule{Label: "AC gas type", Type: FieldTypeString, MaxLength: 50}),
	)

	return out
}

var rulesByPath = indexRules(rules)

func indexRules(list []Rule) map[string]Rule {
	out := make(map[string]Rule, len(list))
	for _, rule := range list {
		out[rule.Path] = rule
	}
	return out
}

// Rules returns the full rule table in declaration order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// RuleFor looks up the rule for a field path. Concrete catalog indices are
// accepted (pipes.3.quantity resolves to pipes.*.quantity).
func RuleFor(path string) (Rule, bool) {
	rule, ok := rulesByPath[patternOf(path)]
	return rule, ok
}

func patternOf(path string) string {
	parts := strings.Split(strings.TrimSpace(path), ".")
	if len(parts) == 3 && isNumeric(parts[1]) {
		parts[1] = "*"
	}
	return strings.Join(parts, ".")
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

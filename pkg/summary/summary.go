// Package summary renders an inventory aggregate as the plain-text report
// that is copied, shared, or printed at the end of a form session.
//
// Generate is pure and total. Sections whose content is empty are omitted
// without leaving a gap, and entries failing their catalog's positivity
// predicate are skipped rather than rendered as zero.
//
// The header keeps a fixed ordering quirk: the project line is placed at the
// top first and the location line is then placed above it, so a report with
// both starts with "Location: …" followed by "Project: …".
package summary

import (
	"fmt"
	"strings"

	"github.com/saad12354/site-stock-app/pkg/inventory"
)

const (
	// Banner opens every report.
	Banner = "📋 INVENTORY SUMMARY"

	separatorWidth = 30
)

// Separator is the horizontal rule under the banner and at the end.
var Separator = strings.Repeat("═", separatorWidth)

// Section labels, in report order.
const (
	LabelFlaringTool = "🔧 Flaring Tool"
	LabelPipes       = "🔥 Copper Pipes"
	LabelInsulation  = "🛡️ Insulation"
	LabelFittings    = "🔧 Pipe Fittings"
	LabelNuts        = "🔩 Flare Nuts"
	LabelBrazing     = "🔥 Brazing Rods"
	LabelButane      = "⛽ Butane / LPG"
	LabelDrainHeater = "🔌 Drain Heater"
	LabelHatlon      = "📏 Hatlon"
	LabelWires       = "⚡ Wires"
	LabelOxygen      = "🫧 Oxygen Cylinders"
	LabelNitrogen    = "💨 Nitrogen Cylinders"
	LabelACGas       = "❄️ AC Gas"
)

// Generate renders state. A nil state renders as the default aggregate.
func Generate(state *inventory.State) string {
	if state == nil {
		state = inventory.New()
	}
	return assemble(Sections(state))
}

// Sections returns the report lines between the banner rules, header lines
// included. It is the building block of Generate for callers that lay the
// report out themselves.
func Sections(state *inventory.State) []string {
	if state == nil {
		state = inventory.New()
	}
	s := state.Scalars

	var out []string
	if s.SiteName != "" {
		out = prepend(out, fmt.Sprintf("Project: %s\n", s.SiteName))
	}
	if s.SiteLocation != "" {
		out = prepend(out, fmt.Sprintf("Location: %s\n", s.SiteLocation))
	}

	if s.FlaringTool {
		out = append(out, LabelFlaringTool+": ✓ Required")
	}
	out = appendSection(out, LabelPipes, ", ", pipeItems(state.Pipes))
	out = appendSection(out, LabelInsulation, ", ", insulationItems(state.Insulation))
	out = appendSection(out, LabelFittings, " | ", fittingItems(state.Fittings))
	out = appendSection(out, LabelNuts, ", ", nutItems(state.Nuts))

	if s.BrazingRods > 0 {
		out = append(out, fmt.Sprintf("%s: ×%d pieces", LabelBrazing, s.BrazingRods))
	}
	if s.ButaneSize != inventory.ButaneUnset && s.ButaneQty > 0 {
		out = append(out, fmt.Sprintf("%s: %s cylinder ×%d", LabelButane, s.ButaneSize, s.ButaneQty))
	}
	if s.DrainHeaterLength.IsPositive() {
		out = append(out, fmt.Sprintf("%s: %s ft", LabelDrainHeater, s.DrainHeaterLength))
	}
	if s.HatlonLength.IsPositive() && s.HatlonUnit != inventory.UnitUnset {
		out = append(out, fmt.Sprintf("%s: %s %s", LabelHatlon, s.HatlonLength, s.HatlonUnit))
	}

	out = appendSection(out, LabelWires, ", ", wireItems(state.Wires))

	if s.OxygenCylinders > 0 {
		out = append(out, fmt.Sprintf("%s: ×%d cylinders", LabelOxygen, s.OxygenCylinders))
	}
	if s.NitrogenCylinders > 0 {
		out = append(out, fmt.Sprintf("%s: ×%d cylinders", LabelNitrogen, s.NitrogenCylinders))
	}
	if s.ACGas != "" {
		out = append(out, fmt.Sprintf("%s: %s type/kg", LabelACGas, s.ACGas))
	}
	return out
}

func assemble(sections []string) string {
	var b strings.Builder
	b.WriteString(Banner)
	b.WriteString("\n")
	b.WriteString(Separator)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(sections, "\n\n"))
	b.WriteString("\n\n")
	b.WriteString(Separator)
	return b.String()
}

func prepend(lines []string, line string) []string {
	return append([]string{line}, lines...)
}

func appendSection(out []string, label, sep string, items []string) []string {
	if len(items) == 0 {
		return out
	}
	return append(out, label+": "+strings.Join(items, sep))
}

func pipeItems(entries []inventory.PipeEntry) []string {
	var items []string
	for _, e := range entries {
		if !e.HasContent() {
			continue
		}
		items = append(items, fmt.Sprintf("%s\" %s ×%d", e.Size, e.Type, e.Quantity))
	}
	return items
}

func insulationItems(entries []inventory.InsulationEntry) []string {
	var items []string
	for _, e := range entries {
		if !e.HasContent() {
			continue
		}
		items = append(items, fmt.Sprintf("%s\" (Vol:%smm) %s%s", e.Size, e.Volume, e.Length, e.Unit))
	}
	return items
}

func fittingItems(entries []inventory.FittingEntry) []string {
	var items []string
	for _, e := range entries {
		if !e.Selected {
			continue
		}
		var parts []string
		if e.ElbowQty > 0 {
			parts = append(parts, fmt.Sprintf("Elbow ×%d", e.ElbowQty))
		}
		if e.CouplingQty > 0 {
			parts = append(parts, fmt.Sprintf("Coupling ×%d", e.CouplingQty))
		}
		if len(parts) == 0 {
			continue
		}
		items = append(items, fmt.Sprintf("%s\" %s", e.Size, strings.Join(parts, ", ")))
	}
	return items
}

func nutItems(entries []inventory.NutEntry) []string {
	var items []string
	for _, e := range entries {
		if !e.HasContent() {
			continue
		}
		items = append(items, fmt.Sprintf("%s\" ×%d", e.Size, e.Quantity))
	}
	return items
}

func wireItems(entries []inventory.WireEntry) []string {
	var items []string
	for _, e := range entries {
		if !e.HasContent() {
			continue
		}
		items = append(items, fmt.Sprintf("%ssq mm %d-core %sm", e.Size, e.Cores, e.Length))
	}
	return items
}

package editor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/saad12354/site-stock-app/pkg/inventory"
)

func entryPath(c inventory.Catalog, index int, field string) string {
	return fmt.Sprintf("%s.%d.%s", c, index, field)
}

func (e *Editor) editSite(ctx context.Context, target Target) error {
	current := target.State().Scalars
	next := current

	var err error
	if next.SiteName, err = e.askText(ctx, "siteName", current.SiteName); err != nil {
		return err
	}
	if next.SiteLocation, err = e.askText(ctx, "siteLocation", current.SiteLocation); err != nil {
		return err
	}
	return e.applyScalars(target, current, next)
}

func (e *Editor) editPipes(ctx context.Context, target Target) error {
	entries := target.State().Pipes
	options := make([]string, len(entries))
	current := make([]bool, len(entries))
	for i, entry := range entries {
		options[i] = entry.Size + `"`
		current[i] = entry.Selected
	}
	picked, err := e.askSelection(ctx, SectionPipes, options, current)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		next := entry
		next.Selected = picked[i]
		if next.Selected {
			prefix := options[i] + " "
			c := inventory.CatalogPipes
			if next.Quantity, err = e.askCount(ctx, entryPath(c, i, "quantity"), prefix, entry.Quantity); err != nil {
				return err
			}
			pipeType, err := e.askChoice(ctx, entryPath(c, i, "type"), prefix, string(entry.Type))
			if err != nil {
				return err
			}
			next.Type = inventory.PipeType(pipeType)
			unit, err := e.askChoice(ctx, entryPath(c, i, "unit"), prefix, string(entry.Unit))
			if err != nil {
				return err
			}
			next.Unit = inventory.Unit(unit)
		}
		if next == entry {
			continue
		}
		if err := e.setEntry(target, inventory.CatalogPipes, i, next); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) editInsulation(ctx context.Context, target Target) error {
	entries := target.State().Insulation
	options := make([]string, len(entries))
	current := make([]bool, len(entries))
	for i, entry := range entries {
		options[i] = entry.Size + `"`
		current[i] = entry.Selected
	}
	picked, err := e.askSelection(ctx, SectionInsulation, options, current)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		next := entry
		next.Selected = picked[i]
		if next.Selected {
			prefix := options[i] + " "
			c := inventory.CatalogInsulation
			if next.Volume, err = e.askMeasure(ctx, entryPath(c, i, "volume"), prefix, entry.Volume); err != nil {
				return err
			}
			if next.Length, err = e.askMeasure(ctx, entryPath(c, i, "length"), prefix, entry.Length); err != nil {
				return err
			}
			unit, err := e.askChoice(ctx, entryPath(c, i, "unit"), prefix, string(entry.Unit))
			if err != nil {
				return err
			}
			next.Unit = inventory.Unit(unit)
		}
		if next.Equal(entry) {
			continue
		}
		if err := e.setEntry(target, inventory.CatalogInsulation, i, next); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) editDrainPipes(ctx context.Context, target Target) error {
	entries := target.State().DrainPipes
	options := make([]string, len(entries))
	current := make([]bool, len(entries))
	for i, entry := range entries {
		options[i] = string(entry.Type)
		current[i] = entry.Selected
	}
	picked, err := e.askSelection(ctx, SectionDrainPipes, options, current)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		next := entry
		next.Selected = picked[i]
		if next.Selected {
			prefix := options[i] + " "
			c := inventory.CatalogDrainPipes
			if next.ElbowQty, err = e.askCount(ctx, entryPath(c, i, "elbowQty"), prefix, entry.ElbowQty); err != nil {
				return err
			}
			if next.CouplingQty, err = e.askCount(ctx, entryPath(c, i, "couplingQty"), prefix, entry.CouplingQty); err != nil {
				return err
			}
			if next.SolventQty, err = e.askCount(ctx, entryPath(c, i, "solventQty"), prefix, entry.SolventQty); err != nil {
				return err
			}
			unit, err := e.askChoice(ctx, entryPath(c, i, "unit"), prefix, string(entry.Unit))
			if err != nil {
				return err
			}
			next.Unit = inventory.Unit(unit)
		}
		if next == entry {
			continue
		}
		if err := e.setEntry(target, inventory.CatalogDrainPipes, i, next); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) editFittings(ctx context.Context, target Target) error {
	entries := target.State().Fittings
	options := make([]string, len(entries))
	current := make([]bool, len(entries))
	for i, entry := range entries {
		options[i] = entry.Size + `"`
		current[i] = entry.Selected
	}
	picked, err := e.askSelection(ctx, SectionFittings, options, current)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		next := entry
		next.Selected = picked[i]
		if next.Selected {
			prefix := options[i] + " "
			c := inventory.CatalogFittings
			if next.ElbowQty, err = e.askCount(ctx, entryPath(c, i, "elbowQty"), prefix, entry.ElbowQty); err != nil {
				return err
			}
			if next.ElbowFeet, err = e.askFlag(ctx, entryPath(c, i, "elbowFeet"), prefix, entry.ElbowFeet); err != nil {
				return err
			}
			if next.CouplingQty, err = e.askCount(ctx, entryPath(c, i, "couplingQty"), prefix, entry.CouplingQty); err != nil {
				return err
			}
			if next.CouplingFeet, err = e.askFlag(ctx, entryPath(c, i, "couplingFeet"), prefix, entry.CouplingFeet); err != nil {
				return err
			}
		}
		if next == entry {
			continue
		}
		if err := e.setEntry(target, inventory.CatalogFittings, i, next); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) editNuts(ctx context.Context, target Target) error {
	entries := target.State().Nuts
	options := make([]string, len(entries))
	current := make([]bool, len(entries))
	for i, entry := range entries {
		options[i] = entry.Size + `"`
		current[i] = entry.Selected
	}
	picked, err := e.askSelection(ctx, SectionNuts, options, current)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		next := entry
		next.Selected = picked[i]
		if next.Selected {
			path := entryPath(inventory.CatalogNuts, i, "quantity")
			if next.Quantity, err = e.askCount(ctx, path, options[i]+" ", entry.Quantity); err != nil {
				return err
			}
		}
		if next == entry {
			continue
		}
		if err := e.setEntry(target, inventory.CatalogNuts, i, next); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) editWires(ctx context.Context, target Target) error {
	entries := target.State().Wires
	options := make([]string, len(entries))
	current := make([]bool, len(entries))
	for i, entry := range entries {
		options[i] = entry.Size + " sq mm"
		current[i] = entry.Selected
	}
	picked, err := e.askSelection(ctx, SectionWires, options, current)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		next := entry
		next.Selected = picked[i]
		if next.Selected {
			prefix := options[i] + " "
			c := inventory.CatalogWires
			if next.Length, err = e.askMeasure(ctx, entryPath(c, i, "length"), prefix, entry.Length); err != nil {
				return err
			}
			if next.Cores, err = e.askCores(ctx, entryPath(c, i, "cores"), prefix, entry.Cores); err != nil {
				return err
			}
		}
		if next.Equal(entry) {
			continue
		}
		if err := e.setEntry(target, inventory.CatalogWires, i, next); err != nil {
			return err
		}
	}
	return nil
}

// askCores offers the usual core counts. A loaded value outside that list is
// kept as the first option so re-editing does not silently change it.
func (e *Editor) askCores(ctx context.Context, path, prefix string, current int) (int, error) {
	choices := append([]int(nil), inventory.WireCoreChoices...)
	found := false
	for _, c := range choices {
		if c == current {
			found = true
			break
		}
	}
	if !found {
		choices = append([]int{current}, choices...)
	}

	options := make([]string, len(choices))
	defaultIndex := 0
	for i, c := range choices {
		options[i] = strconv.Itoa(c) + "-core"
		if c == current {
			defaultIndex = i
		}
	}
	idx, err := e.driver.Select(ctx, SelectConfig{
		Message:      prefix + label(path),
		Options:      options,
		DefaultIndex: defaultIndex,
		PageSize:     e.pageSize,
	})
	if err != nil {
		return current, err
	}
	if idx < 0 || idx >= len(choices) {
		return current, nil
	}
	return choices[idx], nil
}

func (e *Editor) editConsumables(ctx context.Context, target Target) error {
	current := target.State().Scalars
	s := current

	ask := &scalarPrompter{ctx: ctx, e: e}
	ask.flag("flaringTool", &s.FlaringTool)
	ask.count("brazingRods", &s.BrazingRods)
	ask.choice("butaneSize", (*string)(&s.ButaneSize))
	ask.count("butaneQty", &s.ButaneQty)
	ask.measure("drainHeaterLength", &s.DrainHeaterLength)
	ask.measure("hatlonLength", &s.HatlonLength)
	ask.choice("hatlonUnit", (*string)(&s.HatlonUnit))
	ask.measure("monsoonTapeLength", &s.MonsoonTapeLength)
	ask.count("monsoonTapeQty", &s.MonsoonTapeQty)
	ask.count("teflonTapeQty", &s.TeflonTapeQty)
	ask.measure("tarfeltLength", &s.TarfeltLength)
	ask.count("tarfeltQty", &s.TarfeltQty)
	ask.count("liquidPuffQty", &s.LiquidPuffQty)
	ask.measure("wireTapeLength", &s.WireTapeLength)
	ask.count("wireTapeQty", &s.WireTapeQty)
	ask.count("cableTies", &s.CableTies)
	ask.count("cableTray", &s.CableTray)
	ask.count("casingPatti", &s.CasingPatti)
	ask.count("clamPatti", &s.ClamPatti)
	ask.count("asbestosRopeQty", &s.AsbestosRopeQty)
	ask.flag("asbestosRopeMeter", &s.AsbestosRopeMeter)
	ask.count("expansionWall", &s.ExpansionWall)
	ask.count("oxygenCylinders", &s.OxygenCylinders)
	ask.count("nitrogenCylinders", &s.NitrogenCylinders)
	ask.text("acGas", &s.ACGas)
	if ask.err != nil {
		return ask.err
	}
	return e.applyScalars(target, current, s)
}

// scalarPrompter asks for scalar fields in sequence and stops at the first
// error.
type scalarPrompter struct {
	ctx context.Context
	e   *Editor
	err error
}

func (p *scalarPrompter) flag(path string, dst *bool) {
	if p.err == nil {
		*dst, p.err = p.e.askFlag(p.ctx, path, "", *dst)
	}
}

func (p *scalarPrompter) count(path string, dst *int) {
	if p.err == nil {
		*dst, p.err = p.e.askCount(p.ctx, path, "", *dst)
	}
}

func (p *scalarPrompter) measure(path string, dst *decimal.Decimal) {
	if p.err == nil {
		*dst, p.err = p.e.askMeasure(p.ctx, path, "", *dst)
	}
}

func (p *scalarPrompter) choice(path string, dst *string) {
	if p.err == nil {
		*dst, p.err = p.e.askChoice(p.ctx, path, "", *dst)
	}
}

func (p *scalarPrompter) text(path string, dst *string) {
	if p.err == nil {
		*dst, p.err = p.e.askText(p.ctx, path, *dst)
	}
}

func (e *Editor) applyScalars(target Target, current, next inventory.Scalars) error {
	if next.Equal(current) {
		return nil
	}
	if err := target.SetScalars(next); err != nil {
		return fmt.Errorf("editor: update scalars: %w", err)
	}
	e.logger.Debug("scalars updated")
	return nil
}

// Package editor drives the section editors of the inventory form from a
// terminal. Every edit reaches the aggregate as a full replacement value
// through a Target; quantity prompts for an entry are skipped while the
// entry is unselected, so those edits are ignored rather than rejected.
package editor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/saad12354/site-stock-app/pkg/inventory"
	"github.com/saad12354/site-stock-app/pkg/validation"
)

// Target is the aggregate handle the editors write to.
type Target interface {
	State() *inventory.State
	SetEntry(c inventory.Catalog, index int, entry any) error
	SetScalars(scalars inventory.Scalars) error
}

// Section identifies one editor of the form.
type Section string

const (
	SectionSite        Section = "site"
	SectionPipes       Section = "pipes"
	SectionInsulation  Section = "insulation"
	SectionDrainPipes  Section = "drainPipes"
	SectionFittings    Section = "fittings"
	SectionNuts        Section = "nuts"
	SectionWires       Section = "wires"
	SectionConsumables Section = "consumables"
)

var sections = []Section{
	SectionSite,
	SectionPipes,
	SectionInsulation,
	SectionDrainPipes,
	SectionFittings,
	SectionNuts,
	SectionWires,
	SectionConsumables,
}

var sectionLabels = map[Section]string{
	SectionSite:        "📍 Site details",
	SectionPipes:       "🔥 Copper Pipes",
	SectionInsulation:  "🛡️ Insulation",
	SectionDrainPipes:  "🚰 Drain Pipes",
	SectionFittings:    "🔧 Pipe Fittings",
	SectionNuts:        "🔩 Flare Nuts",
	SectionWires:       "⚡ Wires",
	SectionConsumables: "🛠️ Tools & Materials",
}

const doneLabel = "✅ Done"

// Sections returns every section in menu order.
func Sections() []Section {
	return append([]Section(nil), sections...)
}

// Label returns the menu label for s.
func (s Section) Label() string {
	return sectionLabels[s]
}

// Editor prompts for section values and applies them to a Target.
type Editor struct {
	driver   PromptDriver
	out      io.Writer
	pageSize int
	logger   *slog.Logger
}

// New constructs an Editor with defaults (survey driver on stdout).
func New(options ...Option) (*Editor, error) {
	e := &Editor{
		out:      os.Stdout,
		pageSize: 10,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.driver == nil {
		e.driver = newSurveyDriver(e.out)
	}
	return e, nil
}

// Run shows the section menu until the user picks Done.
func (e *Editor) Run(ctx context.Context, target Target) error {
	if target == nil || target.State() == nil {
		return ErrNilTarget
	}
	options := make([]string, 0, len(sections)+1)
	for _, s := range sections {
		options = append(options, s.Label())
	}
	options = append(options, doneLabel)

	for {
		idx, err := e.driver.Select(ctx, SelectConfig{
			Message:  "Section to edit",
			Options:  options,
			PageSize: e.pageSize,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(sections) {
			return nil
		}
		if err := e.EditSection(ctx, target, sections[idx]); err != nil {
			return err
		}
	}
}

// EditSection runs the editor for one section.
func (e *Editor) EditSection(ctx context.Context, target Target, section Section) error {
	if target == nil || target.State() == nil {
		return ErrNilTarget
	}
	switch section {
	case SectionSite:
		return e.editSite(ctx, target)
	case SectionPipes:
		return e.editPipes(ctx, target)
	case SectionInsulation:
		return e.editInsulation(ctx, target)
	case SectionDrainPipes:
		return e.editDrainPipes(ctx, target)
	case SectionFittings:
		return e.editFittings(ctx, target)
	case SectionNuts:
		return e.editNuts(ctx, target)
	case SectionWires:
		return e.editWires(ctx, target)
	case SectionConsumables:
		return e.editConsumables(ctx, target)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
}

func (e *Editor) setEntry(target Target, c inventory.Catalog, index int, entry any) error {
	if err := target.SetEntry(c, index, entry); err != nil {
		return fmt.Errorf("editor: update %s[%d]: %w", c, index, err)
	}
	e.logger.Debug("entry updated", slog.String("catalog", string(c)), slog.Int("index", index))
	return nil
}

func label(path string) string {
	if rule, ok := validation.RuleFor(path); ok && rule.Label != "" {
		return rule.Label
	}
	return path
}

func (e *Editor) askCount(ctx context.Context, path, prefix string, current int) (int, error) {
	raw, err := e.driver.Input(ctx, InputConfig{
		Message: prefix + label(path),
		Default: strconv.Itoa(current),
		Validator: func(s string) error {
			_, err := validation.ParseCount(path, s)
			return err
		},
	})
	if err != nil {
		return current, err
	}
	return validation.ParseCount(path, raw)
}

func (e *Editor) askMeasure(ctx context.Context, path, prefix string, current decimal.Decimal) (decimal.Decimal, error) {
	raw, err := e.driver.Input(ctx, InputConfig{
		Message: prefix + label(path),
		Default: current.String(),
		Validator: func(s string) error {
			_, err := validation.ParseMeasure(path, s)
			return err
		},
	})
	if err != nil {
		return current, err
	}
	return validation.ParseMeasure(path, raw)
}

func (e *Editor) askText(ctx context.Context, path, current string) (string, error) {
	raw, err := e.driver.Input(ctx, InputConfig{
		Message: label(path),
		Default: current,
		Validator: func(s string) error {
			_, err := validation.ParseText(path, s)
			return err
		},
	})
	if err != nil {
		return current, err
	}
	return validation.ParseText(path, raw)
}

func (e *Editor) askFlag(ctx context.Context, path, prefix string, current bool) (bool, error) {
	return e.driver.Confirm(ctx, ConfirmConfig{
		Message: prefix + label(path),
		Default: current,
	})
}

const unsetOption = "(none)"

// askChoice offers the enum values of path; an empty value is shown as
// "(none)".
func (e *Editor) askChoice(ctx context.Context, path, prefix, current string) (string, error) {
	rule, ok := validation.RuleFor(path)
	if !ok || len(rule.Enum) == 0 {
		return current, fmt.Errorf("%w: %s has no choices", validation.ErrUnknownField, path)
	}
	options := make([]string, len(rule.Enum))
	defaultIndex := 0
	for i, v := range rule.Enum {
		options[i] = v
		if v == "" {
			options[i] = unsetOption
		}
		if v == current {
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
	if idx < 0 || idx >= len(rule.Enum) {
		return current, nil
	}
	return rule.Enum[idx], nil
}

// askSelection lets the user tick catalog entries. It returns the new
// selected flag per entry.
func (e *Editor) askSelection(ctx context.Context, section Section, options []string, current []bool) ([]bool, error) {
	var defaults []int
	for i, selected := range current {
		if selected {
			defaults = append(defaults, i)
		}
	}
	picked, err := e.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Select " + section.Label(),
		Options:  options,
		Defaults: defaults,
		PageSize: e.pageSize,
	})
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(current))
	for _, idx := range picked {
		if idx >= 0 && idx < len(out) {
			out[idx] = true
		}
	}
	return out, nil
}

package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/saad12354/site-stock-app/pkg/inventory"
	"github.com/saad12354/site-stock-app/pkg/validation"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	infoMessages []string
	prompts      []string
	inputPos     int
	selectPos    int
	multiPos     int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type setCall struct {
	Catalog inventory.Catalog
	Index   int
}

// memoryTarget applies updates to an in-memory aggregate and records them.
type memoryTarget struct {
	state   *inventory.State
	calls   []setCall
	scalars int
}

func newTarget() *memoryTarget {
	return &memoryTarget{state: inventory.New()}
}

func (m *memoryTarget) State() *inventory.State { return m.state }

func (m *memoryTarget) SetEntry(c inventory.Catalog, index int, entry any) error {
	next, err := m.state.WithEntry(c, index, entry)
	if err != nil {
		return err
	}
	m.state = next
	m.calls = append(m.calls, setCall{Catalog: c, Index: index})
	return nil
}

func (m *memoryTarget) SetScalars(s inventory.Scalars) error {
	m.state = m.state.WithScalars(s)
	m.scalars++
	return nil
}

func newEditor(t *testing.T, driver PromptDriver) *Editor {
	t.Helper()
	e, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}
	return e
}

func TestEditPipes_OnlySelectedEntriesArePrompted(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{
		multiIdx:  [][]int{{2}},
		inputs:    []string{"5"},
		selectIdx: []int{1, 0},
	}
	target := newTarget()

	if err := newEditor(t, driver).EditSection(context.Background(), target, SectionPipes); err != nil {
		t.Fatalf("edit pipes: %v", err)
	}

	want := inventory.PipeEntry{Size: "1/2", Quantity: 5, Type: inventory.PipeHard, Unit: inventory.UnitFeet, Selected: true}
	if diff := cmp.Diff(want, target.state.Pipes[2]); diff != "" {
		t.Fatalf("pipe mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]setCall{{Catalog: inventory.CatalogPipes, Index: 2}}, target.calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
	if driver.inputPos != 1 {
		t.Fatalf("expected a single quantity prompt, got %d", driver.inputPos)
	}
}

func TestEditNuts_DeselectKeepsQuantity(t *testing.T) {
	t.Parallel()

	target := newTarget()
	nut := target.state.Nuts[0]
	nut.Selected, nut.Quantity = true, 4
	target.state, _ = target.state.WithNut(0, nut)

	driver := &stubDriver{multiIdx: [][]int{nil}}
	if err := newEditor(t, driver).EditSection(context.Background(), target, SectionNuts); err != nil {
		t.Fatalf("edit nuts: %v", err)
	}

	want := inventory.NutEntry{Size: "1/4", Quantity: 4}
	if diff := cmp.Diff(want, target.state.Nuts[0]); diff != "" {
		t.Fatalf("nut mismatch (-want +got):\n%s", diff)
	}
	if driver.inputPos != 0 {
		t.Fatalf("unselected entries must not be prompted")
	}
	if target.state.HasContent(inventory.CatalogNuts, 0) {
		t.Fatalf("deselected nut should not count")
	}
}

func TestEditWires_CoreChoices(t *testing.T) {
	t.Parallel()

	target := newTarget()
	wire := target.state.Wires[1]
	wire.Cores = 3
	target.state, _ = target.state.WithWire(1, wire)

	driver := &stubDriver{
		multiIdx:  [][]int{{1}},
		inputs:    []string{"12.5"},
		selectIdx: []int{0},
	}
	if err := newEditor(t, driver).EditSection(context.Background(), target, SectionWires); err != nil {
		t.Fatalf("edit wires: %v", err)
	}

	got := target.state.Wires[1]
	if got.Cores != 3 {
		t.Fatalf("loaded core count outside the menu should be kept, got %d", got.Cores)
	}
	if !got.Length.Equal(decimal.RequireFromString("12.5")) || !got.Selected {
		t.Fatalf("unexpected wire %#v", got)
	}
}

func TestEditFittings_PromptsQuantitiesAndUnits(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{
		multiIdx: [][]int{{3}},
		inputs:   []string{"2", "-7"},
		confirm:  []bool{true, false},
	}
	target := newTarget()
	if err := newEditor(t, driver).EditSection(context.Background(), target, SectionFittings); err != nil {
		t.Fatalf("edit fittings: %v", err)
	}

	want := inventory.FittingEntry{Size: "5/8", ElbowQty: 2, ElbowFeet: true, Selected: true}
	if diff := cmp.Diff(want, target.state.Fittings[3]); diff != "" {
		t.Fatalf("fitting mismatch (-want +got):\n%s", diff)
	}
}

func TestEditSection_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{
		multiIdx: [][]int{{0}},
		inputs:   []string{"1001"},
	}
	target := newTarget()
	err := newEditor(t, driver).EditSection(context.Background(), target, SectionNuts)
	if !errors.Is(err, validation.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if len(target.calls) != 0 {
		t.Fatalf("no update expected, got %v", target.calls)
	}
}

func TestEditSite(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{inputs: []string{"Tower B", "Pune"}}
	target := newTarget()
	if err := newEditor(t, driver).EditSection(context.Background(), target, SectionSite); err != nil {
		t.Fatalf("edit site: %v", err)
	}
	if target.state.SiteName != "Tower B" || target.state.SiteLocation != "Pune" {
		t.Fatalf("unexpected scalars %#v", target.state.Scalars)
	}
	if diff := cmp.Diff([]string{"Site name", "Site location"}, driver.prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestEditConsumables(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{
		confirm: []bool{true, false},
		// butane size, hatlon unit
		selectIdx: []int{0, 1},
		inputs: []string{
			"20",  // brazing rods
			"2",   // butane qty
			"15",  // drain heater
			"30",  // hatlon length
			"0",   // monsoon tape length
			"0",   // monsoon tape qty
			"1",   // teflon
			"0",   // tarfelt length
			"0",   // tarfelt qty
			"0",   // liquid puff
			"0",   // wire tape length
			"0",   // wire tape qty
			"50",  // cable ties
			"0",   // cable tray
			"0",   // casing patti
			"0",   // clam patti
			"0",   // asbestos rope
			"0",   // expansion wall
			"2",   // oxygen
			"1",   // nitrogen
			"R32", // ac gas
		},
	}
	target := newTarget()
	if err := newEditor(t, driver).EditSection(context.Background(), target, SectionConsumables); err != nil {
		t.Fatalf("edit consumables: %v", err)
	}

	s := target.state.Scalars
	if !s.FlaringTool || s.BrazingRods != 20 || s.ButaneSize != inventory.ButaneSmall || s.ButaneQty != 2 {
		t.Fatalf("unexpected tools %#v", s)
	}
	if s.HatlonUnit != inventory.UnitMeter || !s.HatlonLength.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("unexpected hatlon %s %q", s.HatlonLength, s.HatlonUnit)
	}
	if s.CableTies != 50 || s.OxygenCylinders != 2 || s.NitrogenCylinders != 1 || s.ACGas != "R32" {
		t.Fatalf("unexpected materials %#v", s)
	}
	if target.scalars != 1 {
		t.Fatalf("expected one scalar update, got %d", target.scalars)
	}
}

func TestRun_LoopsUntilDone(t *testing.T) {
	t.Parallel()

	done := len(Sections())
	driver := &stubDriver{
		selectIdx: []int{5, done},
		multiIdx:  [][]int{{4}},
		inputs:    []string{"9"},
	}
	target := newTarget()
	if err := newEditor(t, driver).Run(context.Background(), target); err != nil {
		t.Fatalf("run: %v", err)
	}
	if target.state.Nuts[4].Quantity != 9 {
		t.Fatalf("expected nut update, got %#v", target.state.Nuts[4])
	}
}

func TestEditSection_Errors(t *testing.T) {
	t.Parallel()

	e := newEditor(t, &stubDriver{})
	if err := e.EditSection(context.Background(), newTarget(), "valves"); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
	if err := e.Run(context.Background(), nil); !errors.Is(err, ErrNilTarget) {
		t.Fatalf("expected ErrNilTarget, got %v", err)
	}
}

package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// New returns the default aggregate: one unselected, zero-quantity entry per
// catalog key, in catalog order, and zero-valued scalars.
func New() *State {
	s := &State{
		Pipes:      make([]PipeEntry, 0, len(pipeSizes)),
		DrainPipes: make([]DrainPipeEntry, 0, len(drainPipeTypes)),
		Insulation: make([]InsulationEntry, 0, len(pipeSizes)),
		Fittings:   make([]FittingEntry, 0, len(fittingSizes)),
		Nuts:       make([]NutEntry, 0, len(nutSizes)),
		Wires:      make([]WireEntry, 0, len(wireSizes)),
	}
	for _, size := range pipeSizes {
		s.Pipes = append(s.Pipes, PipeEntry{Size: size, Type: PipeSoft, Unit: UnitFeet})
		s.Insulation = append(s.Insulation, InsulationEntry{Size: size, Unit: UnitFeet})
	}
	for _, t := range drainPipeTypes {
		s.DrainPipes = append(s.DrainPipes, DrainPipeEntry{Type: t, Unit: UnitFeet})
	}
	for _, size := range fittingSizes {
		s.Fittings = append(s.Fittings, FittingEntry{Size: size})
	}
	for _, size := range nutSizes {
		s.Nuts = append(s.Nuts, NutEntry{Size: size})
	}
	for _, size := range wireSizes {
		s.Wires = append(s.Wires, WireEntry{Size: size, Cores: defaultWireCores})
	}
	return s
}

// Len reports the number of entries in a catalog.
func (s *State) Len(c Catalog) int {
	if s == nil {
		return 0
	}
	switch c {
	case CatalogPipes:
		return len(s.Pipes)
	case CatalogInsulation:
		return len(s.Insulation)
	case CatalogFittings:
		return len(s.Fittings)
	case CatalogNuts:
		return len(s.Nuts)
	case CatalogWires:
		return len(s.Wires)
	case CatalogDrainPipes:
		return len(s.DrainPipes)
	default:
		return 0
	}
}

// WithScalars returns a copy of s with the scalar fields replaced. Catalogs
// are shared with s since neither snapshot mutates them.
func (s *State) WithScalars(scalars Scalars) *State {
	next := s.shallow()
	next.Scalars = scalars
	return next
}

// WithPipe replaces the pipe entry at index.
func (s *State) WithPipe(index int, entry PipeEntry) (*State, error) {
	if s == nil {
		return nil, ErrNilState
	}
	if err := checkSlot(CatalogPipes, index, len(s.Pipes)); err != nil {
		return nil, err
	}
	if entry.Size != s.Pipes[index].Size {
		return nil, sizeMismatch(CatalogPipes, index, s.Pipes[index].Size, entry.Size)
	}
	next := s.shallow()
	next.Pipes = replaceAt(s.Pipes, index, entry)
	return next, nil
}

// WithInsulation replaces the insulation entry at index.
func (s *State) WithInsulation(index int, entry InsulationEntry) (*State, error) {
	if s == nil {
		return nil, ErrNilState
	}
	if err := checkSlot(CatalogInsulation, index, len(s.Insulation)); err != nil {
		return nil, err
	}
	if entry.Size != s.Insulation[index].Size {
		return nil, sizeMismatch(CatalogInsulation, index, s.Insulation[index].Size, entry.Size)
	}
	next := s.shallow()
	next.Insulation = replaceAt(s.Insulation, index, entry)
	return next, nil
}

// WithFitting replaces the fitting entry at index.
func (s *State) WithFitting(index int, entry FittingEntry) (*State, error) {
	if s == nil {
		return nil, ErrNilState
	}
	if err := checkSlot(CatalogFittings, index, len(s.Fittings)); err != nil {
		return nil, err
	}
	if entry.Size != s.Fittings[index].Size {
		return nil, sizeMismatch(CatalogFittings, index, s.Fittings[index].Size, entry.Size)
	}
	next := s.shallow()
	next.Fittings = replaceAt(s.Fittings, index, entry)
	return next, nil
}

// WithNut replaces the flare nut entry at index.
func (s *State) WithNut(index int, entry NutEntry) (*State, error) {
	if s == nil {
		return nil, ErrNilState
	}
	if err := checkSlot(CatalogNuts, index, len(s.Nuts)); err != nil {
		return nil, err
	}
	if entry.Size != s.Nuts[index].Size {
		return nil, sizeMismatch(CatalogNuts, index, s.Nuts[index].Size, entry.Size)
	}
	next := s.shallow()
	next.Nuts = replaceAt(s.Nuts, index, entry)
	return next, nil
}

// WithWire replaces the wire entry at index.
func (s *State) WithWire(index int, entry WireEntry) (*State, error) {
	if s == nil {
		return nil, ErrNilState
	}
	if err := checkSlot(CatalogWires, index, len(s.Wires)); err != nil {
		return nil, err
	}
	if entry.Size != s.Wires[index].Size {
		return nil, sizeMismatch(CatalogWires, index, s.Wires[index].Size, entry.Size)
	}
	next := s.shallow()
	next.Wires = replaceAt(s.Wires, index, entry)
	return next, nil
}

// WithDrainPipe replaces the drain pipe entry at index.
func (s *State) WithDrainPipe(index int, entry DrainPipeEntry) (*State, error) {
	if s == nil {
		return nil, ErrNilState
	}
	if err := checkSlot(CatalogDrainPipes, index, len(s.DrainPipes)); err != nil {
		return nil, err
	}
	if entry.Type != s.DrainPipes[index].Type {
		return nil, sizeMismatch(CatalogDrainPipes, index, string(s.DrainPipes[index].Type), string(entry.Type))
	}
	next := s.shallow()
	next.DrainPipes = replaceAt(s.DrainPipes, index, entry)
	return next, nil
}

// WithEntry replaces one entry of the named catalog. entry must be the
// catalog's record type (PipeEntry for pipes, and so on).
func (s *State) WithEntry(c Catalog, index int, entry any) (*State, error) {
	switch c {
	case CatalogPipes:
		e, ok := entry.(PipeEntry)
		if !ok {
			return nil, entryType(c, entry)
		}
		return s.WithPipe(index, e)
	case CatalogInsulation:
		e, ok := entry.(InsulationEntry)
		if !ok {
			return nil, entryType(c, entry)
		}
		return s.WithInsulation(index, e)
	case CatalogFittings:
		e, ok := entry.(FittingEntry)
		if !ok {
			return nil, entryType(c, entry)
		}
		return s.WithFitting(index, e)
	case CatalogNuts:
		e, ok := entry.(NutEntry)
		if !ok {
			return nil, entryType(c, entry)
		}
		return s.WithNut(index, e)
	case CatalogWires:
		e, ok := entry.(WireEntry)
		if !ok {
			return nil, entryType(c, entry)
		}
		return s.WithWire(index, e)
	case CatalogDrainPipes:
		e, ok := entry.(DrainPipeEntry)
		if !ok {
			return nil, entryType(c, entry)
		}
		return s.WithDrainPipe(index, e)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, c)
	}
}

// Entry returns the entry at index of the named catalog as its record type.
func (s *State) Entry(c Catalog, index int) (any, error) {
	if s == nil {
		return nil, ErrNilState
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, c)
	}
	if err := checkSlot(c, index, s.Len(c)); err != nil {
		return nil, err
	}
	switch c {
	case CatalogPipes:
		return s.Pipes[index], nil
	case CatalogInsulation:
		return s.Insulation[index], nil
	case CatalogFittings:
		return s.Fittings[index], nil
	case CatalogNuts:
		return s.Nuts[index], nil
	case CatalogWires:
		return s.Wires[index], nil
	default:
		return s.DrainPipes[index], nil
	}
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	next := *s
	next.Pipes = append([]PipeEntry(nil), s.Pipes...)
	next.DrainPipes = append([]DrainPipeEntry(nil), s.DrainPipes...)
	next.Insulation = append([]InsulationEntry(nil), s.Insulation...)
	next.Fittings = append([]FittingEntry(nil), s.Fittings...)
	next.Nuts = append([]NutEntry(nil), s.Nuts...)
	next.Wires = append([]WireEntry(nil), s.Wires...)
	return &next
}

// Equal reports whether two aggregates hold the same content.
func (s *State) Equal(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	if !s.Scalars.Equal(other.Scalars) {
		return false
	}
	return equalSlices(s.Pipes, other.Pipes, func(a, b PipeEntry) bool { return a == b }) &&
		equalSlices(s.DrainPipes, other.DrainPipes, func(a, b DrainPipeEntry) bool { return a == b }) &&
		equalSlices(s.Insulation, other.Insulation, func(a, b InsulationEntry) bool { return a.Equal(b) }) &&
		equalSlices(s.Fittings, other.Fittings, func(a, b FittingEntry) bool { return a == b }) &&
		equalSlices(s.Nuts, other.Nuts, func(a, b NutEntry) bool { return a == b }) &&
		equalSlices(s.Wires, other.Wires, func(a, b WireEntry) bool { return a.Equal(b) })
}

// Equal compares insulation entries by value.
func (e InsulationEntry) Equal(other InsulationEntry) bool {
	return e.Size == other.Size &&
		e.Volume.Equal(other.Volume) &&
		e.Length.Equal(other.Length) &&
		e.Unit == other.Unit &&
		e.Selected == other.Selected
}

// Equal compares wire entries by value.
func (e WireEntry) Equal(other WireEntry) bool {
	return e.Size == other.Size &&
		e.Length.Equal(other.Length) &&
		e.Cores == other.Cores &&
		e.Selected == other.Selected
}

// Equal compares scalar fields by value.
func (s Scalars) Equal(other Scalars) bool {
	a, b := s, other
	lengths := []struct{ x, y *decimal.Decimal }{
		{&a.DrainHeaterLength, &b.DrainHeaterLength},
		{&a.HatlonLength, &b.HatlonLength},
		{&a.MonsoonTapeLength, &b.MonsoonTapeLength},
		{&a.TarfeltLength, &b.TarfeltLength},
		{&a.WireTapeLength, &b.WireTapeLength},
	}
	for _, pair := range lengths {
		if !pair.x.Equal(*pair.y) {
			return false
		}
		*pair.x, *pair.y = decimal.Zero, decimal.Zero
	}
	return a == b
}

func (s *State) shallow() *State {
	if s == nil {
		return New()
	}
	next := *s
	return &next
}

func replaceAt[T any](entries []T, index int, entry T) []T {
	out := make([]T, len(entries))
	copy(out, entries)
	out[index] = entry
	return out
}

func equalSlices[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

func checkSlot(c Catalog, index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %s[%d] (len %d)", ErrIndexOutOfRange, c, index, length)
	}
	return nil
}

func sizeMismatch(c Catalog, index int, want, got string) error {
	return fmt.Errorf("%w: %s[%d] is %q, got %q", ErrSizeMismatch, c, index, want, got)
}

func entryType(c Catalog, entry any) error {
	return fmt.Errorf("%w: %s does not accept %T", ErrEntryType, c, entry)
}

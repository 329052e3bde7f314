package inventory

// HasContent reports whether the pipe is selected with a positive quantity.
func (e PipeEntry) HasContent() bool {
	return e.Selected && e.Quantity > 0
}

// HasContent reports whether the insulation is selected with a positive
// volume or length.
func (e InsulationEntry) HasContent() bool {
	return e.Selected && (e.Volume.IsPositive() || e.Length.IsPositive())
}

// HasContent reports whether the fitting is selected with elbows or couplings.
func (e FittingEntry) HasContent() bool {
	return e.Selected && (e.ElbowQty > 0 || e.CouplingQty > 0)
}

// HasContent reports whether the nut is selected with a positive quantity.
func (e NutEntry) HasContent() bool {
	return e.Selected && e.Quantity > 0
}

// HasContent reports whether the wire is selected with a positive length.
func (e WireEntry) HasContent() bool {
	return e.Selected && e.Length.IsPositive()
}

// HasContent reports whether the drain pipe is selected with any positive
// fitting or solvent quantity.
func (e DrainPipeEntry) HasContent() bool {
	return e.Selected && (e.ElbowQty > 0 || e.CouplingQty > 0 || e.SolventQty > 0)
}

// SelectedCount counts selected entries of a catalog whether or not they
// carry quantities. It backs the "N selected" badge on section editors.
func (s *State) SelectedCount(c Catalog) int {
	if s == nil {
		return 0
	}
	n := 0
	switch c {
	case CatalogPipes:
		for _, e := range s.Pipes {
			if e.Selected {
				n++
			}
		}
	case CatalogInsulation:
		for _, e := range s.Insulation {
			if e.Selected {
				n++
			}
		}
	case CatalogFittings:
		for _, e := range s.Fittings {
			if e.Selected {
				n++
			}
		}
	case CatalogNuts:
		for _, e := range s.Nuts {
			if e.Selected {
				n++
			}
		}
	case CatalogWires:
		for _, e := range s.Wires {
			if e.Selected {
				n++
			}
		}
	case CatalogDrainPipes:
		for _, e := range s.DrainPipes {
			if e.Selected {
				n++
			}
		}
	}
	return n
}

// ContentCount counts entries of a catalog that pass the catalog's
// positivity predicate.
func (s *State) ContentCount(c Catalog) int {
	n := 0
	for i := 0; i < s.Len(c); i++ {
		if s.HasContent(c, i) {
			n++
		}
	}
	return n
}

// HasContent applies the positivity predicate to one entry. Out of range
// indices report false.
func (s *State) HasContent(c Catalog, index int) bool {
	if s == nil || index < 0 || index >= s.Len(c) {
		return false
	}
	switch c {
	case CatalogPipes:
		return s.Pipes[index].HasContent()
	case CatalogInsulation:
		return s.Insulation[index].HasContent()
	case CatalogFittings:
		return s.Fittings[index].HasContent()
	case CatalogNuts:
		return s.Nuts[index].HasContent()
	case CatalogWires:
		return s.Wires[index].HasContent()
	case CatalogDrainPipes:
		return s.DrainPipes[index].HasContent()
	default:
		return false
	}
}

// Selected reports the selected flag of one entry. Editors use it to decide
// whether quantity inputs are inert.
func (s *State) Selected(c Catalog, index int) bool {
	entry, err := s.Entry(c, index)
	if err != nil {
		return false
	}
	switch e := entry.(type) {
	case PipeEntry:
		return e.Selected
	case InsulationEntry:
		return e.Selected
	case FittingEntry:
		return e.Selected
	case NutEntry:
		return e.Selected
	case WireEntry:
		return e.Selected
	case DrainPipeEntry:
		return e.Selected
	default:
		return false
	}
}

package inventory

// Catalog names one fixed-length list of entries inside a State.
type Catalog string

const (
	CatalogPipes      Catalog = "pipes"
	CatalogInsulation Catalog = "insulation"
	CatalogFittings   Catalog = "fittings"
	CatalogNuts       Catalog = "nuts"
	CatalogWires      Catalog = "wires"
	CatalogDrainPipes Catalog = "drainPipes"
)

var catalogs = []Catalog{
	CatalogPipes,
	CatalogInsulation,
	CatalogFittings,
	CatalogNuts,
	CatalogWires,
	CatalogDrainPipes,
}

// Catalogs returns every catalog in display order.
func Catalogs() []Catalog {
	return append([]Catalog(nil), catalogs...)
}

// Valid reports whether c names a known catalog.
func (c Catalog) Valid() bool {
	for _, known := range catalogs {
		if c == known {
			return true
		}
	}
	return false
}

var (
	pipeSizes    = []string{"1/4", "3/8", "1/2", "5/8", "3/4", "7/8", "1 1/8", "1 3/8", "1 5/8"}
	fittingSizes = []string{"1/4", "3/8", "1/2", "5/8", "3/4"}
	nutSizes     = []string{"1/4", "3/8", "1/2", "5/8", "3/4"}
	wireSizes    = []string{"0.5", "1", "1.5", "2.5", "4.0", "6.0"}
)

// PipeSizes lists copper pipe sizes in inches. Insulation shares the list.
func PipeSizes() []string { return append([]string(nil), pipeSizes...) }

// FittingSizes lists elbow/coupling fitting sizes in inches.
func FittingSizes() []string { return append([]string(nil), fittingSizes...) }

// NutSizes lists flare nut sizes in inches.
func NutSizes() []string { return append([]string(nil), nutSizes...) }

// WireSizes lists wire cross sections in square millimetres.
func WireSizes() []string { return append([]string(nil), wireSizes...) }

// Keys returns the ordered size (or type) labels a catalog is built from.
func Keys(c Catalog) ([]string, error) {
	switch c {
	case CatalogPipes, CatalogInsulation:
		return PipeSizes(), nil
	case CatalogFittings:
		return FittingSizes(), nil
	case CatalogNuts:
		return NutSizes(), nil
	case CatalogWires:
		return WireSizes(), nil
	case CatalogDrainPipes:
		out := make([]string, 0, len(drainPipeTypes))
		for _, t := range drainPipeTypes {
			out = append(out, string(t))
		}
		return out, nil
	default:
		return nil, ErrUnknownCatalog
	}
}

// PipeType is the temper of a copper pipe.
type PipeType string

const (
	PipeSoft PipeType = "Soft"
	PipeHard PipeType = "Hard"
)

// Unit is a length unit label. The empty unit means "unset" and is only
// accepted by scalar fields such as the hatlon unit.
type Unit string

const (
	UnitUnset Unit = ""
	UnitFeet  Unit = "ft"
	UnitMeter Unit = "m"
)

// ButaneSize is the cylinder size for butane/LPG. Empty means unset.
type ButaneSize string

const (
	ButaneUnset ButaneSize = ""
	ButaneSmall ButaneSize = "Small"
	ButaneBig   ButaneSize = "Big"
)

// DrainPipeType keys the drain pipe catalog.
type DrainPipeType string

const (
	DrainCPVC DrainPipeType = "CPVC"
	DrainPVC  DrainPipeType = "PVC"
	DrainUPVC DrainPipeType = "UPVC"
)

var drainPipeTypes = []DrainPipeType{DrainCPVC, DrainPVC, DrainUPVC}

// WireCoreChoices are the core counts offered by the wire editor. The rule
// table accepts the wider 1..8 range.
var WireCoreChoices = []int{2, 4, 6}

const defaultWireCores = 2

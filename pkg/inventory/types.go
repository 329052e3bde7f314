package inventory

import "github.com/shopspring/decimal"

// PipeEntry is one copper pipe size.
type PipeEntry struct {
	Size     string   `json:"size" yaml:"size"`
	Quantity int      `json:"quantity" yaml:"quantity"`
	Type     PipeType `json:"type" yaml:"type"`
	Unit     Unit     `json:"unit" yaml:"unit"`
	Selected bool     `json:"selected" yaml:"selected"`
}

// InsulationEntry is insulation for one pipe size. Volume is the wall
// thickness in millimetres.
type InsulationEntry struct {
	Size     string          `json:"size" yaml:"size"`
	Volume   decimal.Decimal `json:"volume" yaml:"volume"`
	Length   decimal.Decimal `json:"length" yaml:"length"`
	Unit     Unit            `json:"unit" yaml:"unit"`
	Selected bool            `json:"selected" yaml:"selected"`
}

// FittingEntry counts elbows and couplings for one size. The feet flags only
// affect how quantities are labelled in editors.
type FittingEntry struct {
	Size         string `json:"size" yaml:"size"`
	ElbowQty     int    `json:"elbowQty" yaml:"elbowQty"`
	CouplingQty  int    `json:"couplingQty" yaml:"couplingQty"`
	ElbowFeet    bool   `json:"elbowFeet" yaml:"elbowFeet"`
	CouplingFeet bool   `json:"couplingFeet" yaml:"couplingFeet"`
	Selected     bool   `json:"selected" yaml:"selected"`
}

// NutEntry counts flare nuts for one size.
type NutEntry struct {
	Size     string `json:"size" yaml:"size"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Selected bool   `json:"selected" yaml:"selected"`
}

// WireEntry is one wire cross section.
type WireEntry struct {
	Size     string          `json:"size" yaml:"size"`
	Length   decimal.Decimal `json:"length" yaml:"length"`
	Cores    int             `json:"cores" yaml:"cores"`
	Selected bool            `json:"selected" yaml:"selected"`
}

// DrainPipeEntry is one drain pipe material with its fittings and solvent.
type DrainPipeEntry struct {
	Type        DrainPipeType `json:"type" yaml:"type"`
	ElbowQty    int           `json:"elbowQty" yaml:"elbowQty"`
	CouplingQty int           `json:"couplingQty" yaml:"couplingQty"`
	SolventQty  int           `json:"solventQty" yaml:"solventQty"`
	Unit        Unit          `json:"unit" yaml:"unit"`
	Selected    bool          `json:"selected" yaml:"selected"`
}

// Scalars groups the site details and single-value consumables.
type Scalars struct {
	SiteName     string `json:"siteName" yaml:"siteName"`
	SiteLocation string `json:"siteLocation" yaml:"siteLocation"`

	FlaringTool bool `json:"flaringTool" yaml:"flaringTool"`
	BrazingRods int  `json:"brazingRods" yaml:"brazingRods"`

	ButaneSize ButaneSize `json:"butaneSize" yaml:"butaneSize"`
	ButaneQty  int        `json:"butaneQty" yaml:"butaneQty"`

	DrainHeaterLength decimal.Decimal `json:"drainHeaterLength" yaml:"drainHeaterLength"`
	HatlonLength      decimal.Decimal `json:"hatlonLength" yaml:"hatlonLength"`
	HatlonUnit        Unit            `json:"hatlonUnit" yaml:"hatlonUnit"`

	MonsoonTapeLength decimal.Decimal `json:"monsoonTapeLength" yaml:"monsoonTapeLength"`
	MonsoonTapeQty    int             `json:"monsoonTapeQty" yaml:"monsoonTapeQty"`
	TeflonTapeQty     int             `json:"teflonTapeQty" yaml:"teflonTapeQty"`
	TarfeltLength     decimal.Decimal `json:"tarfeltLength" yaml:"tarfeltLength"`
	TarfeltQty        int             `json:"tarfeltQty" yaml:"tarfeltQty"`
	LiquidPuffQty     int             `json:"liquidPuffQty" yaml:"liquidPuffQty"`
	WireTapeLength    decimal.Decimal `json:"wireTapeLength" yaml:"wireTapeLength"`
	WireTapeQty       int             `json:"wireTapeQty" yaml:"wireTapeQty"`

	CableTies         int  `json:"cableTies" yaml:"cableTies"`
	CableTray         int  `json:"cableTray" yaml:"cableTray"`
	CasingPatti       int  `json:"casingPatti" yaml:"casingPatti"`
	ClamPatti         int  `json:"clamPatti" yaml:"clamPatti"`
	AsbestosRopeQty   int  `json:"asbestosRopeQty" yaml:"asbestosRopeQty"`
	AsbestosRopeMeter bool `json:"asbestosRopeMeter" yaml:"asbestosRopeMeter"`
	ExpansionWall     int  `json:"expansionWall" yaml:"expansionWall"`

	OxygenCylinders   int    `json:"oxygenCylinders" yaml:"oxygenCylinders"`
	NitrogenCylinders int    `json:"nitrogenCylinders" yaml:"nitrogenCylinders"`
	ACGas             string `json:"acGas" yaml:"acGas"`
}

// State is the aggregate for one form session.
type State struct {
	Scalars `yaml:",inline"`

	Pipes      []PipeEntry       `json:"pipes" yaml:"pipes"`
	DrainPipes []DrainPipeEntry  `json:"drainPipes" yaml:"drainPipes"`
	Insulation []InsulationEntry `json:"insulation" yaml:"insulation"`
	Fittings   []FittingEntry    `json:"fittings" yaml:"fittings"`
	Nuts       []NutEntry        `json:"nuts" yaml:"nuts"`
	Wires      []WireEntry       `json:"wires" yaml:"wires"`
}

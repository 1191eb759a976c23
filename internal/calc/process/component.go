package process

import (
	"errors"
	"fmt"
)

var ErrUnknownComponent = errors.New("no molecular weight for component")

type Species int

const (
	Acetone Species = iota
	Hydrogen
	IPA
	Water

	numSpecies
)

var speciesNames = [numSpecies]string{
	Acetone:  "Acetone",
	Hydrogen: "Hydrogen",
	IPA:      "Isopropyl Alcohol",
	Water:    "Water",
}

func (s Species) String() string {
	if s < 0 || s >= numSpecies {
		return fmt.Sprintf("Species(%d)", int(s))
	}
	return speciesNames[s]
}

// Phase qualifies a species when liquid and vapor are accounted separately.
// Bulk means the molar total without a phase tag.
type Phase int

const (
	Bulk Phase = iota
	Liquid
	Vapor
)

// Component is the key of every flow vector.
type Component struct {
	Species Species
	Phase   Phase
}

var (
	CompAcetone  = Component{Species: Acetone}
	CompHydrogen = Component{Species: Hydrogen}
	CompIPA      = Component{Species: IPA}
	CompWater    = Component{Species: Water}
	CompWaterL   = Component{Species: Water, Phase: Liquid}
	CompWaterV   = Component{Species: Water, Phase: Vapor}
)

// String returns the display label, e.g. "Water(l)".
func (c Component) String() string {
	switch c.Phase {
	case Liquid:
		return c.Species.String() + "(l)"
	case Vapor:
		return c.Species.String() + "(v)"
	}
	return c.Species.String()
}

func (c Component) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// kg/kmol
var molecularWeights = map[Component]float64{
	CompIPA:      60.1,
	CompWater:    18.02,
	CompWaterV:   18.02,
	CompWaterL:   18.02,
	CompAcetone:  58.08,
	CompHydrogen: 1.01,
}

func MolarMass(c Component) (float64, error) {
	mw, ok := molecularWeights[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownComponent, c)
	}
	return mw, nil
}

// ToMass converts a kmol/hr vector into kg/hr. Values are not rounded.
func ToMass(v Vector) (Vector, error) {
	out := make(Vector, 0, len(v))
	for _, e := range v {
		mw, err := MolarMass(e.Component)
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Component: e.Component, Value: e.Value * mw})
	}
	return out, nil
}

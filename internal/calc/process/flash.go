package process

// FlashParams are the design constants of the flash drum. Y and X are the
// vapor and liquid mole fractions per species.
type FlashParams struct {
	VaporFraction float64
	Y             [numSpecies]float64
	X             [numSpecies]float64
	LossFraction  float64
}

var DefaultFlash = FlashParams{
	VaporFraction: 0.2,
	Y: [numSpecies]float64{
		Acetone:  0.81,
		Water:    0.13,
		Hydrogen: 1.0,
		IPA:      0.03,
	},
	X: [numSpecies]float64{
		Acetone:  0.55,
		Water:    0.38,
		Hydrogen: 0.0,
		IPA:      0.08,
	},
	LossFraction: 0.01,
}

type Flash struct {
	Input  Vector `json:"input"`
	Vapor  Vector `json:"vapor"`
	Liquid Vector `json:"liquid"`
	Losses Vector `json:"losses"`
}

// FlashSplit splits every component of in against totalFeed, the reactor
// feed total, not the sum of in. Hydrogen is non-condensable and is split
// against its own inlet flow.
func FlashSplit(in Vector, totalFeed float64, p FlashParams) Flash {
	out := Flash{
		Input:  in,
		Vapor:  make(Vector, 0, len(in)),
		Liquid: make(Vector, 0, len(in)),
		Losses: make(Vector, 0, len(in)),
	}
	for _, e := range in {
		vapor, liquid, loss := flashComponent(e, totalFeed, p)
		out.Vapor = append(out.Vapor, Entry{e.Component, vapor})
		out.Liquid = append(out.Liquid, Entry{e.Component, liquid})
		out.Losses = append(out.Losses, Entry{e.Component, loss})
	}
	return out
}

func flashComponent(e Entry, totalFeed float64, p FlashParams) (vapor, liquid, loss float64) {
	if e.Component.Species == Hydrogen {
		return Round2(e.Value * (1 - p.LossFraction)), 0, Round2(e.Value * p.LossFraction)
	}
	vf := p.VaporFraction
	y := p.Y[e.Component.Species]
	x := p.X[e.Component.Species]

	vapor = totalFeed * vf * y * (1 - p.LossFraction)
	liquid = totalFeed * (1 - vf) * x * (1 - p.LossFraction)
	// explicit conversions keep the products from being fused
	loss = totalFeed * (float64(vf*y) + float64((1-vf)*x)) * p.LossFraction
	return Round2(vapor), Round2(liquid), Round2(loss)
}

package process

// Single-pass dehydrogenation: IPA -> acetone + H2.
type ReactorParams struct {
	Conversion  float64
	Unconverted float64
}

var DefaultReactor = ReactorParams{Conversion: 0.9, Unconverted: 0.1}

type Reactor struct {
	Input  Vector `json:"input"`
	Output Vector `json:"output"`
}

// React applies the fixed conversion to the drum outlet. Water is inert.
func React(ipaFeed, waterFeed float64, p ReactorParams) Reactor {
	return Reactor{
		Input: Vector{
			{CompIPA, ipaFeed},
			{CompWaterL, waterFeed},
		},
		Output: Vector{
			{CompAcetone, Round2(p.Conversion * ipaFeed)},
			{CompHydrogen, Round2(p.Conversion * ipaFeed)},
			{CompIPA, Round2(p.Unconverted * ipaFeed)},
			{CompWaterL, waterFeed},
		},
	}
}

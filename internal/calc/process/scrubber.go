package process

// ScrubberParams give the absorbent water rate as M*A times the vapor feed.
type ScrubberParams struct {
	M float64
	A float64
}

var DefaultScrubber = ScrubberParams{M: 1.44, A: 3.52}

type Scrubber struct {
	Input  Vector `json:"input"`
	Offgas Vector `json:"offgas"`
	Liquid Vector `json:"liquid"`
	Losses Vector `json:"losses"`
}

// Scrub absorbs the flash vapor into injected water. Acetone leaves in the
// offgas at one part per thousand; hydrogen is never absorbed; IPA and
// water are fully absorbed. One percent of each species is lost.
func Scrub(vapor Vector, p ScrubberParams) Scrubber {
	waterLiquid := Round2(p.M * p.A * vapor.Total())

	acetone := vapor.Get(CompAcetone)
	hydrogen := vapor.Get(CompHydrogen)
	ipa := vapor.Get(CompIPA)
	waterVapor := vapor.Get(CompWater)
	water := Round2(waterVapor + waterLiquid)

	return Scrubber{
		Input: Vector{
			{CompAcetone, acetone},
			{CompHydrogen, hydrogen},
			{CompIPA, ipa},
			{CompWaterV, waterVapor},
			{CompWaterL, waterLiquid},
		},
		Offgas: Vector{
			{CompAcetone, Round2((acetone / 1000) * 0.99)},
			{CompHydrogen, Round2(hydrogen * 0.99)},
			{CompIPA, 0},
			{CompWater, 0},
		},
		Liquid: Vector{
			{CompAcetone, Round2((acetone - acetone/1000) * 0.99)},
			{CompHydrogen, 0},
			{CompIPA, Round2(ipa * 0.99)},
			{CompWaterL, Round2(water * 0.99)},
		},
		Losses: Vector{
			{CompAcetone, Round2(acetone * 0.01)},
			{CompHydrogen, Round2(hydrogen * 0.01)},
			{CompIPA, Round2(ipa * 0.01)},
			{CompWater, Round2(water * 0.01)},
		},
	}
}

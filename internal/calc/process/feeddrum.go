package process

// FeedDrumInput holds the four inlet streams of the feed drum in kmol/hr.
type FeedDrumInput struct {
	IPARecycle   float64 `json:"Isopropyl Alcohol (Recycle)"`
	WaterRecycle float64 `json:"Water (Recycle)"`
	IPAMakeup    float64 `json:"Isopropyl Alcohol (Makeup)"`
	WaterMakeup  float64 `json:"Water (Makeup)"`
}

// Mass returns the same streams in kg/hr.
func (in FeedDrumInput) Mass() (FeedDrumInput, error) {
	ipa, err := MolarMass(CompIPA)
	if err != nil {
		return FeedDrumInput{}, err
	}
	water, err := MolarMass(CompWater)
	if err != nil {
		return FeedDrumInput{}, err
	}
	return FeedDrumInput{
		IPARecycle:   in.IPARecycle * ipa,
		WaterRecycle: in.WaterRecycle * water,
		IPAMakeup:    in.IPAMakeup * ipa,
		WaterMakeup:  in.WaterMakeup * water,
	}, nil
}

type FeedDrum struct {
	Input  FeedDrumInput `json:"input"`
	Output Vector        `json:"output"`
	Losses Vector        `json:"losses"`
}

// FeedDrumSplit mixes recycle and makeup per component. The drum has no
// loss model.
func FeedDrumSplit(ipaRecycle, waterRecycle, ipaMakeup, waterMakeup float64) FeedDrum {
	return FeedDrum{
		Input: FeedDrumInput{
			IPARecycle:   Round2(ipaRecycle),
			WaterRecycle: Round2(waterRecycle),
			IPAMakeup:    Round2(ipaMakeup),
			WaterMakeup:  Round2(waterMakeup),
		},
		Output: Vector{
			{CompIPA, Round2(ipaRecycle + ipaMakeup)},
			{CompWater, Round2(waterRecycle + waterMakeup)},
		},
		Losses: Vector{
			{CompIPA, 0},
			{CompWater, 0},
		},
	}
}

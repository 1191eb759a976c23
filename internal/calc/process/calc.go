package process

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var ErrInvalidFeed = errors.New("reactor feed must be a finite positive number")

// Feed split of the total reactor feed.
const (
	ipaFeedFraction   = 0.67
	waterFeedFraction = 0.33
)

type Input struct {
	ReactorFeed float64 `json:"reactor_feed_kmol_hr"`
}

type FeedComposition struct {
	IPA   float64 `json:"ipa"`
	Water float64 `json:"water"`
}

type AcetoneProduced struct {
	AcetoneColumnDistillate float64 `json:"acetone_column_distillate"`
	IPAColumnDistillate     float64 `json:"ipa_column_distillate"`
	Total                   float64 `json:"total"`
}

type Result struct {
	ReactorFeed     float64         `json:"reactor_feed_kmol_hr"`
	FeedComposition FeedComposition `json:"feed_composition"`
	FeedDrum        FeedDrum        `json:"feed_drum"`
	Reactor         Reactor         `json:"reactor"`
	Flash           Flash           `json:"flash"`
	Scrubber        Scrubber        `json:"scrubber"`
	AcetoneColumn   Column          `json:"acetone_column"`
	IPAColumn       Column          `json:"ipa_column"`
	AcetoneProduced AcetoneProduced `json:"acetone_produced"`

	// Reference data, copied per result.
	HeatBalance           HeatBalance       `json:"heat_balance"`
	EnergyBalance         EnergyBalance     `json:"energy_balance"`
	DetailedHeatBalance   []EquipmentHeat   `json:"detailed_heat_balance"`
	DetailedEnergyBalance []EquipmentEnergy `json:"detailed_energy_balance"`
}

// Calculate runs the plant once for the given total reactor feed in kmol/hr:
// feed drum, reactor, flash, scrubber, acetone column, IPA column.
func Calculate(in Input) (Result, error) {
	feed := in.ReactorFeed
	if math.IsNaN(feed) || math.IsInf(feed, 0) || feed <= 0 {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidFeed, feed)
	}

	comp := FeedComposition{
		IPA:   Round2(ipaFeedFraction * feed),
		Water: Round2(waterFeedFraction * feed),
	}

	// No recycle loop is closed; the drum sees makeup only.
	drum := FeedDrumSplit(0, 0, comp.IPA, comp.Water)
	reactor := React(drum.Output.Get(CompIPA), drum.Output.Get(CompWater), DefaultReactor)

	flashIn := Vector{
		{CompAcetone, reactor.Output.Get(CompAcetone)},
		{CompHydrogen, reactor.Output.Get(CompHydrogen)},
		{CompIPA, reactor.Output.Get(CompIPA)},
		{CompWater, reactor.Output.Get(CompWaterL)},
	}
	flash := FlashSplit(flashIn, feed, DefaultFlash)
	scrubber := Scrub(flash.Vapor, DefaultScrubber)

	acetoneCol := Distill(combineLiquids(flash.Liquid, scrubber.Liquid), AcetoneColumnSpec)
	ipaCol := Distill(slices.Clone(acetoneCol.Bottoms), IPAColumnSpec)

	hb, eb, heat, energy := referenceTables()

	fromAcetoneCol := acetoneCol.Distillate.Get(CompAcetone)
	fromIPACol := ipaCol.Distillate.Get(CompAcetone)

	return Result{
		ReactorFeed:     feed,
		FeedComposition: comp,
		FeedDrum:        drum,
		Reactor:         reactor,
		Flash:           flash,
		Scrubber:        scrubber,
		AcetoneColumn:   acetoneCol,
		IPAColumn:       ipaCol,
		AcetoneProduced: AcetoneProduced{
			AcetoneColumnDistillate: fromAcetoneCol,
			IPAColumnDistillate:     fromIPACol,
			Total:                   Round2(fromAcetoneCol + fromIPACol),
		},
		HeatBalance:           hb,
		EnergyBalance:         eb,
		DetailedHeatBalance:   heat,
		DetailedEnergyBalance: energy,
	}, nil
}

// combineLiquids builds the acetone column feed from the flash and scrubber
// liquids. Water is bulk in the flash and liquid-tagged in the scrubber.
func combineLiquids(flash, scrubber Vector) Vector {
	return Vector{
		{CompAcetone, Round2(flash.Get(CompAcetone) + scrubber.Get(CompAcetone))},
		{CompWater, Round2(flash.Get(CompWater) + scrubber.Get(CompWaterL))},
		{CompIPA, Round2(flash.Get(CompIPA) + scrubber.Get(CompIPA))},
	}
}

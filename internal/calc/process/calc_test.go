package process

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
)

type scenario struct {
	feed            float64
	acetoneTotal    float64
	acetoneColTotal float64
	ipaColTotal     float64
	vectors         map[string]string
}

// Reference balances for four feed rates.
var scenarios = []scenario{
	{
		feed:            100,
		acetoneTotal:    58.81,
		acetoneColTotal: 101.78,
		ipaColTotal:     196.23,
		vectors: map[string]string{
			"FeedDrum.Output":          `{"Isopropyl Alcohol":67,"Water":33}`,
			"FeedDrum.Losses":          `{"Isopropyl Alcohol":0,"Water":0}`,
			"Reactor.Input":            `{"Isopropyl Alcohol":67,"Water(l)":33}`,
			"Reactor.Output":           `{"Acetone":60.3,"Hydrogen":60.3,"Isopropyl Alcohol":6.7,"Water(l)":33}`,
			"Flash.Input":              `{"Acetone":60.3,"Hydrogen":60.3,"Isopropyl Alcohol":6.7,"Water":33}`,
			"Flash.Vapor":              `{"Acetone":16.04,"Hydrogen":59.7,"Isopropyl Alcohol":0.59,"Water":2.57}`,
			"Flash.Liquid":             `{"Acetone":43.56,"Hydrogen":0,"Isopropyl Alcohol":6.34,"Water":30.1}`,
			"Flash.Losses":             `{"Acetone":0.6,"Hydrogen":0.6,"Isopropyl Alcohol":0.07,"Water":0.33}`,
			"Scrubber.Input":           `{"Acetone":16.04,"Hydrogen":59.7,"Isopropyl Alcohol":0.59,"Water(v)":2.57,"Water(l)":399.93}`,
			"Scrubber.Offgas":          `{"Acetone":0.02,"Hydrogen":59.1,"Isopropyl Alcohol":0,"Water":0}`,
			"Scrubber.Liquid":          `{"Acetone":15.86,"Hydrogen":0,"Isopropyl Alcohol":0.58,"Water(l)":398.48}`,
			"Scrubber.Losses":          `{"Acetone":0.16,"Hydrogen":0.6,"Isopropyl Alcohol":0.01,"Water":4.03}`,
			"AcetoneColumn.Input":      `{"Acetone":59.42,"Water":428.58,"Isopropyl Alcohol":6.92}`,
			"AcetoneColumn.Distillate": `{"Acetone":58.23,"Water":42.86,"Isopropyl Alcohol":0.69}`,
			"AcetoneColumn.Bottoms":    `{"Acetone":0.59,"Water":381.44,"Isopropyl Alcohol":6.16}`,
			"AcetoneColumn.Losses":     `{"Acetone":0.59,"Water":4.29,"Isopropyl Alcohol":0.07}`,
			"IPAColumn.Input":          `{"Acetone":0.59,"Water":381.44,"Isopropyl Alcohol":6.16}`,
			"IPAColumn.Distillate":     `{"Acetone":0.58,"Isopropyl Alcohol":4.93,"Water":190.72}`,
			"IPAColumn.Bottoms":        `{"Acetone":0,"Isopropyl Alcohol":1.17,"Water":186.91}`,
			"IPAColumn.Losses":         `{"Acetone":0.01,"Isopropyl Alcohol":0.06,"Water":3.81}`,
		},
	},
	{
		feed:            37.3,
		acetoneTotal:    21.94,
		acetoneColTotal: 37.96,
		ipaColTotal:     73.2,
		vectors: map[string]string{
			"FeedDrum.Output":          `{"Isopropyl Alcohol":24.99,"Water":12.31}`,
			"FeedDrum.Losses":          `{"Isopropyl Alcohol":0,"Water":0}`,
			"Reactor.Input":            `{"Isopropyl Alcohol":24.99,"Water(l)":12.31}`,
			"Reactor.Output":           `{"Acetone":22.49,"Hydrogen":22.49,"Isopropyl Alcohol":2.5,"Water(l)":12.31}`,
			"Flash.Input":              `{"Acetone":22.49,"Hydrogen":22.49,"Isopropyl Alcohol":2.5,"Water":12.31}`,
			"Flash.Vapor":              `{"Acetone":5.98,"Hydrogen":22.27,"Isopropyl Alcohol":0.22,"Water":0.96}`,
			"Flash.Liquid":             `{"Acetone":16.25,"Hydrogen":0,"Isopropyl Alcohol":2.36,"Water":11.23}`,
			"Flash.Losses":             `{"Acetone":0.22,"Hydrogen":0.22,"Isopropyl Alcohol":0.03,"Water":0.12}`,
			"Scrubber.Input":           `{"Acetone":5.98,"Hydrogen":22.27,"Isopropyl Alcohol":0.22,"Water(v)":0.96,"Water(l)":149.17}`,
			"Scrubber.Offgas":          `{"Acetone":0.01,"Hydrogen":22.05,"Isopropyl Alcohol":0,"Water":0}`,
			"Scrubber.Liquid":          `{"Acetone":5.91,"Hydrogen":0,"Isopropyl Alcohol":0.22,"Water(l)":148.63}`,
			"Scrubber.Losses":          `{"Acetone":0.06,"Hydrogen":0.22,"Isopropyl Alcohol":0,"Water":1.5}`,
			"AcetoneColumn.Input":      `{"Acetone":22.16,"Water":159.86,"Isopropyl Alcohol":2.58}`,
			"AcetoneColumn.Distillate": `{"Acetone":21.72,"Water":15.99,"Isopropyl Alcohol":0.26}`,
			"AcetoneColumn.Bottoms":    `{"Acetone":0.22,"Water":142.28,"Isopropyl Alcohol":2.3}`,
			"AcetoneColumn.Losses":     `{"Acetone":0.22,"Water":1.6,"Isopropyl Alcohol":0.03}`,
			"IPAColumn.Input":          `{"Acetone":0.22,"Water":142.28,"Isopropyl Alcohol":2.3}`,
			"IPAColumn.Distillate":     `{"Acetone":0.22,"Isopropyl Alcohol":1.84,"Water":71.14}`,
			"IPAColumn.Bottoms":        `{"Acetone":0,"Isopropyl Alcohol":0.44,"Water":69.72}`,
			"IPAColumn.Losses":         `{"Acetone":0,"Isopropyl Alcohol":0.02,"Water":1.42}`,
		},
	},
	{
		feed:            250,
		acetoneTotal:    147.06,
		acetoneColTotal: 254.45,
		ipaColTotal:     490.57,
		vectors: map[string]string{
			"FeedDrum.Output":          `{"Isopropyl Alcohol":167.5,"Water":82.5}`,
			"FeedDrum.Losses":          `{"Isopropyl Alcohol":0,"Water":0}`,
			"Reactor.Input":            `{"Isopropyl Alcohol":167.5,"Water(l)":82.5}`,
			"Reactor.Output":           `{"Acetone":150.75,"Hydrogen":150.75,"Isopropyl Alcohol":16.75,"Water(l)":82.5}`,
			"Flash.Input":              `{"Acetone":150.75,"Hydrogen":150.75,"Isopropyl Alcohol":16.75,"Water":82.5}`,
			"Flash.Vapor":              `{"Acetone":40.09,"Hydrogen":149.24,"Isopropyl Alcohol":1.48,"Water":6.43}`,
			"Flash.Liquid":             `{"Acetone":108.9,"Hydrogen":0,"Isopropyl Alcohol":15.84,"Water":75.24}`,
			"Flash.Losses":             `{"Acetone":1.51,"Hydrogen":1.51,"Isopropyl Alcohol":0.18,"Water":0.83}`,
			"Scrubber.Input":           `{"Acetone":40.09,"Hydrogen":149.24,"Isopropyl Alcohol":1.48,"Water(v)":6.43,"Water(l)":999.77}`,
			"Scrubber.Offgas":          `{"Acetone":0.04,"Hydrogen":147.75,"Isopropyl Alcohol":0,"Water":0}`,
			"Scrubber.Liquid":          `{"Acetone":39.65,"Hydrogen":0,"Isopropyl Alcohol":1.47,"Water(l)":996.14}`,
			"Scrubber.Losses":          `{"Acetone":0.4,"Hydrogen":1.49,"Isopropyl Alcohol":0.01,"Water":10.06}`,
			"AcetoneColumn.Input":      `{"Acetone":148.55,"Water":1071.38,"Isopropyl Alcohol":17.31}`,
			"AcetoneColumn.Distillate": `{"Acetone":145.58,"Water":107.14,"Isopropyl Alcohol":1.73}`,
			"AcetoneColumn.Bottoms":    `{"Acetone":1.49,"Water":953.53,"Isopropyl Alcohol":15.41}`,
			"AcetoneColumn.Losses":     `{"Acetone":1.49,"Water":10.71,"Isopropyl Alcohol":0.17}`,
			"IPAColumn.Input":          `{"Acetone":1.49,"Water":953.53,"Isopropyl Alcohol":15.41}`,
			"IPAColumn.Distillate":     `{"Acetone":1.48,"Isopropyl Alcohol":12.33,"Water":476.76}`,
			"IPAColumn.Bottoms":        `{"Acetone":0,"Isopropyl Alcohol":2.93,"Water":467.23}`,
			"IPAColumn.Losses":         `{"Acetone":0.01,"Isopropyl Alcohol":0.15,"Water":9.54}`,
		},
	},
	{
		feed:            0.1,
		acetoneTotal:    0.06,
		acetoneColTotal: 0.1,
		ipaColTotal:     0.2,
		vectors: map[string]string{
			"FeedDrum.Output":          `{"Isopropyl Alcohol":0.07,"Water":0.03}`,
			"FeedDrum.Losses":          `{"Isopropyl Alcohol":0,"Water":0}`,
			"Reactor.Input":            `{"Isopropyl Alcohol":0.07,"Water(l)":0.03}`,
			"Reactor.Output":           `{"Acetone":0.06,"Hydrogen":0.06,"Isopropyl Alcohol":0.01,"Water(l)":0.03}`,
			"Flash.Input":              `{"Acetone":0.06,"Hydrogen":0.06,"Isopropyl Alcohol":0.01,"Water":0.03}`,
			"Flash.Vapor":              `{"Acetone":0.02,"Hydrogen":0.06,"Isopropyl Alcohol":0,"Water":0}`,
			"Flash.Liquid":             `{"Acetone":0.04,"Hydrogen":0,"Isopropyl Alcohol":0.01,"Water":0.03}`,
			"Flash.Losses":             `{"Acetone":0,"Hydrogen":0,"Isopropyl Alcohol":0,"Water":0}`,
			"Scrubber.Input":           `{"Acetone":0.02,"Hydrogen":0.06,"Isopropyl Alcohol":0,"Water(v)":0,"Water(l)":0.41}`,
			"Scrubber.Offgas":          `{"Acetone":0,"Hydrogen":0.06,"Isopropyl Alcohol":0,"Water":0}`,
			"Scrubber.Liquid":          `{"Acetone":0.02,"Hydrogen":0,"Isopropyl Alcohol":0,"Water(l)":0.41}`,
			"Scrubber.Losses":          `{"Acetone":0,"Hydrogen":0,"Isopropyl Alcohol":0,"Water":0}`,
			"AcetoneColumn.Input":      `{"Acetone":0.06,"Water":0.44,"Isopropyl Alcohol":0.01}`,
			"AcetoneColumn.Distillate": `{"Acetone":0.06,"Water":0.04,"Isopropyl Alcohol":0}`,
			"AcetoneColumn.Bottoms":    `{"Acetone":0,"Water":0.39,"Isopropyl Alcohol":0.01}`,
			"AcetoneColumn.Losses":     `{"Acetone":0,"Water":0,"Isopropyl Alcohol":0}`,
			"IPAColumn.Input":          `{"Acetone":0,"Water":0.39,"Isopropyl Alcohol":0.01}`,
			"IPAColumn.Distillate":     `{"Acetone":0,"Isopropyl Alcohol":0.01,"Water":0.2}`,
			"IPAColumn.Bottoms":        `{"Acetone":0,"Isopropyl Alcohol":0,"Water":0.19}`,
			"IPAColumn.Losses":         `{"Acetone":0,"Isopropyl Alcohol":0,"Water":0}`,
		},
	},
}

func vectorAt(r Result, path string) Vector {
	return map[string]Vector{
		"FeedDrum.Output":          r.FeedDrum.Output,
		"FeedDrum.Losses":          r.FeedDrum.Losses,
		"Reactor.Input":            r.Reactor.Input,
		"Reactor.Output":           r.Reactor.Output,
		"Flash.Input":              r.Flash.Input,
		"Flash.Vapor":              r.Flash.Vapor,
		"Flash.Liquid":             r.Flash.Liquid,
		"Flash.Losses":             r.Flash.Losses,
		"Scrubber.Input":           r.Scrubber.Input,
		"Scrubber.Offgas":          r.Scrubber.Offgas,
		"Scrubber.Liquid":          r.Scrubber.Liquid,
		"Scrubber.Losses":          r.Scrubber.Losses,
		"AcetoneColumn.Input":      r.AcetoneColumn.Input,
		"AcetoneColumn.Distillate": r.AcetoneColumn.Distillate,
		"AcetoneColumn.Bottoms":    r.AcetoneColumn.Bottoms,
		"AcetoneColumn.Losses":     r.AcetoneColumn.Losses,
		"IPAColumn.Input":          r.IPAColumn.Input,
		"IPAColumn.Distillate":     r.IPAColumn.Distillate,
		"IPAColumn.Bottoms":        r.IPAColumn.Bottoms,
		"IPAColumn.Losses":         r.IPAColumn.Losses,
	}[path]
}

func TestCalculate_Scenarios(t *testing.T) {
	for _, sc := range scenarios {
		res, err := Calculate(Input{ReactorFeed: sc.feed})
		if err != nil {
			t.Fatalf("feed %v: %v", sc.feed, err)
		}
		for path, want := range sc.vectors {
			got, err := json.Marshal(vectorAt(res, path))
			if err != nil {
				t.Fatalf("feed %v %s: marshal: %v", sc.feed, path, err)
			}
			if string(got) != want {
				t.Errorf("feed %v %s:\n got %s\nwant %s", sc.feed, path, got, want)
			}
		}
		if res.AcetoneProduced.Total != sc.acetoneTotal {
			t.Errorf("feed %v: acetone produced %v, want %v", sc.feed, res.AcetoneProduced.Total, sc.acetoneTotal)
		}
		if res.AcetoneColumn.TotalDistillate != sc.acetoneColTotal {
			t.Errorf("feed %v: acetone column distillate %v, want %v", sc.feed, res.AcetoneColumn.TotalDistillate, sc.acetoneColTotal)
		}
		if res.IPAColumn.TotalDistillate != sc.ipaColTotal {
			t.Errorf("feed %v: IPA column distillate %v, want %v", sc.feed, res.IPAColumn.TotalDistillate, sc.ipaColTotal)
		}
	}
}

func TestCalculate_FeedComposition(t *testing.T) {
	res, err := Calculate(Input{ReactorFeed: 100})
	if err != nil {
		t.Fatal(err)
	}
	if res.FeedComposition.IPA != 67 || res.FeedComposition.Water != 33 {
		t.Errorf("unexpected feed composition: %+v", res.FeedComposition)
	}
	in := res.FeedDrum.Input
	if in.IPARecycle != 0 || in.WaterRecycle != 0 || in.IPAMakeup != 67 || in.WaterMakeup != 33 {
		t.Errorf("unexpected drum inlet: %+v", in)
	}
	if res.AcetoneProduced.AcetoneColumnDistillate != 58.23 || res.AcetoneProduced.IPAColumnDistillate != 0.58 {
		t.Errorf("unexpected acetone split: %+v", res.AcetoneProduced)
	}
}

func TestCalculate_FeedSumsToTotal(t *testing.T) {
	for _, f := range []float64{0.1, 0.3, 1, 12.34, 100, 999.99, 12345.6} {
		res, err := Calculate(Input{ReactorFeed: f})
		if err != nil {
			t.Fatal(err)
		}
		sum := res.FeedComposition.IPA + res.FeedComposition.Water
		if math.Abs(sum-Round2(f)) > 0.011 {
			t.Errorf("feed %v: ipa+water = %v", f, sum)
		}
	}
}

func TestCalculate_MinimumFeedNonNegative(t *testing.T) {
	res, err := Calculate(Input{ReactorFeed: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []Vector{
		res.FeedDrum.Output, res.Reactor.Output,
		res.Flash.Vapor, res.Flash.Liquid, res.Flash.Losses,
		res.Scrubber.Input, res.Scrubber.Offgas, res.Scrubber.Liquid, res.Scrubber.Losses,
		res.AcetoneColumn.Distillate, res.AcetoneColumn.Bottoms, res.AcetoneColumn.Losses,
		res.IPAColumn.Distillate, res.IPAColumn.Bottoms, res.IPAColumn.Losses,
	} {
		for _, e := range v {
			if e.Value < 0 || math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
				t.Errorf("%s = %v", e.Component, e.Value)
			}
		}
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	a, err := Calculate(Input{ReactorFeed: 73.1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Calculate(Input{ReactorFeed: 73.1})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with the same feed differ")
	}
}

func TestCalculate_ResultsDoNotShareReferenceData(t *testing.T) {
	a, err := Calculate(Input{ReactorFeed: 100})
	if err != nil {
		t.Fatal(err)
	}
	a.HeatBalance.Stages[0].QRel = -1
	a.DetailedHeatBalance[0].InputMass[0].Value = -42
	a.DetailedHeatBalance[0].Components[0] = CompHydrogen
	a.DetailedEnergyBalance[0].EnthalpyOut[0].Value = -42
	a.DetailedEnergyBalance[1].Equipment = "changed"

	b, err := Calculate(Input{ReactorFeed: 100})
	if err != nil {
		t.Fatal(err)
	}
	if b.HeatBalance.Stages[0].QRel != heatStages[0].QRel || heatStages[0].QRel == -1 {
		t.Errorf("heat stage leaked between results: %v", b.HeatBalance.Stages[0].QRel)
	}
	if b.DetailedHeatBalance[0].InputMass[0].Value == -42 {
		t.Error("detailed heat vector leaked between results")
	}
	if b.DetailedHeatBalance[0].Components[0] != CompIPA {
		t.Errorf("detailed heat components leaked: %v", b.DetailedHeatBalance[0].Components[0])
	}
	if b.DetailedEnergyBalance[0].EnthalpyOut[0].Value == -42 {
		t.Error("detailed energy vector leaked between results")
	}
	if b.DetailedEnergyBalance[1].Equipment == "changed" {
		t.Error("detailed energy row leaked between results")
	}
}

func TestCalculate_InvalidFeed(t *testing.T) {
	for _, f := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		res, err := Calculate(Input{ReactorFeed: f})
		if !errors.Is(err, ErrInvalidFeed) {
			t.Errorf("feed %v: expected ErrInvalidFeed, got %v", f, err)
		}
		if !reflect.DeepEqual(res, Result{}) {
			t.Errorf("feed %v: expected zero result on error", f)
		}
	}
}

func TestCalculate_ReferenceTables(t *testing.T) {
	res, err := Calculate(Input{ReactorFeed: 42})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.HeatBalance.Stages) != 9 {
		t.Fatalf("expected 9 heat stages, got %d", len(res.HeatBalance.Stages))
	}
	if res.HeatBalance.TotalQ != 65432.10999999999 {
		t.Errorf("unexpected total Q: %v", res.HeatBalance.TotalQ)
	}
	if res.EnergyBalance.TotalHIn != 654321 || res.EnergyBalance.NetDeltaU != 0 {
		t.Errorf("unexpected energy balance: %+v", res.EnergyBalance)
	}
	if len(res.DetailedHeatBalance) != 9 || len(res.DetailedEnergyBalance) != 9 {
		t.Fatal("expected nine pieces of equipment in the detailed tables")
	}
	other, _ := Calculate(Input{ReactorFeed: 4200})
	if !reflect.DeepEqual(res.DetailedHeatBalance, other.DetailedHeatBalance) {
		t.Error("reference tables should not depend on the feed")
	}
}

func TestDetailedTables_VectorsMatchComponents(t *testing.T) {
	for _, eq := range detailedHeat {
		for _, v := range []Vector{eq.InputMass, eq.CpIn, eq.HeatIn, eq.OutputGasMass, eq.CpOutGas,
			eq.HeatOutGas, eq.OutputLiquidMass, eq.CpOutLiquid, eq.HeatOutLiquid} {
			if !reflect.DeepEqual(v.Components(), eq.Components) {
				t.Errorf("%s: vector components %v, want %v", eq.Equipment, v.Components(), eq.Components)
			}
		}
	}
	for _, eq := range detailedEnergy {
		if len(eq.EnthalpyOut) != len(eq.Components) {
			t.Errorf("%s: enthalpy vector length %d", eq.Equipment, len(eq.EnthalpyOut))
		}
	}
	if detailedEnergy[8].Equipment != "IPA Column" || detailedEnergy[8].DeltaH != -61206.9 {
		t.Errorf("unexpected last energy row: %+v", detailedEnergy[8].Equipment)
	}
}

func TestResult_JSON(t *testing.T) {
	res, err := Calculate(Input{ReactorFeed: 100})
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("result is not an object: %v", err)
	}
	for _, key := range []string{"feed_composition", "feed_drum", "reactor", "flash", "scrubber",
		"acetone_column", "ipa_column", "acetone_produced", "heat_balance", "energy_balance",
		"detailed_heat_balance", "detailed_energy_balance"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing %q in result JSON", key)
		}
	}
	var drum struct {
		Input map[string]float64 `json:"input"`
	}
	if err := json.Unmarshal(doc["feed_drum"], &drum); err != nil {
		t.Fatal(err)
	}
	if drum.Input["Isopropyl Alcohol (Makeup)"] != 67 {
		t.Errorf("unexpected drum input JSON: %v", drum.Input)
	}
}

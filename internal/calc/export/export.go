package export

import (
	"fmt"

	"github.com/erlynorbel/chemical-process-simulator/internal/calc/process"
	"github.com/erlynorbel/chemical-process-simulator/internal/calc/sweep"
	"github.com/xuri/excelize/v2"
)

type stream struct {
	name string
	flow process.Vector
}

type sheetWriter struct {
	f      *excelize.File
	sheet  string
	row    int
	header int
	err    error
}

func newSheet(f *excelize.File, name string, header int) *sheetWriter {
	sw := &sheetWriter{f: f, sheet: name, row: 1, header: header}
	if _, err := f.NewSheet(name); err != nil {
		sw.err = err
	}
	return sw
}

func (sw *sheetWriter) add(cells ...any) {
	if sw.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, sw.row)
	if err != nil {
		sw.err = err
		return
	}
	sw.err = sw.f.SetSheetRow(sw.sheet, cell, &cells)
	sw.row++
}

func (sw *sheetWriter) bold(cells ...any) {
	row := sw.row
	sw.add(cells...)
	if sw.err != nil || sw.header == 0 {
		return
	}
	from, _ := excelize.CoordinatesToCellName(1, row)
	to, _ := excelize.CoordinatesToCellName(len(cells), row)
	sw.err = sw.f.SetCellStyle(sw.sheet, from, to, sw.header)
}

func (sw *sheetWriter) skip() { sw.row++ }

// streams writes one block per stream with kmol/hr and kg/hr columns.
func (sw *sheetWriter) streams(list ...stream) {
	sw.bold("Stream", "Component", "kmol/hr", "kg/hr")
	for _, s := range list {
		mass, err := process.ToMass(s.flow)
		if err != nil {
			sw.err = fmt.Errorf("%s %s: %w", sw.sheet, s.name, err)
			return
		}
		for i, e := range s.flow {
			sw.add(s.name, e.Component.String(), e.Value, mass[i].Value)
		}
		sw.add(s.name, "Total", s.flow.Total(), mass.Total())
	}
}

func newFile() (*excelize.File, int, error) {
	f := excelize.NewFile()
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, style, nil
}

// Workbook lays a process result out one unit per sheet.
func Workbook(res process.Result) (*excelize.File, error) {
	f, bold, err := newFile()
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		f.Close()
		return nil, err
	}

	var sheets []*sheetWriter

	sum := &sheetWriter{f: f, sheet: "Summary", row: 1, header: bold}
	sum.bold("Item", "Value", "Unit")
	sum.add("Total reactor feed", res.ReactorFeed, "kmol/hr")
	sum.add("IPA in feed", res.FeedComposition.IPA, "kmol/hr")
	sum.add("Water in feed", res.FeedComposition.Water, "kmol/hr")
	sum.add("Acetone from acetone column", res.AcetoneProduced.AcetoneColumnDistillate, "kmol/hr")
	sum.add("Acetone from IPA column", res.AcetoneProduced.IPAColumnDistillate, "kmol/hr")
	sum.add("Acetone produced", res.AcetoneProduced.Total, "kmol/hr")
	sheets = append(sheets, sum)

	drum := newSheet(f, "Feed Drum", bold)
	in := res.FeedDrum.Input
	inMass, err := in.Mass()
	if err != nil {
		f.Close()
		return nil, err
	}
	drum.bold("Stream", "Component", "kmol/hr", "kg/hr")
	drum.add("Input", "Isopropyl Alcohol (Recycle)", in.IPARecycle, inMass.IPARecycle)
	drum.add("Input", "Water (Recycle)", in.WaterRecycle, inMass.WaterRecycle)
	drum.add("Input", "Isopropyl Alcohol (Makeup)", in.IPAMakeup, inMass.IPAMakeup)
	drum.add("Input", "Water (Makeup)", in.WaterMakeup, inMass.WaterMakeup)
	drum.skip()
	drum.streams(stream{"Output", res.FeedDrum.Output}, stream{"Losses", res.FeedDrum.Losses})
	sheets = append(sheets, drum)

	reactor := newSheet(f, "Reactor", bold)
	reactor.streams(stream{"Input", res.Reactor.Input}, stream{"Output", res.Reactor.Output})
	sheets = append(sheets, reactor)

	flash := newSheet(f, "Flash", bold)
	flash.streams(
		stream{"Input", res.Flash.Input},
		stream{"Vapor", res.Flash.Vapor},
		stream{"Liquid", res.Flash.Liquid},
		stream{"Losses", res.Flash.Losses},
	)
	sheets = append(sheets, flash)

	scrubber := newSheet(f, "Scrubber", bold)
	scrubber.streams(
		stream{"Input", res.Scrubber.Input},
		stream{"Offgas", res.Scrubber.Offgas},
		stream{"Liquid", res.Scrubber.Liquid},
		stream{"Losses", res.Scrubber.Losses},
	)
	sheets = append(sheets, scrubber)

	for _, c := range []struct {
		name string
		col  process.Column
	}{
		{"Acetone Column", res.AcetoneColumn},
		{"IPA Column", res.IPAColumn},
	} {
		sw := newSheet(f, c.name, bold)
		sw.streams(
			stream{"Input", c.col.Input},
			stream{"Distillate", c.col.Distillate},
			stream{"Bottoms", c.col.Bottoms},
			stream{"Losses", c.col.Losses},
		)
		sw.skip()
		sw.add("Total distillate", "", c.col.TotalDistillate)
		sheets = append(sheets, sw)
	}

	heat := newSheet(f, "Heat Balance", bold)
	heat.bold("Equipment", "ΔH in, kJ/hr", "H out, kJ/hr", "Q released, kJ/hr")
	for _, s := range res.HeatBalance.Stages {
		heat.add(s.Equipment, s.DeltaHIn, s.HOut, s.QRel)
	}
	heat.add("Total", "", "", res.HeatBalance.TotalQ)
	heat.skip()
	heat.bold("Equipment", "Component", "Input mass", "Cp in", "Heat in",
		"Gas out mass", "Heat out gas", "Liquid out mass", "Heat out liquid")
	for _, eq := range res.DetailedHeatBalance {
		for _, c := range eq.Components {
			heat.add(eq.Equipment, c.String(), eq.InputMass.Get(c), eq.CpIn.Get(c), eq.HeatIn.Get(c),
				eq.OutputGasMass.Get(c), eq.HeatOutGas.Get(c), eq.OutputLiquidMass.Get(c), eq.HeatOutLiquid.Get(c))
		}
		heat.add(eq.Equipment, "Total", "", "", eq.TotalHeatIn, "", "", "", eq.TotalHeatOut)
	}
	sheets = append(sheets, heat)

	energy := newSheet(f, "Energy Balance", bold)
	eb := res.EnergyBalance
	energy.bold("Item", "kJ/hr")
	energy.add("Total H in", eb.TotalHIn)
	energy.add("Total H out", eb.TotalHOut)
	energy.add("Total U in", eb.TotalUIn)
	energy.add("Total U out", eb.TotalUOut)
	energy.add("Net ΔH", eb.NetDeltaH)
	energy.add("Net ΔU", eb.NetDeltaU)
	energy.skip()
	energy.bold("Equipment", "Mass in, kg/hr", "Mass out, kg/hr", "H in", "H out", "U in", "U out", "ΔH", "ΔU", "Power, kW")
	for _, eq := range res.DetailedEnergyBalance {
		energy.add(eq.Equipment, eq.TotalMassIn, eq.TotalMassOut, eq.TotalEnthalpyIn, eq.TotalEnthalpyOut,
			eq.TotalInternalEnergyIn, eq.TotalInternalEnergyOut, eq.DeltaH, eq.DeltaU, eq.PowerRequirement)
	}
	sheets = append(sheets, energy)

	for _, sw := range sheets {
		if sw.err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", sw.sheet, sw.err)
		}
	}
	return f, nil
}

// SweepWorkbook writes the sweep points and the fitted line.
func SweepWorkbook(res sweep.Result) (*excelize.File, error) {
	f, bold, err := newFile()
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetName("Sheet1", "Sweep"); err != nil {
		f.Close()
		return nil, err
	}
	sw := &sheetWriter{f: f, sheet: "Sweep", row: 1, header: bold}
	sw.bold("Feed, kmol/hr", "Acetone produced", "H2 offgas", "Absorbent water", "IPA bottoms")
	for _, p := range res.Points {
		sw.add(p.Feed, p.AcetoneProduced, p.HydrogenOffgas, p.AbsorbentWater, p.IPABottoms)
	}
	sw.skip()
	sw.add("Slope", res.Slope)
	sw.add("Intercept", res.Intercept)
	sw.add("R²", res.RSquared)
	if sw.err != nil {
		f.Close()
		return nil, sw.err
	}
	return f, nil
}

package process

import "slices"

// Heat and energy balance figures below are fixed reference data for the
// design case. They do not follow the computed material balance.

type HeatStage struct {
	Equipment string  `json:"equipment"`
	DeltaHIn  float64 `json:"delta_h_in"`
	HOut      float64 `json:"h_out"`
	QRel      float64 `json:"q_rel"`
}

type HeatBalance struct {
	Stages []HeatStage `json:"stages"`
	TotalQ float64     `json:"total_q"`
}

type EnergyBalance struct {
	TotalHIn  float64 `json:"total_h_in"`
	TotalHOut float64 `json:"total_h_out"`
	TotalUIn  float64 `json:"total_u_in"`
	TotalUOut float64 `json:"total_u_out"`
	NetDeltaH float64 `json:"net_delta_h"`
	NetDeltaU float64 `json:"net_delta_u"`
}

// EquipmentHeat is one row of the detailed heat balance. Masses in kg/hr,
// heat capacities in kJ/(kg K), temperatures in K, heat in kJ/hr.
type EquipmentHeat struct {
	Equipment        string      `json:"equipment"`
	Components       []Component `json:"components"`
	InputMass        Vector      `json:"input_mass"`
	CpIn             Vector      `json:"cp_in"`
	InputTemp        float64     `json:"input_temp"`
	PrevInputTemp    float64     `json:"prev_input_temp"`
	HeatIn           Vector      `json:"heat_in"`
	OutputGasMass    Vector      `json:"output_gas_mass"`
	CpOutGas         Vector      `json:"cp_out_gas"`
	OutputGasTemp    float64     `json:"output_gas_temp"`
	HeatOutGas       Vector      `json:"heat_out_gas"`
	OutputLiquidMass Vector      `json:"output_liquid_mass"`
	CpOutLiquid      Vector      `json:"cp_out_liquid"`
	OutputLiquidTemp float64     `json:"output_liquid_temp"`
	HeatOutLiquid    Vector      `json:"heat_out_liquid"`
	TotalHeatIn      float64     `json:"total_heat_in"`
	TotalHeatOut     float64     `json:"total_heat_out"`
	HeatReleased     float64     `json:"heat_released"`
}

// EquipmentEnergy is one row of the detailed energy balance. Enthalpy and
// internal energy in kJ/hr, power in kW.
type EquipmentEnergy struct {
	Equipment              string      `json:"equipment"`
	Components             []Component `json:"components"`
	InputMass              Vector      `json:"input_mass"`
	CpIn                   Vector      `json:"cp_in"`
	CvIn                   Vector      `json:"cv_in"`
	InputTemp              float64     `json:"input_temp"`
	EnthalpyIn             Vector      `json:"enthalpy_in"`
	InternalEnergyIn       Vector      `json:"internal_energy_in"`
	OutputMass             Vector      `json:"output_mass"`
	CpOut                  Vector      `json:"cp_out"`
	CvOut                  Vector      `json:"cv_out"`
	OutputTemp             float64     `json:"output_temp"`
	EnthalpyOut            Vector      `json:"enthalpy_out"`
	InternalEnergyOut      Vector      `json:"internal_energy_out"`
	TotalMassIn            float64     `json:"total_mass_in"`
	TotalMassOut           float64     `json:"total_mass_out"`
	TotalEnthalpyIn        float64     `json:"total_enthalpy_in"`
	TotalEnthalpyOut       float64     `json:"total_enthalpy_out"`
	TotalInternalEnergyIn  float64     `json:"total_internal_energy_in"`
	TotalInternalEnergyOut float64     `json:"total_internal_energy_out"`
	DeltaH                 float64     `json:"delta_h"`
	DeltaU                 float64     `json:"delta_u"`
	PowerRequirement       float64     `json:"power_requirement"`
}

var heatStages = []HeatStage{
	{"Feed Drum", 0.0, 12500.45, 12500.45},
	{"Vaporizer", 12500.45, 45678.9, 33178.45},
	{"Heater", 45678.9, 89012.34, 43333.44},
	{"Reactor", 89012.34, 123456.78, 34444.44},
	{"Cooler", 123456.78, 98765.43, -24691.35},
	{"Condenser", 98765.43, 87654.32, -11111.11},
	{"Scrubber", 87654.32, 87654.32, 0.0},
	{"Acetone Column", 76543.21, 65432.1, -11111.11},
	{"IPA Column", 65432.1, 54321.0, -11111.1},
}

var heatBalance = HeatBalance{
	Stages: heatStages,
	TotalQ: sumQ(heatStages),
}

var energyBalance = EnergyBalance{
	TotalHIn:  654321.0,
	TotalHOut: 654321.0,
	TotalUIn:  543210.0,
	TotalUOut: 543210.0,
	NetDeltaH: 0.0,
	NetDeltaU: 0.0,
}

func sumQ(stages []HeatStage) float64 {
	sum := 0.0
	for _, s := range stages {
		sum += s.QRel
	}
	return sum
}

// referenceTables returns fresh copies of the reference data so that no
// two results share storage.
func referenceTables() (HeatBalance, EnergyBalance, []EquipmentHeat, []EquipmentEnergy) {
	hb := heatBalance
	hb.Stages = slices.Clone(heatBalance.Stages)

	heat := make([]EquipmentHeat, len(detailedHeat))
	for i, e := range detailedHeat {
		e.Components = slices.Clone(e.Components)
		e.InputMass = e.InputMass.Clone()
		e.CpIn = e.CpIn.Clone()
		e.HeatIn = e.HeatIn.Clone()
		e.OutputGasMass = e.OutputGasMass.Clone()
		e.CpOutGas = e.CpOutGas.Clone()
		e.HeatOutGas = e.HeatOutGas.Clone()
		e.OutputLiquidMass = e.OutputLiquidMass.Clone()
		e.CpOutLiquid = e.CpOutLiquid.Clone()
		e.HeatOutLiquid = e.HeatOutLiquid.Clone()
		heat[i] = e
	}

	energy := make([]EquipmentEnergy, len(detailedEnergy))
	for i, e := range detailedEnergy {
		e.Components = slices.Clone(e.Components)
		e.InputMass = e.InputMass.Clone()
		e.CpIn = e.CpIn.Clone()
		e.CvIn = e.CvIn.Clone()
		e.EnthalpyIn = e.EnthalpyIn.Clone()
		e.InternalEnergyIn = e.InternalEnergyIn.Clone()
		e.OutputMass = e.OutputMass.Clone()
		e.CpOut = e.CpOut.Clone()
		e.CvOut = e.CvOut.Clone()
		e.EnthalpyOut = e.EnthalpyOut.Clone()
		e.InternalEnergyOut = e.InternalEnergyOut.Clone()
		energy[i] = e
	}
	return hb, energyBalance, heat, energy
}

var (
	feedSide          = []Component{CompIPA, CompWaterL}
	reactorSide       = []Component{CompIPA, CompWaterL, CompAcetone, CompHydrogen}
	scrubberSide      = []Component{CompAcetone, CompHydrogen, CompIPA, CompWaterV, CompWaterL}
	acetoneColumnSide = []Component{CompAcetone, CompWaterL, CompIPA}
	ipaColumnSide     = []Component{CompIPA, CompWaterL, CompAcetone}
)

var detailedHeat = []EquipmentHeat{
	{
		Equipment:        "Feed Drum",
		Components:       feedSide,
		InputMass:        along(feedSide, 4026.7, 594.66),
		CpIn:             along(feedSide, 2.8686, 4.1927),
		InputTemp:        298.15,
		PrevInputTemp:    298.15,
		HeatIn:           along(feedSide, 0.0, 0.0),
		OutputGasMass:    along(feedSide, 0.0, 0.0),
		CpOutGas:         along(feedSide, 0.0, 0.0),
		OutputGasTemp:    305.35,
		HeatOutGas:       along(feedSide, 0.0, 0.0),
		OutputLiquidMass: along(feedSide, 4026.7, 594.66),
		CpOutLiquid:      along(feedSide, 2.893, 4.1843),
		OutputLiquidTemp: 305.35,
		HeatOutLiquid:    along(feedSide, 83456.32, 17890.45),
		TotalHeatIn:      0.0,
		TotalHeatOut:     101346.77,
		HeatReleased:     101346.77,
	},
	{
		Equipment:        "Vaporizer",
		Components:       feedSide,
		InputMass:        along(feedSide, 4026.7, 594.66),
		CpIn:             along(feedSide, 2.893, 4.1843),
		InputTemp:        305.35,
		PrevInputTemp:    298.15,
		HeatIn:           along(feedSide, 83456.32, 17890.45),
		OutputGasMass:    along(feedSide, 4026.7, 594.66),
		CpOutGas:         along(feedSide, 1.8138, 1.944),
		OutputGasTemp:    391.15,
		HeatOutGas:       along(feedSide, 284567.89, 45123.67),
		OutputLiquidMass: along(feedSide, 0.0, 0.0),
		CpOutLiquid:      along(feedSide, 0.0, 0.0),
		OutputLiquidTemp: 391.15,
		HeatOutLiquid:    along(feedSide, 0.0, 0.0),
		TotalHeatIn:      101346.77,
		TotalHeatOut:     329691.56,
		HeatReleased:     228344.79,
	},
	{
		Equipment:        "Heater",
		Components:       feedSide,
		InputMass:        along(feedSide, 4026.7, 594.66),
		CpIn:             along(feedSide, 1.7945, 1.944),
		InputTemp:        391.15,
		PrevInputTemp:    305.35,
		HeatIn:           along(feedSide, 284567.89, 45123.67),
		OutputGasMass:    along(feedSide, 4026.7, 594.66),
		CpOutGas:         along(feedSide, 2.4346, 2.0808),
		OutputGasTemp:    598.15,
		HeatOutGas:       along(feedSide, 586432.1, 73456.78),
		OutputLiquidMass: along(feedSide, 0.0, 0.0),
		CpOutLiquid:      along(feedSide, 0.0, 0.0),
		OutputLiquidTemp: 598.15,
		HeatOutLiquid:    along(feedSide, 0.0, 0.0),
		TotalHeatIn:      329691.56,
		TotalHeatOut:     659888.88,
		HeatReleased:     330197.32,
	},
	{
		Equipment:        "Reactor",
		Components:       reactorSide,
		InputMass:        along(reactorSide, 4026.7, 594.66, 0.0, 0.0),
		CpIn:             along(reactorSide, 2.4346, 2.0808, 0.0, 0.0),
		InputTemp:        598.15,
		PrevInputTemp:    391.15,
		HeatIn:           along(reactorSide, 586432.1, 73456.78, 0.0, 0.0),
		OutputGasMass:    along(reactorSide, 0.0, 0.0, 0.0, 0.0),
		CpOutGas:         along(reactorSide, 0.0, 0.0, 0.0, 0.0),
		OutputGasTemp:    623.15,
		HeatOutGas:       along(reactorSide, 0.0, 0.0, 0.0, 0.0),
		OutputLiquidMass: along(reactorSide, 402.67, 594.66, 3492.48, 60.9),
		CpOutLiquid:      along(reactorSide, 2.5002, 2.0999, 2.1404, 14.582),
		OutputLiquidTemp: 623.15,
		HeatOutLiquid:    along(reactorSide, 62789.01, 77890.12, 465789.01, 55432.1),
		TotalHeatIn:      659888.88,
		TotalHeatOut:     661900.24,
		HeatReleased:     2011.36,
	},
	{
		Equipment:        "Cooler",
		Components:       reactorSide,
		InputMass:        along(reactorSide, 402.67, 594.66, 3492.48, 60.9),
		CpIn:             along(reactorSide, 2.5002, 2.0999, 2.1404, 14.582),
		InputTemp:        623.15,
		PrevInputTemp:    598.15,
		HeatIn:           along(reactorSide, 62789.01, 77890.12, 465789.01, 55432.1),
		OutputGasMass:    along(reactorSide, 0.0, 0.0, 0.0, 0.0),
		CpOutGas:         along(reactorSide, 0.0, 0.0, 0.0, 0.0),
		OutputGasTemp:    366.15,
		HeatOutGas:       along(reactorSide, 0.0, 0.0, 0.0, 0.0),
		OutputLiquidMass: along(reactorSide, 402.67, 594.66, 3492.48, 60.9),
		CpOutLiquid:      along(reactorSide, 1.7306, 1.9309, 1.4793, 14.3981),
		OutputLiquidTemp: 366.15,
		HeatOutLiquid:    along(reactorSide, 25432.1, 42123.45, 189765.43, 32109.87),
		TotalHeatIn:      661900.24,
		TotalHeatOut:     289430.85,
		HeatReleased:     -372469.39,
	},
	{
		Equipment:        "Condenser",
		Components:       reactorSide,
		InputMass:        along(reactorSide, 402.67, 594.66, 3492.48, 60.9),
		CpIn:             along(reactorSide, 1.7306, 1.9309, 1.4793, 14.3981),
		InputTemp:        366.15,
		PrevInputTemp:    623.15,
		HeatIn:           along(reactorSide, 25432.1, 42123.45, 189765.43, 32109.87),
		OutputGasMass:    along(reactorSide, 0.0, 0.0, 0.0, 0.0),
		CpOutGas:         along(reactorSide, 0.0, 0.0, 0.0, 0.0),
		OutputGasTemp:    354.15,
		HeatOutGas:       along(reactorSide, 0.0, 0.0, 0.0, 0.0),
		OutputLiquidMass: along(reactorSide, 402.67, 594.66, 3492.48, 60.9),
		CpOutLiquid:      along(reactorSide, 1.6902, 1.9249, 1.447, 14.3792),
		OutputLiquidTemp: 354.15,
		HeatOutLiquid:    along(reactorSide, 24123.45, 40567.89, 179012.34, 31098.76),
		TotalHeatIn:      289430.85,
		TotalHeatOut:     274802.44,
		HeatReleased:     -14628.41,
	},
	{
		Equipment:        "Scrubber",
		Components:       scrubberSide,
		InputMass:        along(scrubberSide, 1396.99, 60.9, 12.08, 42.05, 1000.0),
		CpIn:             along(scrubberSide, 1.447, 14.3792, 1.6902, 1.9249, 4.1724),
		InputTemp:        354.15,
		PrevInputTemp:    366.15,
		HeatIn:           along(scrubberSide, 71654.32, 31098.76, 723.45, 2876.54, 147654.32),
		OutputGasMass:    along(scrubberSide, 1.4, 60.29, 0.0, 0.0, 0.0),
		CpOutGas:         along(scrubberSide, 1.447, 14.3792, 0.0, 1.9249, 0.0),
		OutputGasTemp:    354.15,
		HeatOutGas:       along(scrubberSide, 71.65, 30787.77, 0.0, 0.0, 0.0),
		OutputLiquidMass: along(scrubberSide, 1383.02, 0.0, 11.96, 0.0, 1031.63),
		CpOutLiquid:      along(scrubberSide, 2.2267, 0.0, 2.9023, 0.0, 4.1815),
		OutputLiquidTemp: 308.0,
		HeatOutLiquid:    along(scrubberSide, 94765.43, 0.0, 1067.89, 0.0, 133210.98),
		TotalHeatIn:      254007.39,
		TotalHeatOut:     259903.72,
		HeatReleased:     5896.33,
	},
	{
		Equipment:        "Acetone Column",
		Components:       acetoneColumnSide,
		InputMass:        along(acetoneColumnSide, 1383.02, 1031.63, 11.96),
		CpIn:             along(acetoneColumnSide, 2.2267, 4.1815, 2.9023),
		InputTemp:        321.96,
		PrevInputTemp:    354.15,
		HeatIn:           along(acetoneColumnSide, 98765.43, 138765.43, 1123.45),
		OutputGasMass:    along(acetoneColumnSide, 0.0, 0.0, 0.0),
		CpOutGas:         along(acetoneColumnSide, 0.0, 0.0, 0.0),
		OutputGasTemp:    331.85,
		HeatOutGas:       along(acetoneColumnSide, 0.0, 0.0, 0.0),
		OutputLiquidMass: along(acetoneColumnSide, 13.83, 918.15, 10.64),
		CpOutLiquid:      along(acetoneColumnSide, 1.3871, 4.1673, 2.9943),
		OutputLiquidTemp: 331.85,
		HeatOutLiquid:    along(acetoneColumnSide, 635.79, 127098.76, 1056.78),
		TotalHeatIn:      238654.31,
		TotalHeatOut:     128791.33,
		HeatReleased:     -109862.98,
	},
	{
		Equipment:        "IPA Column",
		Components:       ipaColumnSide,
		InputMass:        along(ipaColumnSide, 10.64, 918.15, 13.83),
		CpIn:             along(ipaColumnSide, 2.9943, 4.1673, 2.3117),
		InputTemp:        331.85,
		PrevInputTemp:    321.96,
		HeatIn:           along(ipaColumnSide, 1056.78, 127098.76, 1067.89),
		OutputGasMass:    along(ipaColumnSide, 0.0, 0.0, 0.0),
		CpOutGas:         along(ipaColumnSide, 0.0, 0.0, 0.0),
		OutputGasTemp:    373.65,
		HeatOutGas:       along(ipaColumnSide, 0.0, 0.0, 0.0),
		OutputLiquidMass: along(ipaColumnSide, 10.64, 918.15, 13.83),
		CpOutLiquid:      along(ipaColumnSide, 1.7557, 1.9347, 1.4995),
		OutputLiquidTemp: 373.65,
		HeatOutLiquid:    along(ipaColumnSide, 698.76, 66543.21, 774.56),
		TotalHeatIn:      129223.43,
		TotalHeatOut:     68016.53,
		HeatReleased:     -61206.9,
	},
}

var detailedEnergy = []EquipmentEnergy{
	{
		Equipment:              "Feed Drum",
		Components:             feedSide,
		InputMass:              along(feedSide, 4026.7, 594.66),
		CpIn:                   along(feedSide, 2.8686, 4.1927),
		CvIn:                   along(feedSide, 2.8685, 4.1923),
		InputTemp:              298.15,
		EnthalpyIn:             along(feedSide, 343456.78, 74321.09),
		InternalEnergyIn:       along(feedSide, 343444.44, 74316.54),
		OutputMass:             along(feedSide, 4026.7, 594.66),
		CpOut:                  along(feedSide, 2.893, 4.1843),
		CvOut:                  along(feedSide, 2.8928, 4.1838),
		OutputTemp:             305.35,
		EnthalpyOut:            along(feedSide, 355432.1, 76543.21),
		InternalEnergyOut:      along(feedSide, 355407.41, 76534.57),
		TotalMassIn:            4621.36,
		TotalMassOut:           4621.36,
		TotalEnthalpyIn:        417777.87,
		TotalEnthalpyOut:       431975.31,
		TotalInternalEnergyIn:  417760.98,
		TotalInternalEnergyOut: 431941.98,
		DeltaH:                 14197.44,
		DeltaU:                 14181.0,
		PowerRequirement:       30.0,
	},
	{
		Equipment:              "Vaporizer",
		Components:             feedSide,
		InputMass:              along(feedSide, 4026.7, 594.66),
		CpIn:                   along(feedSide, 2.893, 4.1843),
		CvIn:                   along(feedSide, 2.8928, 4.1838),
		InputTemp:              305.35,
		EnthalpyIn:             along(feedSide, 355432.1, 76543.21),
		InternalEnergyIn:       along(feedSide, 355407.41, 76534.57),
		OutputMass:             along(feedSide, 4026.7, 594.66),
		CpOut:                  along(feedSide, 1.8138, 1.944),
		CvOut:                  along(feedSide, 1.8136, 1.9435),
		OutputTemp:             391.15,
		EnthalpyOut:            along(feedSide, 284567.89, 45123.67),
		InternalEnergyOut:      along(feedSide, 284536.42, 45112.34),
		TotalMassIn:            4621.36,
		TotalMassOut:           4621.36,
		TotalEnthalpyIn:        431975.31,
		TotalEnthalpyOut:       329691.56,
		TotalInternalEnergyIn:  431941.98,
		TotalInternalEnergyOut: 329648.76,
		DeltaH:                 -102283.75,
		DeltaU:                 -102293.22,
		PowerRequirement:       30.0,
	},
	{
		Equipment:              "Heater",
		Components:             feedSide,
		InputMass:              along(feedSide, 4026.7, 594.66),
		CpIn:                   along(feedSide, 1.7945, 1.944),
		CvIn:                   along(feedSide, 1.7944, 1.9435),
		InputTemp:              391.15,
		EnthalpyIn:             along(feedSide, 284567.89, 45123.67),
		InternalEnergyIn:       along(feedSide, 284552.1, 45112.34),
		OutputMass:             along(feedSide, 4026.7, 594.66),
		CpOut:                  along(feedSide, 2.4346, 2.0808),
		CvOut:                  along(feedSide, 2.4345, 2.0803),
		OutputTemp:             598.15,
		EnthalpyOut:            along(feedSide, 586432.1, 73456.78),
		InternalEnergyOut:      along(feedSide, 586407.41, 73438.27),
		TotalMassIn:            4621.36,
		TotalMassOut:           4621.36,
		TotalEnthalpyIn:        329691.56,
		TotalEnthalpyOut:       659888.88,
		TotalInternalEnergyIn:  329664.44,
		TotalInternalEnergyOut: 659845.68,
		DeltaH:                 330197.32,
		DeltaU:                 330181.24,
		PowerRequirement:       30.0,
	},
	{
		Equipment:              "Reactor",
		Components:             reactorSide,
		InputMass:              along(reactorSide, 4026.7, 594.66, 0.0, 0.0),
		CpIn:                   along(reactorSide, 2.4346, 2.0808, 0.0, 0.0),
		CvIn:                   along(reactorSide, 2.4345, 2.0803, 0.0, 0.0),
		InputTemp:              598.15,
		EnthalpyIn:             along(reactorSide, 586432.1, 73456.78, 0.0, 0.0),
		InternalEnergyIn:       along(reactorSide, 586407.41, 73438.27, 0.0, 0.0),
		OutputMass:             along(reactorSide, 402.67, 594.66, 3492.48, 60.9),
		CpOut:                  along(reactorSide, 2.5002, 2.0999, 2.1404, 14.582),
		CvOut:                  along(reactorSide, 2.5, 2.0994, 2.1403, 14.5738),
		OutputTemp:             623.15,
		EnthalpyOut:            along(reactorSide, 62789.01, 77890.12, 465789.01, 55432.1),
		InternalEnergyOut:      along(reactorSide, 62784.32, 77871.6, 465767.9, 55401.23),
		TotalMassIn:            4621.36,
		TotalMassOut:           4550.71,
		TotalEnthalpyIn:        659888.88,
		TotalEnthalpyOut:       661900.24,
		TotalInternalEnergyIn:  659845.68,
		TotalInternalEnergyOut: 661825.05,
		DeltaH:                 2011.36,
		DeltaU:                 1979.37,
		PowerRequirement:       30.0,
	},
	{
		Equipment:              "Cooler",
		Components:             reactorSide,
		InputMass:              along(reactorSide, 402.67, 594.66, 3492.48, 60.9),
		CpIn:                   along(reactorSide, 2.5002, 2.0999, 2.1404, 14.582),
		CvIn:                   along(reactorSide, 2.5, 2.0994, 2.1403, 14.5738),
		InputTemp:              623.15,
		EnthalpyIn:             along(reactorSide, 62789.01, 77890.12, 465789.01, 55432.1),
		InternalEnergyIn:       along(reactorSide, 62784.32, 77871.6, 465767.9, 55401.23),
		OutputMass:             along(reactorSide, 402.67, 594.66, 3492.48, 60.9),
		CpOut:                  along(reactorSide, 1.7306, 1.9309, 1.4793, 14.3981),
		CvOut:                  along(reactorSide, 1.7305, 1.9304, 1.4792, 14.3899),
		OutputTemp:             366.15,
		EnthalpyOut:            along(reactorSide, 25432.1, 42123.45, 189765.43, 32109.87),
		InternalEnergyOut:      along(reactorSide, 25430.12, 42112.34, 189752.1, 32091.23),
		TotalMassIn:            4550.71,
		TotalMassOut:           4550.71,
		TotalEnthalpyIn:        661900.24,
		TotalEnthalpyOut:       289430.85,
		TotalInternalEnergyIn:  661825.05,
		TotalInternalEnergyOut: 289385.79,
		DeltaH:                 -372469.39,
		DeltaU:                 -372439.26,
		PowerRequirement:       30.0,
	},
	{
		Equipment:              "Condenser",
		Components:             reactorSide,
		InputMass:              along(reactorSide, 402.67, 594.66, 3492.48, 60.9),
		CpIn:                   along(reactorSide, 1.7306, 1.9309, 1.4793, 14.3981),
		CvIn:                   along(reactorSide, 1.7305, 1.9304, 1.4792, 14.3899),
		InputTemp:              366.15,
		EnthalpyIn:             along(reactorSide, 25432.1, 42123.45, 189765.43, 32109.87),
		InternalEnergyIn:       along(reactorSide, 25430.12, 42112.34, 189752.1, 32091.23),
		OutputMass:             along(reactorSide, 402.67, 594.66, 3492.48, 60.9),
		CpOut:                  along(reactorSide, 1.6902, 1.9249, 1.447, 14.3792),
		CvOut:                  along(reactorSide, 1.69, 1.9244, 1.4469, 14.3709),
		OutputTemp:             354.15,
		EnthalpyOut:            along(reactorSide, 24123.45, 40567.89, 179012.34, 31098.76),
		InternalEnergyOut:      along(reactorSide, 24120.98, 40557.12, 179000.0, 31058.76),
		TotalMassIn:            4550.71,
		TotalMassOut:           4550.71,
		TotalEnthalpyIn:        289430.85,
		TotalEnthalpyOut:       274802.44,
		TotalInternalEnergyIn:  289385.79,
		TotalInternalEnergyOut: 274736.86,
		DeltaH:                 -14628.41,
		DeltaU:                 -14648.93,
		PowerRequirement:       30.0,
	},
	{
		Equipment:              "Scrubber",
		Components:             scrubberSide,
		InputMass:              along(scrubberSide, 1396.99, 60.9, 12.08, 42.05, 1000.0),
		CpIn:                   along(scrubberSide, 1.447, 14.3792, 1.6902, 1.9249, 4.1724),
		CvIn:                   along(scrubberSide, 1.4469, 14.3709, 1.69, 1.9244, 4.172),
		InputTemp:              354.15,
		EnthalpyIn:             along(scrubberSide, 71654.32, 31098.76, 723.45, 2876.54, 147654.32),
		InternalEnergyIn:       along(scrubberSide, 71649.38, 31080.12, 722.89, 2875.67, 147640.0),
		OutputMass:             along(scrubberSide, 1383.02, 60.29, 11.96, 0.0, 1031.63),
		CpOut:                  along(scrubberSide, 2.2267, 14.3792, 2.9023, 0.0, 4.1815),
		CvOut:                  along(scrubberSide, 2.2266, 14.3709, 2.9021, 0.0, 4.1811),
		OutputTemp:             354.15,
		EnthalpyOut:            along(scrubberSide, 108765.43, 30787.77, 1234.56, 0.0, 152345.67),
		InternalEnergyOut:      along(scrubberSide, 108760.49, 30769.13, 1234.0, 0.0, 152331.35),
		TotalMassIn:            2512.02,
		TotalMassOut:           2486.9,
		TotalEnthalpyIn:        254007.39,
		TotalEnthalpyOut:       293133.43,
		TotalInternalEnergyIn:  253968.06,
		TotalInternalEnergyOut: 293094.97,
		DeltaH:                 39126.04,
		DeltaU:                 39126.91,
		PowerRequirement:       30.0,
	},
	{
		Equipment:              "Acetone Column",
		Components:             acetoneColumnSide,
		InputMass:              along(acetoneColumnSide, 1383.02, 1031.63, 11.96),
		CpIn:                   along(acetoneColumnSide, 2.2267, 4.1815, 2.9023),
		CvIn:                   along(acetoneColumnSide, 2.2266, 4.1811, 2.9021),
		InputTemp:              321.96,
		EnthalpyIn:             along(acetoneColumnSide, 98765.43, 138765.43, 1123.45),
		InternalEnergyIn:       along(acetoneColumnSide, 98760.49, 138752.1, 1123.0),
		OutputMass:             along(acetoneColumnSide, 13.83, 918.15, 10.64),
		CpOut:                  along(acetoneColumnSide, 1.3871, 4.1673, 2.9943),
		CvOut:                  along(acetoneColumnSide, 1.3869, 4.1672, 2.9939),
		OutputTemp:             331.85,
		EnthalpyOut:            along(acetoneColumnSide, 635.79, 127098.76, 1056.78),
		InternalEnergyOut:      along(acetoneColumnSide, 635.7, 127095.68, 1056.43),
		TotalMassIn:            2426.61,
		TotalMassOut:           942.62,
		TotalEnthalpyIn:        238654.31,
		TotalEnthalpyOut:       128791.33,
		TotalInternalEnergyIn:  238635.59,
		TotalInternalEnergyOut: 128787.81,
		DeltaH:                 -109862.98,
		DeltaU:                 -109847.78,
		PowerRequirement:       30.0,
	},
	{
		Equipment:              "IPA Column",
		Components:             ipaColumnSide,
		InputMass:              along(ipaColumnSide, 10.64, 918.15, 13.83),
		CpIn:                   along(ipaColumnSide, 2.9943, 4.1673, 2.3117),
		CvIn:                   along(ipaColumnSide, 2.9942, 4.1669, 2.3115),
		InputTemp:              331.85,
		EnthalpyIn:             along(ipaColumnSide, 1056.78, 127098.76, 1067.89),
		InternalEnergyIn:       along(ipaColumnSide, 1056.6, 127086.42, 1067.73),
		OutputMass:             along(ipaColumnSide, 10.64, 918.15, 13.83),
		CpOut:                  along(ipaColumnSide, 1.7557, 1.9347, 1.4995),
		CvOut:                  along(ipaColumnSide, 1.7556, 1.9342, 1.4994),
		OutputTemp:             373.65,
		EnthalpyOut:            along(ipaColumnSide, 698.76, 66543.21, 774.56),
		InternalEnergyOut:      along(ipaColumnSide, 698.65, 66525.67, 774.5),
		TotalMassIn:            942.62,
		TotalMassOut:           942.62,
		TotalEnthalpyIn:        129223.43,
		TotalEnthalpyOut:       68016.53,
		TotalInternalEnergyIn:  129210.75,
		TotalInternalEnergyOut: 67998.82,
		DeltaH:                 -61206.9,
		DeltaU:                 -61211.93,
		PowerRequirement:       30.0,
	},
}

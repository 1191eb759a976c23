package process

// Split is the fate of one species in a column.
type Split struct {
	Distillate float64
	Bottoms    float64
	Loss       float64
}

type ColumnSpec struct {
	Name string
	// Order is the output order; TotalDistillate is summed in it.
	Order  []Species
	Splits [numSpecies]Split
}

var AcetoneColumnSpec = ColumnSpec{
	Name:  "Acetone Column",
	Order: []Species{Acetone, Water, IPA},
	Splits: [numSpecies]Split{
		Acetone: {0.98, 0.01, 0.01},
		Water:   {0.1, 0.89, 0.01},
		IPA:     {0.1, 0.89, 0.01},
	},
}

var IPAColumnSpec = ColumnSpec{
	Name:  "IPA Column",
	Order: []Species{Acetone, IPA, Water},
	Splits: [numSpecies]Split{
		Acetone: {0.99, 0.0, 0.01},
		Water:   {0.5, 0.49, 0.01},
		IPA:     {0.8, 0.19, 0.01},
	},
}

type Column struct {
	Input           Vector  `json:"input"`
	Distillate      Vector  `json:"distillate"`
	Bottoms         Vector  `json:"bottoms"`
	Losses          Vector  `json:"losses"`
	TotalDistillate float64 `json:"total_distillate"`
}

// Distill splits a liquid feed keyed by bulk species. TotalDistillate is
// rounded once from the unrounded per-species distillate.
func Distill(in Vector, spec ColumnSpec) Column {
	out := Column{
		Input:      in,
		Distillate: make(Vector, 0, len(spec.Order)),
		Bottoms:    make(Vector, 0, len(spec.Order)),
		Losses:     make(Vector, 0, len(spec.Order)),
	}
	total := 0.0
	for _, s := range spec.Order {
		c := Component{Species: s}
		feed := in.Get(c)
		split := spec.Splits[s]

		d := float64(feed * split.Distillate) // not fused into the sum
		total += d
		out.Distillate = append(out.Distillate, Entry{c, Round2(d)})
		out.Bottoms = append(out.Bottoms, Entry{c, Round2(feed * split.Bottoms)})
		out.Losses = append(out.Losses, Entry{c, Round2(feed * split.Loss)})
	}
	out.TotalDistillate = Round2(total)
	return out
}

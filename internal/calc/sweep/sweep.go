package sweep

import (
	"fmt"
	"math"

	"github.com/erlynorbel/chemical-process-simulator/internal/calc/process"
	"gonum.org/v1/gonum/stat"
)

const MaxPoints = 10000

type Input struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
	Step float64 `json:"step"`
}

type Point struct {
	Feed            float64 `json:"feed"`
	AcetoneProduced float64 `json:"acetone_produced"`
	HydrogenOffgas  float64 `json:"hydrogen_offgas"`
	AbsorbentWater  float64 `json:"absorbent_water"`
	IPABottoms      float64 `json:"ipa_bottoms"`
}

// Result carries the points and a least-squares line of acetone produced
// against feed, kmol acetone per kmol feed.
type Result struct {
	Points    []Point `json:"points"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

// MinStep is the feed resolution of a sweep. Feeds are reported to two
// decimals, so finer steps would repeat points.
const MinStep = 0.01

// Points returns the feeds of the inclusive range from..to, rounded to two
// decimals.
func (in Input) Points() ([]float64, error) {
	for _, v := range []float64{in.From, in.To, in.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid sweep range")
		}
	}
	if in.From < MinStep || in.To < in.From {
		return nil, fmt.Errorf("invalid sweep range")
	}
	if in.Step < MinStep {
		return nil, fmt.Errorf("sweep step must be at least %v", MinStep)
	}
	span := math.Floor((in.To-in.From)/in.Step + 1e-9)
	if math.IsInf(span, 0) || span+1 > MaxPoints {
		return nil, fmt.Errorf("sweep has more than %d points", MaxPoints)
	}
	n := int(span) + 1
	if n < 2 {
		return nil, fmt.Errorf("sweep needs at least two points")
	}
	feeds := make([]float64, n)
	for i := range feeds {
		feeds[i] = process.Round2(in.From + float64(i)*in.Step)
		if i > 0 && feeds[i] <= feeds[i-1] {
			return nil, fmt.Errorf("sweep step %v does not separate feeds near %v", in.Step, feeds[i])
		}
	}
	return feeds, nil
}

// Calculate runs the plant at every point of the range. onPoint, when not
// nil, is called after each point.
func Calculate(in Input, onPoint func(Point)) (Result, error) {
	feeds, err := in.Points()
	if err != nil {
		return Result{}, err
	}

	out := Result{Points: make([]Point, 0, len(feeds))}
	xs := make([]float64, 0, len(feeds))
	ys := make([]float64, 0, len(feeds))
	for _, feed := range feeds {
		res, err := process.Calculate(process.Input{ReactorFeed: feed})
		if err != nil {
			return Result{}, fmt.Errorf("feed %v: %w", feed, err)
		}
		p := Point{
			Feed:            feed,
			AcetoneProduced: res.AcetoneProduced.Total,
			HydrogenOffgas:  res.Scrubber.Offgas.Get(process.CompHydrogen),
			AbsorbentWater:  res.Scrubber.Input.Get(process.CompWaterL),
			IPABottoms:      res.IPAColumn.Bottoms.Get(process.CompIPA),
		}
		out.Points = append(out.Points, p)
		xs = append(xs, p.Feed)
		ys = append(ys, p.AcetoneProduced)
		if onPoint != nil {
			onPoint(p)
		}
	}

	out.Intercept, out.Slope = stat.LinearRegression(xs, ys, nil, false)
	out.RSquared = stat.RSquared(xs, ys, nil, out.Intercept, out.Slope)
	return out, nil
}

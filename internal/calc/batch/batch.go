package batch

import (
	"fmt"

	"github.com/erlynorbel/chemical-process-simulator/internal/calc/process"
)

// Most feeds a single request may carry.
const MaxFeeds = 500

type Input struct {
	Feeds []float64 `json:"feeds"`
}

type Result struct {
	Results []process.Result `json:"results"`
}

// Calculate runs every feed; one invalid feed fails the batch.
func Calculate(in Input) (Result, error) {
	if len(in.Feeds) == 0 {
		return Result{}, fmt.Errorf("no feeds")
	}
	if len(in.Feeds) > MaxFeeds {
		return Result{}, fmt.Errorf("too many feeds: %d > %d", len(in.Feeds), MaxFeeds)
	}
	out := Result{Results: make([]process.Result, 0, len(in.Feeds))}
	for i, feed := range in.Feeds {
		res, err := process.Calculate(process.Input{ReactorFeed: feed})
		if err != nil {
			return Result{}, fmt.Errorf("feed #%d: %w", i+1, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

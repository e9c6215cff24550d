package batch

import (
	"fmt"

	friction "github.com/kilickursat/shield-fric/internal/calc/friction"
)

type Input struct {
	Items []friction.Input `json:"items"`
}

type Result struct {
	Results []friction.Result `json:"results"`
}

// Calculate evaluates every case in order. The first failing case aborts the
// batch so a bad row is never hidden inside a partial result set.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]friction.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := friction.Calculate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

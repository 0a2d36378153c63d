package batch

import (
	"fmt"

	shaft "Driveline/internal/calc/shaft"
)

type ShaftBatchInput struct {
	Items []shaft.Input `json:"items"`
}

type ShaftBatchResult struct {
	Results []shaft.Result `json:"results"`
}

func CalculateShaft(in ShaftBatchInput) (ShaftBatchResult, error) {
	if len(in.Items) == 0 {
		return ShaftBatchResult{}, fmt.Errorf("no items")
	}
	out := ShaftBatchResult{Results: make([]shaft.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := shaft.Calculate(item)
		if err != nil {
			return ShaftBatchResult{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

package sampling

import "fmt"

// MakeImbalance turns a balanced dataset into an imbalanced one by
// randomly dropping samples until each class matches the given target.
// Only the Counts and TargetFunc shapes make sense here: the caller
// states exactly how many samples each class keeps, either directly or
// through a function of y.
func MakeImbalance(X [][]float64, y []string, target Target, seed uint64) ([][]float64, []string, error) {
	switch target.(type) {
	case Counts, TargetFunc:
	default:
		return nil, nil, fmt.Errorf("%w: MakeImbalance needs counts or a target function, got %T", ErrInvalidTarget, target)
	}
	rus := NewRandomUnderSampler(target)
	rus.Seed = seed
	return rus.FitResample(X, y)
}

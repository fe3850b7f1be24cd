package sampling

import "golang.org/x/exp/rand"

// RandomUnderSampler keeps a random subset of each targeted class at its
// resolved count. Classes outside the target pass through untouched.
type RandomUnderSampler struct {
	// Target defaults to PolicyAuto: every class but the minority is
	// lowered to the minority count.
	Target Target
	// Seed makes resampling reproducible.
	Seed uint64
}

// NewRandomUnderSampler returns an under-sampler with the given target.
func NewRandomUnderSampler(target Target) *RandomUnderSampler {
	return &RandomUnderSampler{Target: target}
}

// FitResample returns the retained rows of X and y in their original order.
func (s *RandomUnderSampler) FitResample(X [][]float64, y []string) ([][]float64, []string, error) {
	if err := checkXY(X, y); err != nil {
		return nil, nil, err
	}
	target := s.Target
	if target == nil {
		target = PolicyAuto
	}
	resolved, err := target.resolve(kindUnder, y)
	if err != nil {
		return nil, nil, err
	}

	byClass := indicesByClass(y)
	rng := rand.New(rand.NewSource(s.Seed))

	keep := make([]bool, len(y))
	for i := range keep {
		keep[i] = true
	}
	for _, class := range sortedKeys(resolved) {
		pool := byClass[class]
		for i := range keep {
			if y[i] == class {
				keep[i] = false
			}
		}
		for _, p := range rng.Perm(len(pool))[:resolved[class]] {
			keep[pool[p]] = true
		}
	}

	var outX [][]float64
	var outY []string
	for i, kept := range keep {
		if kept {
			outX = append(outX, cloneRow(X[i]))
			outY = append(outY, y[i])
		}
	}
	return outX, outY, nil
}

package sampling

import "golang.org/x/exp/rand"

// RandomOverSampler duplicates randomly picked samples of the targeted
// classes until each reaches its resolved count. The original samples are
// always kept.
type RandomOverSampler struct {
	// Target defaults to PolicyAuto: every class but the majority is
	// raised to the majority count.
	Target Target
	// Seed makes resampling reproducible.
	Seed uint64
}

// NewRandomOverSampler returns an over-sampler with the given target.
func NewRandomOverSampler(target Target) *RandomOverSampler {
	return &RandomOverSampler{Target: target}
}

// FitResample returns X and y extended with duplicated samples.
func (s *RandomOverSampler) FitResample(X [][]float64, y []string) ([][]float64, []string, error) {
	if err := checkXY(X, y); err != nil {
		return nil, nil, err
	}
	target := s.Target
	if target == nil {
		target = PolicyAuto
	}
	resolved, err := target.resolve(kindOver, y)
	if err != nil {
		return nil, nil, err
	}

	counts := CountClasses(y)
	byClass := indicesByClass(y)
	rng := rand.New(rand.NewSource(s.Seed))

	outX := make([][]float64, 0, len(X))
	outY := make([]string, 0, len(y))
	for i, row := range X {
		outX = append(outX, cloneRow(row))
		outY = append(outY, y[i])
	}
	for _, class := range sortedKeys(resolved) {
		pool := byClass[class]
		for extra := resolved[class] - counts[class]; extra > 0; extra-- {
			picked := pool[rng.Intn(len(pool))]
			outX = append(outX, cloneRow(X[picked]))
			outY = append(outY, class)
		}
	}
	return outX, outY, nil
}

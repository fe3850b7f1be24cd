package sampling

import "gonum.org/v1/gonum/floats"

// TomekLinks is a cleaning method. Two samples form a Tomek link when
// they are each other's nearest neighbor and carry different labels;
// such pairs sit on the class boundary or are noise. Every member of a
// link whose class is in the target is removed. Unlike over- and
// under-sampling, the resulting counts are not equalized.
type TomekLinks struct {
	// Target defaults to PolicyAuto: samples may be removed from every
	// class but the minority.
	Target Target
}

// NewTomekLinks returns a cleaner with the given target.
func NewTomekLinks(target Target) *TomekLinks {
	return &TomekLinks{Target: target}
}

// FitResample returns X and y with all targeted link members removed.
func (s *TomekLinks) FitResample(X [][]float64, y []string) ([][]float64, []string, error) {
	if err := checkXY(X, y); err != nil {
		return nil, nil, err
	}
	target := s.Target
	if target == nil {
		target = PolicyAuto
	}
	resolved, err := target.resolve(kindClean, y)
	if err != nil {
		return nil, nil, err
	}

	nn := nearestNeighbors(X)
	remove := make([]bool, len(y))
	for i, j := range nn {
		// Mutual nearest neighbors with different labels form a link;
		// i < j visits each pair once.
		if i >= j || nn[j] != i || y[i] == y[j] {
			continue
		}
		if _, ok := resolved[y[i]]; ok {
			remove[i] = true
		}
		if _, ok := resolved[y[j]]; ok {
			remove[j] = true
		}
	}

	var outX [][]float64
	var outY []string
	for i, dropped := range remove {
		if !dropped {
			outX = append(outX, cloneRow(X[i]))
			outY = append(outY, y[i])
		}
	}
	return outX, outY, nil
}

// nearestNeighbors returns, for each row of X, the index of its closest
// other row by Euclidean distance. Brute force; fine at tutorial scale.
func nearestNeighbors(X [][]float64) []int {
	nn := make([]int, len(X))
	for i := range X {
		best, bestDist := -1, 0.0
		for j := range X {
			if i == j {
				continue
			}
			d := floats.Distance(X[i], X[j], 2)
			if best < 0 || d < bestDist {
				best, bestDist = j, d
			}
		}
		nn[i] = best
	}
	return nn
}

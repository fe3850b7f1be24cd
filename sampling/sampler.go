// Package sampling rebalances the class distribution of labeled datasets.
//
// Three families of samplers are provided: over-sampling duplicates
// samples of under-represented classes, under-sampling drops samples of
// over-represented ones, and cleaning methods remove ambiguous samples
// near class boundaries without aiming at exact counts. Which classes a
// sampler touches, and how many samples they end up with, is controlled
// by a Target.
package sampling

import "fmt"

// Sampler resamples a labeled dataset. The returned feature rows and
// labels are aligned by index; inputs are never mutated.
type Sampler interface {
	FitResample(X [][]float64, y []string) ([][]float64, []string, error)
}

func checkXY(X [][]float64, y []string) error {
	if len(X) != len(y) {
		return fmt.Errorf("X has %d rows but y has %d labels", len(X), len(y))
	}
	if len(y) == 0 {
		return fmt.Errorf("empty dataset")
	}
	return nil
}

// indicesByClass groups sample indices by their label, preserving the
// original order within each class.
func indicesByClass(y []string) map[string][]int {
	idx := make(map[string][]int)
	for i, label := range y {
		idx[label] = append(idx[label], i)
	}
	return idx
}

func cloneRow(row []float64) []float64 {
	return append([]float64(nil), row...)
}

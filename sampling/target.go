package sampling

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTarget reports a sampling target shape that the sampler
// family cannot accept. All target resolution errors wrap it.
var ErrInvalidTarget = errors.New("invalid sampling target")

// samplerKind identifies the family of a sampler, which decides how a
// target is resolved and which shapes it may take.
type samplerKind int

const (
	kindOver samplerKind = iota
	kindUnder
	kindClean
)

func (k samplerKind) String() string {
	switch k {
	case kindOver:
		return "over-sampling"
	case kindUnder:
		return "under-sampling"
	default:
		return "cleaning"
	}
}

// Target specifies which classes a sampler touches and how many samples
// they should end up with. Five shapes are supported: Counts, Ratio,
// Policy, Classes and TargetFunc.
//
// Resolution depends on the sampler family. For over- and under-sampling
// the resolved map holds the desired number of samples per targeted
// class. For cleaning methods only the keys matter: they are the classes
// samples may be removed from.
type Target interface {
	resolve(kind samplerKind, y []string) (map[string]int, error)
}

// Counts targets classes with desired absolute sample counts.
// Valid for over- and under-sampling; cleaning methods do not aim at
// exact counts and reject it.
type Counts map[string]int

func (c Counts) resolve(kind samplerKind, y []string) (map[string]int, error) {
	if kind == kindClean {
		return nil, fmt.Errorf("%w: cleaning methods accept a class list, not counts", ErrInvalidTarget)
	}
	counts := CountClasses(y)
	resolved := make(map[string]int, len(c))
	for _, class := range sortedKeys(c) {
		want := c[class]
		have, ok := counts[class]
		if !ok {
			return nil, fmt.Errorf("%w: class %q not present in y", ErrInvalidTarget, class)
		}
		if want < 0 {
			return nil, fmt.Errorf("%w: negative count %d for class %q", ErrInvalidTarget, want, class)
		}
		switch kind {
		case kindOver:
			if want < have {
				return nil, fmt.Errorf("%w: count %d for class %q is below the original %d; over-sampling can only add samples",
					ErrInvalidTarget, want, class, have)
			}
		case kindUnder:
			if want > have {
				return nil, fmt.Errorf("%w: count %d for class %q exceeds the original %d; under-sampling can only remove samples",
					ErrInvalidTarget, want, class, have)
			}
		}
		resolved[class] = want
	}
	return resolved, nil
}

// Ratio targets a binary dataset with a minority/majority ratio in (0, 1].
// Under-sampling keeps floor(minority/r) majority samples; over-sampling
// raises the minority to floor(r*majority) samples.
type Ratio float64

func (r Ratio) resolve(kind samplerKind, y []string) (map[string]int, error) {
	if kind == kindClean {
		return nil, fmt.Errorf("%w: cleaning methods do not accept a ratio", ErrInvalidTarget)
	}
	if r <= 0 || r > 1 {
		return nil, fmt.Errorf("%w: ratio %v outside (0, 1]", ErrInvalidTarget, float64(r))
	}
	counts := CountClasses(y)
	if len(counts) != 2 {
		return nil, fmt.Errorf("%w: a ratio requires a binary dataset, got %d classes", ErrInvalidTarget, len(counts))
	}
	minority := minorityClass(counts)
	majority := majorityClass(counts)
	switch kind {
	case kindUnder:
		want := int(float64(counts[minority]) / float64(r))
		if want > counts[majority] {
			return nil, fmt.Errorf("%w: ratio %v would require adding samples to class %q",
				ErrInvalidTarget, float64(r), majority)
		}
		return map[string]int{majority: want}, nil
	default:
		want := int(float64(r) * float64(counts[majority]))
		if want < counts[minority] {
			return nil, fmt.Errorf("%w: ratio %v would require removing samples from class %q",
				ErrInvalidTarget, float64(r), minority)
		}
		return map[string]int{minority: want}, nil
	}
}

// Policy selects targeted classes by their role in the distribution.
type Policy string

// Supported policies. Auto stands for NotMajority when over-sampling and
// NotMinority when under-sampling or cleaning.
const (
	PolicyMinority    Policy = "minority"
	PolicyMajority    Policy = "majority"
	PolicyNotMinority Policy = "not minority"
	PolicyNotMajority Policy = "not majority"
	PolicyAll         Policy = "all"
	PolicyAuto        Policy = "auto"
)

func (p Policy) resolve(kind samplerKind, y []string) (map[string]int, error) {
	policy := p
	if policy == PolicyAuto {
		if kind == kindOver {
			policy = PolicyNotMajority
		} else {
			policy = PolicyNotMinority
		}
	}

	counts := CountClasses(y)
	minority := minorityClass(counts)
	majority := majorityClass(counts)

	var targeted []string
	switch policy {
	case PolicyMinority:
		if kind == kindUnder {
			return nil, fmt.Errorf("%w: under-sampling the minority class is not supported; use %q", ErrInvalidTarget, PolicyNotMinority)
		}
		targeted = []string{minority}
	case PolicyMajority:
		if kind == kindOver {
			return nil, fmt.Errorf("%w: over-sampling the majority class is not supported; use %q", ErrInvalidTarget, PolicyNotMajority)
		}
		targeted = []string{majority}
	case PolicyNotMinority:
		for _, class := range sortedKeys(counts) {
			if class != minority {
				targeted = append(targeted, class)
			}
		}
	case PolicyNotMajority:
		for _, class := range sortedKeys(counts) {
			if class != majority {
				targeted = append(targeted, class)
			}
		}
	case PolicyAll:
		targeted = sortedKeys(counts)
	default:
		return nil, fmt.Errorf("%w: unknown policy %q", ErrInvalidTarget, string(p))
	}

	resolved := make(map[string]int, len(targeted))
	for _, class := range targeted {
		switch kind {
		case kindOver:
			// Equalize upwards.
			resolved[class] = counts[majority]
		case kindUnder:
			// Equalize downwards.
			resolved[class] = counts[minority]
		default:
			// Cleaning: only the key matters.
			resolved[class] = counts[class]
		}
	}
	return resolved, nil
}

// Classes lists the classes a cleaning method may remove samples from.
// Over- and under-sampling need counts and reject it.
type Classes []string

func (c Classes) resolve(kind samplerKind, y []string) (map[string]int, error) {
	if kind != kindClean {
		return nil, fmt.Errorf("%w: a class list is only valid for cleaning methods", ErrInvalidTarget)
	}
	counts := CountClasses(y)
	resolved := make(map[string]int, len(c))
	for _, class := range c {
		have, ok := counts[class]
		if !ok {
			return nil, fmt.Errorf("%w: class %q not present in y", ErrInvalidTarget, class)
		}
		resolved[class] = have
	}
	return resolved, nil
}

// TargetFunc computes a target from the label vector. The returned map is
// interpreted as Counts for over- and under-sampling, and its keys as the
// targeted Classes for cleaning methods.
type TargetFunc func(y []string) map[string]int

func (f TargetFunc) resolve(kind samplerKind, y []string) (map[string]int, error) {
	computed := f(y)
	if kind == kindClean {
		return Classes(sortedKeys(computed)).resolve(kind, y)
	}
	return Counts(computed).resolve(kind, y)
}

// CountClasses returns the number of occurrences of each label in y.
func CountClasses(y []string) map[string]int {
	counts := make(map[string]int)
	for _, label := range y {
		counts[label]++
	}
	return counts
}

// minorityClass returns the label with the fewest samples. Ties break on
// the lexicographically smallest label so resolution is deterministic.
func minorityClass(counts map[string]int) string {
	var best string
	for _, class := range sortedKeys(counts) {
		if best == "" || counts[class] < counts[best] {
			best = class
		}
	}
	return best
}

// majorityClass returns the label with the most samples.
func majorityClass(counts map[string]int) string {
	var best string
	for _, class := range sortedKeys(counts) {
		if best == "" || counts[class] > counts[best] {
			best = class
		}
	}
	return best
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

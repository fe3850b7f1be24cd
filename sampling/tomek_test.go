package sampling

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// linkData places one "b" sample between the two clusters so that it
// forms a Tomek link with the nearest "a" sample.
//
//	a: 0.0  0.1          b: 0.15  1.0  1.1
//
// 0.1 and 0.15 are mutual nearest neighbors with different labels.
func linkData() ([][]float64, []string) {
	X := [][]float64{{0.0}, {0.1}, {0.15}, {1.0}, {1.1}}
	y := []string{"a", "a", "b", "b", "b"}
	return X, y
}

func TestTomekLinksRemovesTargetedLinkMember(t *testing.T) {
	X, y := linkData()

	tl := NewTomekLinks(Classes{"b"})
	outX, outY, err := tl.FitResample(X, y)
	require.NoError(t, err)

	// Only the "b" member of the link goes; the "a" member stays.
	want := map[string]int{"a": 2, "b": 2}
	if diff := cmp.Diff(want, CountClasses(outY)); diff != "" {
		t.Errorf("class counts mismatch (-want +got):\n%s", diff)
	}
	for i, row := range outX {
		require.NotEqual(t, 0.15, row[0], "link member still present at row %d", i)
	}
}

func TestTomekLinksAllClasses(t *testing.T) {
	X, y := linkData()

	tl := NewTomekLinks(PolicyAll)
	_, outY, err := tl.FitResample(X, y)
	require.NoError(t, err)

	// Both members of the link are removed.
	want := map[string]int{"a": 1, "b": 2}
	if diff := cmp.Diff(want, CountClasses(outY)); diff != "" {
		t.Errorf("class counts mismatch (-want +got):\n%s", diff)
	}
}

func TestTomekLinksDefaultSparesMinority(t *testing.T) {
	X, y := linkData()

	// Auto targets "not minority"; "a" is the minority here, so the link
	// only loses its "b" member.
	tl := NewTomekLinks(nil)
	_, outY, err := tl.FitResample(X, y)
	require.NoError(t, err)

	want := map[string]int{"a": 2, "b": 2}
	if diff := cmp.Diff(want, CountClasses(outY)); diff != "" {
		t.Errorf("class counts mismatch (-want +got):\n%s", diff)
	}
}

func TestTomekLinksSeparatedClustersUntouched(t *testing.T) {
	X := [][]float64{{0.0}, {0.1}, {0.2}, {5.0}, {5.1}, {5.2}}
	y := []string{"a", "a", "a", "b", "b", "b"}

	tl := NewTomekLinks(PolicyAll)
	outX, outY, err := tl.FitResample(X, y)
	require.NoError(t, err)

	if diff := cmp.Diff(X, outX); diff != "" {
		t.Errorf("features changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(y, outY); diff != "" {
		t.Errorf("labels changed (-want +got):\n%s", diff)
	}
}

func TestTomekLinksRejectsCounts(t *testing.T) {
	X, y := linkData()

	tl := NewTomekLinks(Counts{"b": 2})
	_, _, err := tl.FitResample(X, y)
	require.ErrorIs(t, err, ErrInvalidTarget)

	tl = NewTomekLinks(Ratio(0.8))
	_, _, err = tl.FitResample(X, y)
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestNearestNeighbors(t *testing.T) {
	X := [][]float64{{0.0}, {0.1}, {1.0}}
	want := []int{1, 0, 1}
	if diff := cmp.Diff(want, nearestNeighbors(X)); diff != "" {
		t.Errorf("nearest neighbors mismatch (-want +got):\n%s", diff)
	}
}

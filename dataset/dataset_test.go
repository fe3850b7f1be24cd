package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const miniCSV = `f1,f2,species
1.0,2.0,a
3.0,4.0,b
5.0,6.0,a
`

func TestReadCSV(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(miniCSV), "species")
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"f1", "f2"}, ds.Features); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "a"}, ds.Y); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	wantX := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	if diff := cmp.Diff(wantX, ds.X); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSVMissingLabel(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(miniCSV), "target")
	require.Error(t, err)
}

func TestIris(t *testing.T) {
	iris := Iris()

	require.Equal(t, 150, iris.Len())
	require.Equal(t, 4, iris.NumFeatures())

	want := map[string]int{"setosa": 50, "versicolor": 50, "virginica": 50}
	if diff := cmp.Diff(want, iris.ClassCounts()); diff != "" {
		t.Errorf("class counts mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(miniCSV), "species")
	require.NoError(t, err)

	sub := ds.Select(func(label string) bool { return label == "a" })

	if diff := cmp.Diff([]string{"a", "a"}, sub.Y); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	wantX := [][]float64{{1, 2}, {5, 6}}
	if diff := cmp.Diff(wantX, sub.X); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(miniCSV), "species")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ds.WriteCSV(&buf))

	back, err := ReadCSV(&buf, "class")
	require.NoError(t, err)

	if diff := cmp.Diff(ds.X, back.X); diff != "" {
		t.Errorf("features did not survive the round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ds.Y, back.Y); diff != "" {
		t.Errorf("labels did not survive the round trip (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(miniCSV), "species")
	require.NoError(t, err)

	clone := ds.Clone()
	clone.X[0][0] = -1
	clone.Y[0] = "z"

	require.Equal(t, 1.0, ds.X[0][0])
	require.Equal(t, "a", ds.Y[0])
}

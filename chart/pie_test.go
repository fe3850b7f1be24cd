package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewPieOrdersByLabel(t *testing.T) {
	pie := NewPie(map[string]int{"virginica": 30, "setosa": 10, "versicolor": 20})

	if diff := cmp.Diff([]string{"setosa", "versicolor", "virginica"}, pie.Labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{10, 20, 30}, pie.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestSavePie(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.png")

	err := SavePie(map[string]int{"a": 10, "b": 20, "c": 30}, "class distribution", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestSavePieSingleClass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.png")

	err := SavePie(map[string]int{"a": 5}, "one class", path)
	require.NoError(t, err)
}

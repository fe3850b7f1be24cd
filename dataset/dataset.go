// Package dataset holds labeled feature data and its CSV round-tripping.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
)

//go:embed iris.csv
var irisCSV []byte

// Dataset is a feature matrix with one class label per row.
// Rows of X and entries of Y stay aligned by index.
type Dataset struct {
	X        [][]float64
	Y        []string
	Features []string
}

// ReadCSV loads a dataset from CSV. The column named by label becomes the
// class vector; every other column is parsed as a numeric feature.
func ReadCSV(r io.Reader, label string) (*Dataset, error) {
	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, fmt.Errorf("reading csv: %w", df.Err)
	}
	return FromDataFrame(df, label)
}

// FromDataFrame converts a gota dataframe into a Dataset.
func FromDataFrame(df dataframe.DataFrame, label string) (*Dataset, error) {
	names := df.Names()
	features := make([]string, 0, len(names))
	for _, name := range names {
		if name != label {
			features = append(features, name)
		}
	}
	if len(features) == len(names) {
		return nil, fmt.Errorf("label column %q not found", label)
	}

	ds := &Dataset{
		X:        make([][]float64, df.Nrow()),
		Y:        df.Col(label).Records(),
		Features: features,
	}
	for i := range ds.X {
		ds.X[i] = make([]float64, len(features))
	}
	for j, name := range features {
		col := df.Col(name).Float()
		for i, v := range col {
			ds.X[i][j] = v
		}
	}
	return ds, nil
}

// Iris returns the embedded Fisher iris reference dataset:
// 150 samples, 4 features, 3 balanced classes.
func Iris() *Dataset {
	ds, err := ReadCSV(bytes.NewReader(irisCSV), "species")
	if err != nil {
		// The embedded file is fixed at build time.
		panic(err)
	}
	return ds
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.Y) }

// NumFeatures returns the number of feature columns.
func (d *Dataset) NumFeatures() int { return len(d.Features) }

// ClassCounts returns the number of samples per class label.
func (d *Dataset) ClassCounts() map[string]int {
	counts := make(map[string]int)
	for _, label := range d.Y {
		counts[label]++
	}
	return counts
}

// Select returns a new dataset containing only the rows whose label
// satisfies keep. Feature rows are shared with the receiver.
func (d *Dataset) Select(keep func(label string) bool) *Dataset {
	out := &Dataset{Features: d.Features}
	for i, label := range d.Y {
		if keep(label) {
			out.X = append(out.X, d.X[i])
			out.Y = append(out.Y, label)
		}
	}
	return out
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		X:        make([][]float64, len(d.X)),
		Y:        append([]string(nil), d.Y...),
		Features: append([]string(nil), d.Features...),
	}
	for i, row := range d.X {
		out.X[i] = append([]float64(nil), row...)
	}
	return out
}

// WriteCSV writes the dataset back out as CSV, features first and the
// class column last, so the result can be fed to golearn instances.
func (d *Dataset) WriteCSV(w io.Writer) error {
	records := make([][]string, 0, d.Len()+1)
	header := append(append([]string(nil), d.Features...), "class")
	records = append(records, header)
	for i, row := range d.X {
		rec := make([]string, 0, len(row)+1)
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'f', -1, 64))
		}
		rec = append(rec, d.Y[i])
		records = append(records, rec)
	}
	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return fmt.Errorf("building dataframe: %w", df.Err)
	}
	return df.WriteCSV(w)
}

// Command resample-eval measures what rebalancing buys a classifier. It
// artificially imbalances the iris dataset, rebalances it with each
// sampler family and compares cross-validated KNN accuracy across the
// resulting distributions.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/sjwhitworth/golearn/knn"

	"github.com/kinokoberuji/imbalanced-learn/dataset"
	"github.com/kinokoberuji/imbalanced-learn/sampling"
)

func main() {
	seed := flag.Uint64("seed", 44111342, "seed for the random samplers")
	folds := flag.Int("folds", 5, "number of cross-validation folds")
	flag.Parse()

	// Seed the random number generator for reproducible fold assignment.
	rand.Seed(int64(*seed))

	iris := dataset.Iris()

	// Make the balanced reference set heavily imbalanced first, so the
	// samplers have something to repair.
	imbalanceTarget := sampling.Counts{"setosa": 50, "versicolor": 25, "virginica": 10}
	X, y, err := sampling.MakeImbalance(iris.X, iris.Y, imbalanceTarget, *seed)
	if err != nil {
		log.Fatal(err)
	}
	imbalanced := &dataset.Dataset{X: X, Y: y, Features: iris.Features}

	rus := sampling.NewRandomUnderSampler(sampling.PolicyAuto)
	rus.Seed = *seed
	ros := sampling.NewRandomOverSampler(sampling.PolicyAuto)
	ros.Seed = *seed

	steps := []struct {
		name    string
		sampler sampling.Sampler
	}{
		{"imbalanced", nil},
		{"random under-sampling", rus},
		{"random over-sampling", ros},
		{"Tomek links cleaning", sampling.NewTomekLinks(sampling.PolicyAuto)},
	}

	tmpDir, err := os.MkdirTemp("", "resample-eval")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Summarize every step in one table: the class counts it produced and
	// the cross-validated accuracy a KNN classifier reaches on it.
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Step", "setosa", "versicolor", "virginica", "Accuracy"})

	for i, step := range steps {
		ds := imbalanced
		if step.sampler != nil {
			X, y, err := step.sampler.FitResample(imbalanced.X, imbalanced.Y)
			if err != nil {
				log.Fatal(err)
			}
			ds = &dataset.Dataset{X: X, Y: y, Features: iris.Features}
		}

		mean, stdev, err := crossValidate(ds, filepath.Join(tmpDir, fmt.Sprintf("step%d.csv", i)), *folds)
		if err != nil {
			log.Fatal(err)
		}

		counts := ds.ClassCounts()
		table.Append([]string{
			step.name,
			fmt.Sprint(counts["setosa"]),
			fmt.Sprint(counts["versicolor"]),
			fmt.Sprint(counts["virginica"]),
			fmt.Sprintf("%.2f (+/- %.2f)", mean, stdev*2),
		})
	}
	table.Render()
}

// crossValidate round-trips the dataset through CSV into golearn
// instances and reports mean accuracy and its standard deviation over
// cross-validation folds of a KNN classifier.
func crossValidate(ds *dataset.Dataset, path string, folds int) (mean, stdev float64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, 0, err
	}
	if err := ds.WriteCSV(f); err != nil {
		f.Close()
		return 0, 0, err
	}
	if err := f.Close(); err != nil {
		return 0, 0, err
	}

	instances, err := base.ParseCSVToInstances(path, true)
	if err != nil {
		return 0, 0, err
	}
	cls := knn.NewKnnClassifier("euclidean", "linear", 2)
	cv, err := evaluation.GenerateCrossFoldValidationConfusionMatrices(instances, cls, folds)
	if err != nil {
		return 0, 0, err
	}
	mean, variance := evaluation.GetCrossValidatedMetric(cv, evaluation.GetAccuracy)
	return mean, math.Sqrt(variance), nil
}

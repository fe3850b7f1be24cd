// Command sampling-target shows the different usages of the sampling
// target parameter for the different families of samplers (over-sampling,
// under-sampling and cleaning methods). It walks the iris dataset through
// every target shape, prints the class distribution after each step and
// writes one pie-chart PNG per step.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kinokoberuji/imbalanced-learn/chart"
	"github.com/kinokoberuji/imbalanced-learn/dataset"
	"github.com/kinokoberuji/imbalanced-learn/sampling"
)

func main() {
	dataPath := flag.String("data", "", "CSV dataset to use instead of the embedded iris data")
	outDir := flag.String("out", "figures", "directory the pie charts are written to")
	seed := flag.Uint64("seed", 44111342, "seed for the random samplers")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// Load the iris dataset, either the embedded copy or a CSV given on
	// the command line.
	iris := dataset.Iris()
	if *dataPath != "" {
		f, err := os.Open(*dataPath)
		if err != nil {
			log.Fatal(err)
		}
		ds, err := dataset.ReadCSV(f, "species")
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		iris = ds
	}

	figure := newFigureWriter(*outDir)

	fmt.Printf("Information of the original iris data set:\n y: %v\n\n", iris.ClassCounts())
	figure.save(iris.Y, "Original iris distribution")

	// Creation of an imbalanced data set from a balanced data set.
	//
	// With a counts map, each key is a class of interest and the value the
	// number of samples desired in this class.
	countsTarget := sampling.Counts{"setosa": 10, "versicolor": 20, "virginica": 30}
	_, y, err := sampling.MakeImbalance(iris.X, iris.Y, countsTarget, *seed)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Information of the iris data set after making it imbalanced using a counts map:\n"+
		" sampling target: %v\n y: %v\n\n", countsTarget, sampling.CountClasses(y))
	figure.save(y, "Imbalanced with a counts map")

	// A target function gives full flexibility: it receives y and returns
	// the desired counts. Here a per-class float multiplier decides how
	// many samples each class keeps.
	multiplier := map[string]float64{"setosa": 0.5, "versicolor": 0.7, "virginica": 0.95}
	ratioMultiplier := sampling.TargetFunc(func(y []string) map[string]int {
		target := make(map[string]int)
		for class, count := range sampling.CountClasses(y) {
			target[class] = int(float64(count) * multiplier[class])
		}
		return target
	})
	X, y, err := sampling.MakeImbalance(iris.X, iris.Y, ratioMultiplier, *seed)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Information of the iris data set after making it imbalanced using a target function:\n"+
		" multiplier: %v\n y: %v\n\n", multiplier, sampling.CountClasses(y))
	figure.save(y, "Imbalanced with a target function")

	imbalanced := &dataset.Dataset{X: X, Y: y, Features: iris.Features}

	// A ratio target only makes sense between two classes, so keep the
	// extreme ones.
	binary := imbalanced.Select(func(label string) bool {
		return label == "setosa" || label == "virginica"
	})

	// For under-sampling methods the ratio r keeps floor(minority/r)
	// majority samples.
	ratio := sampling.Ratio(0.8)
	rus := sampling.NewRandomUnderSampler(ratio)
	rus.Seed = *seed
	_, y, err = rus.FitResample(binary.X, binary.Y)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Information of the iris data set after balancing using a ratio and an under-sampling method:\n"+
		" sampling target: %v\n y: %v\n\n", ratio, sampling.CountClasses(y))
	figure.save(y, "Ratio 0.8, under-sampling")

	// For over-sampling methods it raises the minority class to
	// floor(r*majority) samples.
	ros := sampling.NewRandomOverSampler(ratio)
	ros.Seed = *seed
	_, y, err = ros.FitResample(binary.X, binary.Y)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Information of the iris data set after balancing using a ratio and an over-sampling method:\n"+
		" sampling target: %v\n y: %v\n\n", ratio, sampling.CountClasses(y))
	figure.save(y, "Ratio 0.8, over-sampling")

	// A policy names the classes targeted by the resampling. With under-
	// and over-sampling the counts are equalized.
	rus = sampling.NewRandomUnderSampler(sampling.PolicyNotMinority)
	rus.Seed = *seed
	_, y, err = rus.FitResample(imbalanced.X, imbalanced.Y)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Information of the iris data set after balancing by under-sampling:\n"+
		" sampling target: %v\n y: %v\n\n", sampling.PolicyNotMinority, sampling.CountClasses(y))
	figure.save(y, "Policy 'not minority', under-sampling")

	ros = sampling.NewRandomOverSampler(sampling.PolicyNotMajority)
	ros.Seed = *seed
	_, y, err = ros.FitResample(imbalanced.X, imbalanced.Y)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Information of the iris data set after balancing by over-sampling:\n"+
		" sampling target: %v\n y: %v\n\n", sampling.PolicyNotMajority, sampling.CountClasses(y))
	figure.save(y, "Policy 'not majority', over-sampling")

	// With a cleaning method the counts are not equalized even if the
	// classes are targeted.
	tl := sampling.NewTomekLinks(sampling.PolicyNotMinority)
	_, y, err = tl.FitResample(imbalanced.X, imbalanced.Y)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Information of the iris data set after cleaning with Tomek links:\n"+
		" sampling target: %v\n y: %v\n\n", sampling.PolicyNotMinority, sampling.CountClasses(y))
	figure.save(y, "Policy 'not minority', Tomek links")

	// A counts map works for both under- and over-sampling but not for
	// cleaning methods; those take a class list instead.
	underCounts := sampling.Counts{"setosa": 10, "versicolor": 15, "virginica": 20}
	rus = sampling.NewRandomUnderSampler(underCounts)
	rus.Seed = *seed
	_, y, err = rus.FitResample(imbalanced.X, imbalanced.Y)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Information of the iris data set after balancing by under-sampling:\n"+
		" sampling target: %v\n y: %v\n\n", underCounts, sampling.CountClasses(y))
	figure.save(y, "Counts map, under-sampling")

	overCounts := sampling.Counts{"setosa": 25, "versicolor": 35, "virginica": 47}
	ros = sampling.NewRandomOverSampler(overCounts)
	ros.Seed = *seed
	_, y, err = ros.FitResample(imbalanced.X, imbalanced.Y)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Information of the iris data set after balancing by over-sampling:\n"+
		" sampling target: %v\n y: %v\n\n", overCounts, sampling.CountClasses(y))
	figure.save(y, "Counts map, over-sampling")

	// A class list names the classes a cleaning method may remove samples
	// from; over- and under-sampling reject it.
	classes := sampling.Classes{"setosa", "versicolor", "virginica"}
	tl = sampling.NewTomekLinks(classes)
	_, y, err = tl.FitResample(imbalanced.X, imbalanced.Y)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Information of the iris data set after cleaning with Tomek links:\n"+
		" sampling target: %v\n y: %v\n\n", classes, sampling.CountClasses(y))
	figure.save(y, "Class list, Tomek links")

	// A target function also drives the resampling algorithms themselves.
	underMultiplier := map[string]float64{"versicolor": 0.7, "virginica": 0.95}
	underFunc := sampling.TargetFunc(func(y []string) map[string]int {
		target := sampling.CountClasses(y)
		for class, m := range underMultiplier {
			target[class] = int(float64(target[class]) * m)
		}
		return target
	})
	rus = sampling.NewRandomUnderSampler(underFunc)
	rus.Seed = *seed
	_, y, err = rus.FitResample(imbalanced.X, imbalanced.Y)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Information of the iris data set after balancing using a target function:\n"+
		" multiplier: %v\n y: %v\n", underMultiplier, sampling.CountClasses(y))
	figure.save(y, "Target function, under-sampling")
}

// figureWriter numbers the pie charts in the order they are produced.
type figureWriter struct {
	dir string
	n   int
}

func newFigureWriter(dir string) *figureWriter {
	return &figureWriter{dir: dir}
}

func (f *figureWriter) save(y []string, title string) {
	f.n++
	name := filepath.Join(f.dir, fmt.Sprintf("%02d_pie.png", f.n))
	if err := chart.SavePie(sampling.CountClasses(y), title, name); err != nil {
		log.Fatal(err)
	}
}

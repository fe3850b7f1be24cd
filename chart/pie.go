// Package chart renders class-distribution figures with gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Pie draws one exploded wedge per class, sized by sample count, with the
// class label outside the wedge and its share of the total inside.
// It implements plot.Plotter and can be added to any gonum plot.
type Pie struct {
	Labels []string
	Values []float64

	// Explode is the wedge offset from the center as a fraction of the
	// pie radius.
	Explode float64
	// FontSize is the label text size.
	FontSize vg.Length
}

// NewPie builds a pie from a class-distribution summary. Wedges are
// ordered by class label so repeated renderings are identical.
func NewPie(counts map[string]int) *Pie {
	pie := &Pie{
		Explode:  0.1,
		FontSize: vg.Points(10),
	}
	for _, label := range sortedLabels(counts) {
		pie.Labels = append(pie.Labels, label)
		pie.Values = append(pie.Values, float64(counts[label]))
	}
	return pie
}

// Plot implements plot.Plotter. Wedges start at the positive x axis and
// run counter-clockwise, matching matplotlib's default.
func (p *Pie) Plot(c draw.Canvas, plt *plot.Plot) {
	var total float64
	for _, v := range p.Values {
		total += v
	}
	if total == 0 {
		return
	}

	width := c.Rectangle.Max.X - c.Rectangle.Min.X
	height := c.Rectangle.Max.Y - c.Rectangle.Min.Y
	center := vg.Point{
		X: c.Rectangle.Min.X + width/2,
		Y: c.Rectangle.Min.Y + height/2,
	}
	radius := 0.7 * min(width, height) / 2

	sty := text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, p.FontSize),
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: plt.TextHandler,
	}

	start := 0.0
	for i, v := range p.Values {
		sweep := 2 * math.Pi * v / total
		mid := start + sweep/2
		wedgeCenter := vg.Point{
			X: center.X + vg.Length(p.Explode*math.Cos(mid))*radius,
			Y: center.Y + vg.Length(p.Explode*math.Sin(mid))*radius,
		}

		var path vg.Path
		path.Move(wedgeCenter)
		path.Line(vg.Point{
			X: wedgeCenter.X + radius*vg.Length(math.Cos(start)),
			Y: wedgeCenter.Y + radius*vg.Length(math.Sin(start)),
		})
		path.Arc(wedgeCenter, radius, start, sweep)
		path.Close()
		c.SetColor(plotutil.Color(i))
		c.Fill(path)
		c.SetColor(color.Black)
		c.Stroke(path)

		// Share inside the wedge, label just outside it.
		share := vg.Point{
			X: wedgeCenter.X + 0.6*radius*vg.Length(math.Cos(mid)),
			Y: wedgeCenter.Y + 0.6*radius*vg.Length(math.Sin(mid)),
		}
		c.FillText(sty, share, fmt.Sprintf("%.1f%%", 100*v/total))
		label := vg.Point{
			X: wedgeCenter.X + 1.15*radius*vg.Length(math.Cos(mid)),
			Y: wedgeCenter.Y + 1.15*radius*vg.Length(math.Sin(mid)),
		}
		c.FillText(sty, label, p.Labels[i])

		start += sweep
	}
}

// DataRange implements plot.DataRanger so the plot has finite axes even
// though they are hidden.
func (p *Pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, 1, 0, 1
}

// SavePie renders the class distribution as a 4x4 inch pie-chart PNG.
func SavePie(counts map[string]int, title, path string) error {
	plt := plot.New()
	plt.Title.Text = title
	plt.HideAxes()
	plt.Add(NewPie(counts))
	if err := plt.Save(4*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving pie chart: %w", err)
	}
	return nil
}

func sortedLabels(counts map[string]int) []string {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

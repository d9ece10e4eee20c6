package visualize

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// VariantLabel names a variant for the surviving-weights bar chart. Callers
// typically derive these from the model names a rules.Rules compiled from.
type VariantLabel struct {
	Variant int
	Name    string
	Weight  float64
}

// Render writes an interactive HTML report of the recorded attempt to w:
// a heatmap of remaining possibilities per cell across every recorded
// step, a line chart of the total remaining possibilities over the same
// steps, and a bar chart of the weights carried by every variant in
// labels that decided at least one cell.
func (rec *Recorder) Render(w io.Writer, labels []VariantLabel) error {
	page := components.NewPage().SetPageTitle(fmt.Sprintf("Generation attempt %d", rec.attempt))

	page.AddCharts(rec.heatmap(), rec.totalLine(), rec.survivingWeightsBar(labels))

	return page.Render(w)
}

func (rec *Recorder) heatmap() *charts.HeatMap {
	hm := charts.NewHeatMap()

	steps := make([]string, len(rec.steps))
	for i := range steps {
		steps[i] = fmt.Sprintf("%d", i)
	}
	cells := make([]string, rec.cellCount)
	for i := range cells {
		cells[i] = fmt.Sprintf("cell %d", i)
	}

	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Remaining possibilities per cell"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: steps, Name: "step"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: cells, Name: "cell"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "continuous",
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(rec.numVariants),
		}),
	)

	data := make([]opts.HeatMapData, 0, len(rec.steps)*rec.cellCount)
	for step, frame := range rec.steps {
		for cell, remaining := range frame {
			data = append(data, opts.HeatMapData{Value: []interface{}{step, cell, remaining}})
		}
	}
	hm.AddSeries("remaining", data)
	return hm
}

func (rec *Recorder) totalLine() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Total remaining possibilities"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "remaining"}),
	)

	steps := make([]string, len(rec.total))
	items := make([]opts.LineData, len(rec.total))
	for i, v := range rec.total {
		steps[i] = fmt.Sprintf("%d", i)
		items[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(steps).AddSeries("total remaining", items)
	return line
}

func (rec *Recorder) survivingWeightsBar(labels []VariantLabel) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Surviving variant weights"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "variant"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "weight"}),
	)

	surviving := make(map[int]bool, len(rec.finalVariant))
	for _, v := range rec.finalVariant {
		surviving[v] = true
	}

	var names []string
	var items []opts.BarData
	for _, l := range labels {
		if !surviving[l.Variant] {
			continue
		}
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("variant %d", l.Variant)
		}
		names = append(names, name)
		items = append(items, opts.BarData{Value: l.Weight})
	}
	bar.SetXAxis(names).AddSeries("weight", items)
	return bar
}

package patrimoine

import (
	"fmt"

	"github.com/vicanso/go-charts/v2"
)

// ChartOptions selects what RenderChart draws.
type ChartOptions struct {
	Title      string
	Total      bool // draw the total net worth line
	Categories bool // draw one line per category
	Width      int  // pixels, 0 for default
	Height     int  // pixels, 0 for default
}

// RenderChart draws the valuation series as a PNG line chart.
//
// Dates where a category has no defined value are drawn as gaps, not as
// zeros, matching the series semantics.
func RenderChart(v *Valuation, opts ChartOptions) ([]byte, error) {
	if v.Len() == 0 {
		return nil, fmt.Errorf("nothing to chart: the valuation is empty")
	}

	xLabels := make([]string, 0, v.Len())
	for _, day := range v.Days() {
		xLabels = append(xLabels, day.Format("2006-01-02"))
	}

	var names []string
	var values [][]float64

	if opts.Total {
		line := make([]float64, 0, v.Len())
		for _, p := range v.Total() {
			line = append(line, p.Total.InexactFloat64())
		}
		names = append(names, "Total")
		values = append(values, line)
	}

	if opts.Categories {
		byCategory := v.ByCategory()
		for _, c := range v.Categories() {
			line := make([]float64, 0, v.Len())
			for _, p := range byCategory {
				if value, ok := p.Values[string(c)]; ok {
					line = append(line, value.InexactFloat64())
				} else {
					line = append(line, charts.GetNullValue())
				}
			}
			names = append(names, string(c))
			values = append(values, line)
		}
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("nothing to chart: no series selected")
	}

	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 1000
	}
	if height == 0 {
		height = 600
	}

	splitNumber := 6
	if len(xLabels) <= 30 {
		splitNumber = max(len(xLabels)/3, 3)
	}

	painter, err := charts.LineRender(values,
		charts.TitleTextOptionFunc(opts.Title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			SplitNumber: splitNumber,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(width),
		charts.HeightOptionFunc(height),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return painter.Bytes()
}

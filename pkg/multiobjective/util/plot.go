package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

// PlotFront renders a scatter plot of a front's fitness values, optionally
// overlaid with the problem's true Pareto front when the domain implements
// framework.ParetoReference. Only two-objective fronts can be plotted.
func PlotFront(w io.Writer, front framework.Front, domain framework.ProblemDomain, algorithmName string) error {
	if len(front) == 0 {
		return fmt.Errorf("front is empty for %s", domain.Name())
	}
	if len(front[0].Fitness) != 2 {
		return fmt.Errorf("can only plot 2D fronts for %s", domain.Name())
	}

	// Create scatter chart
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Results for %s", algorithmName, domain.Name()),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	if ref, ok := domain.(framework.ParetoReference); ok {
		trueParetoFront := ref.TrueParetoFront(100)
		trueX := make([]opts.ScatterData, len(trueParetoFront))
		for i, p := range trueParetoFront {
			trueX[i] = opts.ScatterData{
				Value:      p,
				Symbol:     "circle",
				SymbolSize: 10,
			}
		}
		scatter.AddSeries("True Pareto Front", trueX)
	}

	foundX := make([]opts.ScatterData, len(front))
	for i, s := range front {
		foundX[i] = opts.ScatterData{
			Value:      []float64{s.Fitness[0], s.Fitness[1]},
			Symbol:     "triangle",
			SymbolSize: 10,
		}
	}

	scatter.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), foundX).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	return scatter.Render(w)
}

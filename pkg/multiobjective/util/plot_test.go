package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/benchmarks"
	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

func front2D() framework.Front {
	return framework.Front{
		framework.NewIndividualStats(0, framework.FitnessVector{0.1, 0.9}, &benchmarks.StrategyParams{}),
		framework.NewIndividualStats(1, framework.FitnessVector{0.5, 0.3}, &benchmarks.StrategyParams{}),
	}
}

func TestPlotFrontRendersHTML(t *testing.T) {
	var buf bytes.Buffer
	domain := benchmarks.NewZDT1(3, 1)
	if err := PlotFront(&buf, front2D(), domain, "Elitist-NSGA"); err != nil {
		t.Fatalf("PlotFront: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "Elitist-NSGA") {
		t.Error("rendered chart does not mention the algorithm")
	}
	if !strings.Contains(html, "True Pareto Front") {
		t.Error("reference front missing for a domain with a known Pareto front")
	}
}

func TestPlotFrontWithoutReference(t *testing.T) {
	var buf bytes.Buffer
	domain := benchmarks.NewStrategySearch(100, 1)
	if err := PlotFront(&buf, front2D(), domain, "Elitist-NSGA"); err != nil {
		t.Fatalf("PlotFront: %v", err)
	}
	if strings.Contains(buf.String(), "True Pareto Front") {
		t.Error("reference series rendered for a domain without a known front")
	}
}

func TestPlotFrontRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	domain := benchmarks.NewZDT1(3, 1)

	if err := PlotFront(&buf, nil, domain, "x"); err == nil {
		t.Error("empty front accepted")
	}

	threeD := framework.Front{
		framework.NewIndividualStats(0, framework.FitnessVector{1, 2, 3}, &benchmarks.StrategyParams{}),
	}
	if err := PlotFront(&buf, threeD, domain, "x"); err == nil {
		t.Error("three-objective front accepted for a 2D plot")
	}
}

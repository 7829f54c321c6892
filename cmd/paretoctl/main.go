package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/algorithms"
	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/benchmarks"
	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/util"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML run configuration")
	problem := flag.String("problem", "", "problem to optimize: zdt1 or strategy")
	generations := flag.Int("generations", 0, "override the generation cap")
	population := flag.Int("population", 0, "override the population size")
	seed := flag.Uint64("seed", 0, "override the RNG seed")
	plotPath := flag.String("plot", "", "write an HTML scatter of the final Pareto front")

	klog.InitFlags(nil)
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	flag.Parse()

	if err := run(*configPath, *problem, *generations, *population, *seed, *plotPath); err != nil {
		fmt.Fprintf(os.Stderr, "paretoctl: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, problem string, generations, population int, seed uint64, plotPath string) error {
	cfg, err := loadRunConfig(configPath)
	if err != nil {
		return err
	}
	if problem != "" {
		cfg.Problem = problem
	}
	if generations > 0 {
		cfg.Generations = generations
	}
	if population > 0 {
		cfg.PopulationSize = population
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if plotPath != "" {
		cfg.PlotPath = plotPath
	}

	domain, err := buildDomain(cfg)
	if err != nil {
		return err
	}

	engine, err := algorithms.NewElitistGA(cfg.engineConfig(), domain)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(klog.NewContext(context.Background(), klog.Background()), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("%-12s %-14s %-14s %-14s %-8s %s\n", "GENERATION", "BEST", "MEAN", "WORST", "STALLED", "ELAPSED")
	var lastFront framework.Front
	seq := engine.Reports(ctx)
	for seq.Next() {
		report := seq.Report()
		fmt.Printf("%-12d %-14.6g %-14.6g %-14.6g %-8d %s\n",
			report.Stats.Iteration,
			report.Stats.BestMetric,
			report.Stats.Mean[0],
			report.Stats.Worst[0],
			report.Stats.StalledFor,
			report.Snapshot.Elapsed)
		lastFront = report.Snapshot.Fronts[0]
	}
	if err := seq.Err(); err != nil {
		return err
	}

	best := seq.Best()
	fmt.Printf("best fitness: %v\n", best.Fitness)

	if cfg.PlotPath != "" && lastFront != nil {
		f, err := os.Create(cfg.PlotPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := util.PlotFront(f, lastFront, domain, engine.Name()); err != nil {
			return err
		}
		fmt.Printf("front plot written to %s\n", cfg.PlotPath)
	}
	return nil
}

func buildDomain(cfg runConfig) (framework.ProblemDomain, error) {
	switch cfg.Problem {
	case "zdt1":
		return benchmarks.NewZDT1(30, cfg.Seed), nil
	case "strategy":
		return benchmarks.NewStrategySearch(1500, cfg.Seed), nil
	default:
		return nil, fmt.Errorf("unknown problem %q (want zdt1 or strategy)", cfg.Problem)
	}
}

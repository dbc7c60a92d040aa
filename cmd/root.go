package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Arthurbdt/inventory-simulation/sim"
	"github.com/Arthurbdt/inventory-simulation/sim/experiment"
	"github.com/Arthurbdt/inventory-simulation/sim/optimize"
	"github.com/Arthurbdt/inventory-simulation/sim/trace"
)

var (
	// Shared CLI flags
	seed       int64  // Base seed; replication i uses seed + i
	logLevel   string // Log verbosity level
	workers    int    // Parallel replication workers (0 = one per CPU)
	jsonOutput bool   // Emit results as JSON instead of text

	// Inventory model flags
	reorderPoint     int     // Policy reorder point s
	orderUpTo        int     // Policy order-up-to level S
	horizonMonths    float64 // Simulated months per replication
	initialInventory int     // Units on hand at t=0

	// Experiment flags
	replications   int     // Independent replications per experiment
	confidence     float64 // Confidence level for the interval estimate
	experimentFile string  // YAML experiment config (overrides model flags)
	traceLevel     string  // "none" or "path"

	// Optimizer flags
	searchReorderPoint int // Starting reorder point for the search
	searchOrderUpTo    int // Starting order-up-to level for the search
	searchIterations   int // Candidate evaluations in the local search
	searchRuns         int // Replications per candidate evaluation
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "inventory-sim",
	Short: "Discrete-event simulator for (s, S) inventory policies",
}

// configureLogging applies the --log flag process-wide.
func configureLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd estimates the monthly cost of a single policy.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Estimate the monthly operating cost of one (s, S) policy",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()

		if !trace.IsValidLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q (valid: none, path)", traceLevel)
		}

		cfg, err := buildRunConfig()
		if err != nil {
			logrus.Fatalf("Invalid experiment configuration: %v", err)
		}

		summary, err := experiment.Run(*cfg)
		if err != nil {
			logrus.Fatalf("Experiment failed: %v", err)
		}
		printSummary(cfg, summary)

		if trace.Level(traceLevel) == trace.LevelPath {
			printTracedReplication(cfg)
		}
	},
}

// optimizeCmd searches the policy space by greedy local search.
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search for a low-cost (s, S) policy by greedy local search",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()

		evalCfg := experiment.RunConfig{
			Model:        sim.Config{HorizonMonths: horizonMonths},
			Replications: searchRuns,
			Seed:         seed,
			Workers:      workers,
		}
		evaluator := func(p sim.Policy) (float64, error) {
			return experiment.EvaluatePolicy(evalCfg, p)
		}

		start := sim.Policy{ReorderPoint: searchReorderPoint, OrderUpTo: searchOrderUpTo}
		result, err := optimize.Search(start, evaluator, optimize.Options{
			Iterations: searchIterations,
			Seed:       seed,
		})
		if err != nil {
			logrus.Fatalf("Search failed: %v", err)
		}
		printSearchResult(result)
	},
}

// buildRunConfig assembles the experiment from the YAML file when given,
// otherwise from the model flags.
func buildRunConfig() (*experiment.RunConfig, error) {
	if experimentFile != "" {
		cfg, err := LoadExperimentConfig(experimentFile)
		if err != nil {
			return nil, err
		}
		cfg.Model.ApplyDefaults()
		return cfg, nil
	}

	initial := initialInventory
	cfg := &experiment.RunConfig{
		Model: sim.Config{
			Policy:           sim.Policy{ReorderPoint: reorderPoint, OrderUpTo: orderUpTo},
			HorizonMonths:    horizonMonths,
			InitialInventory: &initial,
		},
		Replications: replications,
		Confidence:   confidence,
		Seed:         seed,
		Workers:      workers,
	}
	cfg.Model.ApplyDefaults()
	return cfg, nil
}

func printSummary(cfg *experiment.RunConfig, s *experiment.Summary) {
	if jsonOutput {
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			logrus.Fatalf("Encoding summary: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("Policy (s=%d, S=%d), %g months, %d replications (base seed %d)\n",
		cfg.Model.Policy.ReorderPoint, cfg.Model.Policy.OrderUpTo,
		cfg.Model.HorizonMonths, len(s.Results), cfg.Seed)
	fmt.Printf("Mean monthly cost: %.2f +/- %.2f (%g%% confidence)\n",
		s.MeanMonthlyCost, s.HalfWidth, s.Confidence*100)
	fmt.Printf("  ordering %.2f, holding %.2f, shortage %.2f\n",
		s.MeanOrderCost, s.MeanHoldingCost, s.MeanShortageCost)
	for _, f := range s.Failures {
		fmt.Printf("  %s\n", f)
	}
}

// printTracedReplication reruns the base-seed replication with recording
// on and prints the level-path summary.
func printTracedReplication(cfg *experiment.RunConfig) {
	s, err := sim.NewSimulator(cfg.Model, cfg.Seed)
	if err != nil {
		logrus.Fatalf("Building traced replication: %v", err)
	}
	s.Recorder = trace.NewRecorder()
	if _, err := s.Run(); err != nil {
		logrus.Fatalf("Traced replication failed: %v", err)
	}

	ts := trace.Summarize(s.Recorder, s.Config.HorizonMonths)
	if jsonOutput {
		out, err := json.MarshalIndent(ts, "", "  ")
		if err != nil {
			logrus.Fatalf("Encoding trace summary: %v", err)
		}
		fmt.Println(string(out))
		return
	}
	fmt.Printf("Trace of replication at seed %d:\n", cfg.Seed)
	fmt.Printf("  orders placed %d (%d units), mean lead time %.3f months\n",
		ts.OrdersPlaced, ts.UnitsOrdered, ts.MeanLeadTime)
	fmt.Printf("  peak on hand %d, peak backlog %d, %.1f%% of horizon backordered\n",
		ts.PeakOnHand, ts.PeakBacklog, ts.BacklogFraction*100)
}

func printSearchResult(r *optimize.Result) {
	if jsonOutput {
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			logrus.Fatalf("Encoding search result: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("Search path (%d evaluations):\n", r.Evaluations)
	for _, st := range r.Path {
		fmt.Printf("  (s=%d, S=%d) cost %.2f\n", st.Policy.ReorderPoint, st.Policy.OrderUpTo, st.Cost)
	}
	fmt.Printf("Best: (s=%d, S=%d) at mean monthly cost %.2f\n",
		r.Best.ReorderPoint, r.Best.OrderUpTo, r.BestCost)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Base seed; replication i uses seed+i")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Parallel replication workers (0 = one per CPU)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")

	// Inventory model configs
	runCmd.Flags().IntVar(&reorderPoint, "reorder-point", 30, "Reorder point s: review orders when the level falls below this")
	runCmd.Flags().IntVar(&orderUpTo, "order-up-to", 55, "Order-up-to level S")
	runCmd.Flags().Float64Var(&horizonMonths, "horizon", sim.DefaultHorizonMonths, "Simulated months per replication")
	runCmd.Flags().IntVar(&initialInventory, "initial-inventory", sim.DefaultInitialInventory, "Units on hand at the start of each replication")

	// Experiment configs
	runCmd.Flags().IntVar(&replications, "replications", 10, "Independent replications")
	runCmd.Flags().Float64Var(&confidence, "confidence", experiment.DefaultConfidence, "Confidence level for the interval estimate")
	runCmd.Flags().StringVar(&experimentFile, "experiment", "", "YAML experiment config; overrides model flags")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace recording (none, path)")

	// Local search configs
	optimizeCmd.Flags().IntVar(&searchReorderPoint, "reorder-point", 60, "Starting reorder point s")
	optimizeCmd.Flags().IntVar(&searchOrderUpTo, "order-up-to", 80, "Starting order-up-to level S")
	optimizeCmd.Flags().Float64Var(&horizonMonths, "horizon", sim.DefaultHorizonMonths, "Simulated months per replication")
	optimizeCmd.Flags().IntVar(&searchIterations, "iterations", 30, "Candidate evaluations in the local search")
	optimizeCmd.Flags().IntVar(&searchRuns, "eval-replications", 5, "Replications averaged per candidate")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(optimizeCmd)
}

// Package main provides the hoard-bench CLI tool for comparing cache
// eviction policies on recorded traces or synthetic workloads.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hoardlib/hoard"
	"github.com/hoardlib/hoard/benchmark/analysis"
	"github.com/hoardlib/hoard/benchmark/reporting"
	"github.com/hoardlib/hoard/benchmark/simulation"
	"github.com/hoardlib/hoard/benchmark/trace"
	"github.com/hoardlib/hoard/benchmark/workload"
)

var (
	traceFile    string
	workloadName string
	ops          int
	universe     uint64
	capacity     int
	segmentSize  int
	policyNames  []string
	withBaseline bool
	outputFormat string
	outputFile   string
	seed         int64
)

var rootCmd = &cobra.Command{
	Use:   "hoard-bench",
	Short: "Benchmark cache eviction policies",
	Long: `hoard-bench replays key-access sequences against the hoard cache under
each eviction policy and compares the resulting hit rates.

The sequence comes either from a recorded trace file (one decimal key
per line, optionally zstd-compressed) or from a synthetic workload
generator.

Examples:
  # Compare all policies on a Zipf workload
  hoard-bench run --workload zipf --ops 100000 --capacity 1024

  # Replay a recorded trace, markdown report
  hoard-bench run --trace access.log.zst --format markdown --output report.md

  # LRU against the hashicorp/golang-lru baseline
  hoard-bench run --policies lru --baseline`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark",
	RunE:  runBenchmark,
}

func init() {
	runCmd.Flags().StringVarP(&traceFile, "trace", "t", "", "trace file with one key per line (supports .zst)")
	runCmd.Flags().StringVarP(&workloadName, "workload", "w", "zipf", "synthetic workload: zipf, uniform, loop, hotspot")
	runCmd.Flags().IntVar(&ops, "ops", 100000, "number of accesses for synthetic workloads")
	runCmd.Flags().Uint64Var(&universe, "universe", 16384, "key universe size for synthetic workloads")
	runCmd.Flags().IntVarP(&capacity, "capacity", "c", 1024, "cache capacity in entries")
	runCmd.Flags().IntVar(&segmentSize, "segment", 1000, "accesses per hit-rate sample")
	runCmd.Flags().StringSliceVarP(&policyNames, "policies", "p", []string{"lru", "lfu", "oldest-insertion"}, "policies to compare")
	runCmd.Flags().BoolVar(&withBaseline, "baseline", false, "include hashicorp/golang-lru as a baseline")
	runCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format: text, markdown")
	runCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "seed for synthetic workloads")

	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	keys, sourceName, err := loadKeys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("no accesses to replay")
	}

	targets, err := buildTargets()
	if err != nil {
		return err
	}

	// Replay each policy concurrently; every target gets its own copy
	// of the key sequence index so results stay independent.
	results := make([]*simulation.Result, len(targets))
	var g errgroup.Group
	for i, target := range targets {
		g.Go(func() error {
			results[i] = simulation.Replay(target, keys, segmentSize)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	comparisons := analysis.CompareAll(results, results[0].TargetName)

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch outputFormat {
	case "markdown":
		report := reporting.NewMarkdownReport(out)
		report.WriteHeader("Cache policy benchmark")
		report.WriteMethodology(sourceName, len(keys), capacity, segmentSize)
		report.WriteSummaryTable(results)
		for _, comp := range comparisons {
			report.WriteComparison(comp)
		}
	case "text":
		reporting.WriteText(out, results, comparisons)
	default:
		return fmt.Errorf("unknown format %q", outputFormat)
	}

	return nil
}

// loadKeys returns the access sequence and a name describing its source.
func loadKeys() ([]uint64, string, error) {
	if traceFile == "" {
		gen, err := buildWorkload()
		if err != nil {
			return nil, "", err
		}
		return gen.Keys(ops), gen.Name(), nil
	}

	file, err := os.Open(traceFile)
	if err != nil {
		return nil, "", fmt.Errorf("opening trace file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(traceFile, ".zst") {
		decoder, err := zstd.NewReader(file)
		if err != nil {
			return nil, "", fmt.Errorf("creating zstd decoder: %w", err)
		}
		defer decoder.Close()
		reader = decoder
	}

	keys, err := trace.Read(reader)
	if err != nil {
		return nil, "", err
	}
	return keys, "trace:" + traceFile, nil
}

func buildWorkload() (workload.Generator, error) {
	switch workloadName {
	case "zipf":
		return workload.NewZipf(universe, 1.2, seed), nil
	case "uniform":
		return workload.NewUniform(universe, seed), nil
	case "loop":
		return workload.NewLoop(universe), nil
	case "hotspot":
		return workload.NewHotspot(universe, 0.1, 0.9, seed), nil
	default:
		return nil, fmt.Errorf("unknown workload %q", workloadName)
	}
}

func buildTargets() ([]simulation.Target, error) {
	var targets []simulation.Target
	for _, name := range policyNames {
		policy, err := hoard.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		target, err := simulation.NewHoardTarget(policy, capacity)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}

	if withBaseline {
		baseline, err := simulation.NewBaselineLRU(capacity)
		if err != nil {
			return nil, err
		}
		targets = append(targets, baseline)
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no policies selected")
	}
	return targets, nil
}

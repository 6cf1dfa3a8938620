// ABOUTME: The run subcommand: churn cyclic garbage and report collector stats
// ABOUTME: Optionally serves /metrics and /snapshot.json over HTTP

package cmd

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/olekukonko/tablewriter"

	"github.com/prateek/cyclegc/gc"
	"github.com/prateek/cyclegc/metrics"
	"github.com/prateek/cyclegc/snapshot"
)

var (
	runRings   int
	runLength  int
	runBallast int
	runRounds  int
	runDrop    float64
	runSeed    int64
	serveAddr  string
	dumpPath   string
	dumpFormat string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Churn cyclic workloads through the collector",
	Long: `Build rings of mutually referencing allocations, drop a fraction of the
external handles each round, and let threshold-triggered collection reclaim
the dead cycles. Prints a statistics table when done.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runRings, "rings", 50, "rings built per round")
	runCmd.Flags().IntVar(&runLength, "length", 8, "cells per ring")
	runCmd.Flags().IntVar(&runBallast, "ballast", 64, "ballast bytes per cell")
	runCmd.Flags().IntVar(&runRounds, "rounds", 20, "churn rounds")
	runCmd.Flags().Float64Var(&runDrop, "drop", 0.9, "fraction of ring handles dropped per round")
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "workload RNG seed")
	runCmd.Flags().StringVar(&serveAddr, "serve", "", "serve /metrics and /snapshot.json on this address after the run")
	runCmd.Flags().StringVar(&dumpPath, "dump", "", "write a final heap snapshot to this file")
	runCmd.Flags().StringVar(&dumpFormat, "format", "json", "snapshot format: json or dot")
}

func runRun(cmd *cobra.Command, args []string) error {
	h, log, err := newHeap()
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(runSeed))

	start := time.Now()
	var live []gc.Gc[*cell]
	for round := 0; round < runRounds; round++ {
		live = append(live, churn(h, rng, runRings, runLength, runBallast, runDrop)...)
	}
	h.Collect()
	elapsed := time.Since(start)

	log.Info().
		Int("rounds", runRounds).
		Int("surviving_rings", len(live)).
		Dur("took", elapsed).
		Msg("churn complete")

	printStats(h.Stats(), elapsed)

	if dumpPath != "" {
		if err := writeSnapshot(h, dumpPath, dumpFormat); err != nil {
			return err
		}
		log.Info().Str("path", dumpPath).Str("format", dumpFormat).Msg("snapshot written")
	}

	if serveAddr != "" {
		// The workload is quiescent from here on, so scrapes and snapshot
		// reads see a stable heap.
		return serve(h, serveAddr, log)
	}
	return nil
}

func printStats(stats gc.Stats, elapsed time.Duration) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Stat", "Value")

	table.Append([]string{"Live objects", fmt.Sprintf("%d", stats.Live)})
	table.Append([]string{"Live bytes", fmt.Sprintf("%d", stats.LiveBytes)})
	table.Append([]string{"Allocations", fmt.Sprintf("%d", stats.Allocations)})
	table.Append([]string{"Collections", fmt.Sprintf("%d", stats.Collections)})
	table.Append([]string{"Freed", fmt.Sprintf("%d", stats.Freed)})
	table.Append([]string{"Finalizers run", fmt.Sprintf("%d", stats.FinalizersRun)})
	table.Append([]string{"Threshold bytes", fmt.Sprintf("%d", stats.ThresholdBytes)})
	table.Append([]string{"Elapsed", elapsed.String()})

	table.Render()
}

func writeSnapshot(h *gc.Heap, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gcstress: %w", err)
	}
	defer f.Close()

	if err := snapshot.Export(f, snapshot.Capture(h), format); err != nil {
		return fmt.Errorf("gcstress: %w", err)
	}
	return nil
}

func serve(h *gc.Heap, addr string, log zerolog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewHeapCollector(h))

	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.HandleFunc("/snapshot.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := snapshot.Export(w, snapshot.Capture(h), "json"); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	log.Info().Str("addr", addr).Msg("serving")
	return http.ListenAndServe(addr, r)
}

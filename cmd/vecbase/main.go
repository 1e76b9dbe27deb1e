// Command vecbase runs the engine's TPC-H query suite against a
// directory of dbgen-produced .tbl files, replacing run.cpp's
// getopt-based flag parsing and query-name dispatch with cobra.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ansrivas/vecbase/internal/engine"
	"github.com/ansrivas/vecbase/internal/primitive"
	"github.com/ansrivas/vecbase/internal/tpch"
	"github.com/ansrivas/vecbase/internal/vlog"
)

type flags struct {
	path       string
	query      string
	enginePick string
	reps       int
	threads    int
	vectorSize int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "vecbase",
		Short: "columnar vectorized TPC-H query engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	// p: path, q: query, e: engine, r: reps, t: threads, v: vectorSize —
	// the same letters run.cpp's getopt loop used.
	cmd.Flags().StringVarP(&f.path, "path", "p", "", "directory of TPC-H .tbl files (required)")
	cmd.Flags().StringVarP(&f.query, "query", "q", "6", "query number to run")
	cmd.Flags().StringVarP(&f.enginePick, "engine", "e", "v", "execution strategy: v (vectorized) or h (compiled)")
	cmd.Flags().IntVarP(&f.reps, "reps", "r", 1, "repetitions")
	cmd.Flags().IntVarP(&f.threads, "threads", "t", runtime.GOMAXPROCS(0), "worker thread count")
	cmd.Flags().IntVarP(&f.vectorSize, "vector-size", "v", 1024, "batch row-count bound")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func run(f *flags) error {
	db, err := tpch.LoadDatabase(f.path)
	if err != nil {
		return errors.Wrap(err, "vecbase: load database")
	}

	if f.query != "6" {
		return errors.Errorf("vecbase: query %q is not implemented", f.query)
	}

	strategy := engine.Vectorized
	if f.enginePick == "h" {
		strategy = engine.Compiled
	}

	// JoinBoncz=1 mirrors the reference engine's environment-variable
	// probe-algorithm override, captured once here rather than read
	// mid-query.
	cfg := primitive.Config{JoinBoncz: os.Getenv("JoinBoncz") == "1"}

	log := vlog.With("query", f.query, "engine", f.enginePick, "threads", f.threads, "vectorSize", f.vectorSize)
	log.Info("starting run")

	for i := 0; i < f.reps; i++ {
		start := time.Now()
		revenue, err := engine.RunQuery(db, engine.Options{
			NThreads:        f.threads,
			VectorSize:      f.vectorSize,
			Strategy:        strategy,
			PrimitiveConfig: cfg,
		})
		if err != nil {
			return errors.Wrap(err, "vecbase: run query")
		}
		log.Info("repetition complete", "rep", i, "elapsed", time.Since(start), "revenue", revenue)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/turingmul/internal/automation"
	"github.com/san-kum/turingmul/internal/config"
	"github.com/san-kum/turingmul/internal/export"
	"github.com/san-kum/turingmul/internal/metrics"
	"github.com/san-kum/turingmul/internal/runner"
	"github.com/san-kum/turingmul/internal/storage"
	"github.com/san-kum/turingmul/internal/turing"
)

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	results, runErr := automation.RunScenario(cmd.Context(), scenario, st, logger)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tA\tB\tPRODUCT\tSTEPS\tRUN")
	for i, sr := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%s\n",
			i+1, sr.Step.Multiplier, sr.Step.Multiplicand, sr.Result.Product, sr.Result.Steps, sr.RunID)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

func verifyGrid(cmd *cobra.Command, args []string) error {
	if verifyMax < 0 {
		return fmt.Errorf("max must not be negative, got %d", verifyMax)
	}
	cmd.SilenceUsage = true

	pairs := runner.Grid(verifyMax)
	logger.Info("verify started", "pairs", len(pairs), "workers", verifyWorkers)

	results, err := runner.Sweep(cmd.Context(), pairs, verifyWorkers, metrics.Defaults)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if verbose {
		fmt.Fprintln(w, "A\tB\tPRODUCT\tSTEPS\tTRAVEL\tSPAN\tOK")
	}

	var failed, totalSteps, maxSteps int
	for _, res := range results {
		ok := res.Product == res.Multiplier*res.Multiplicand
		if !ok {
			failed++
			logger.Error("wrong product",
				"multiplier", res.Multiplier,
				"multiplicand", res.Multiplicand,
				"product", res.Product,
			)
		}
		totalSteps += res.Steps
		maxSteps = max(maxSteps, res.Steps)
		if verbose {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.0f\t%.0f\t%v\n",
				res.Multiplier, res.Multiplicand, res.Product, res.Steps,
				res.Metrics["head_travel"], res.Metrics["tape_span"], ok)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("checked %d pairs up to %d: %d wrong, %d steps total, %d max\n",
		len(results), verifyMax, failed, totalSteps, maxSteps)
	if failed > 0 {
		return fmt.Errorf("%d of %d products wrong", failed, len(results))
	}
	return nil
}

func printTable(cmd *cobra.Command, args []string) error {
	table := turing.Multiplication()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tREAD\tWRITE\tMOVE\tNEXT")
	for _, r := range table.Rules() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.State, r.Read, r.Write, r.Move, r.Next)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d rules, start %s, halt %s\n", table.Len(), table.Start(), table.Halt())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMULTIPLIER\tMULTIPLICAND\tPRINT\tSLEEP")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%v\n", name, p.Multiplier, p.Multiplicand, p.Display.Print, p.Display.Sleep)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tA\tB\tPRODUCT\tSTEPS\tELAPSED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%.2fms\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Multiplier,
			run.Multiplicand,
			run.Product,
			run.Steps,
			run.ElapsedMs,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportCSV(os.Stdout, args[0])
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rows, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return fmt.Errorf("no trace to plot for %s", runID)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("computing %d x %d = %d in %d steps\n\n", meta.Multiplier, meta.Multiplicand, meta.Product, meta.Steps)

	head := make([]float64, len(rows))
	marks := make([]float64, len(rows))
	for i, row := range rows {
		head[i] = float64(row.Head)
		marks[i] = float64(row.Marks)
	}

	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{"head position", head},
		{"marks on tape", marks},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	rows, err := storage.New(dataDir).LoadTrace(args[0])
	if err != nil {
		return err
	}
	svg := export.TraceToSVG(rows, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("no trace to draw for %s", args[0])
	}

	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(svgOut, []byte(svg+"\n"), 0644); err != nil {
		return err
	}
	logger.Info("svg written", "run", args[0], "path", svgOut)
	return nil
}

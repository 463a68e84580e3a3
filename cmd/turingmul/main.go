package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/san-kum/turingmul/internal/config"
	"github.com/san-kum/turingmul/internal/logging"
)

var (
	dataDir    string
	logLevel   string
	logFile    string
	logJournal bool

	interactive bool
	sleep       bool
	printSteps  bool
	clearScreen bool
	delayMs     int
	window      int
	theme       string
	maxSteps    int
	save        bool
	configFile  string
	preset      string

	verifyMax     int
	verifyWorkers int
	verbose       bool

	svgOut    string
	svgWidth  int
	svgHeight int
)

var (
	logger   = logging.Discard()
	closeLog = func() error { return nil }
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "turingmul",
		Short: "unary multiplication on a single-tape turing machine",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(config.LogConfig{Level: logLevel, File: logFile, Journal: logJournal})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".turingmul", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&logJournal, "journal", false, "also log to the systemd journal")

	runCmd := newRunCmd()

	tuiCmd := &cobra.Command{
		Use:   "tui [multiplier] [multiplicand]",
		Short: "step through a multiplication interactively",
		Args:  operandArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&delayMs, "delay", config.DefaultDelayMs, "autoplay delay in milliseconds")
	tuiCmd.Flags().IntVar(&window, "window", config.DefaultWindow, "tape cells shown either side of the head")
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	tuiCmd.Flags().StringVar(&preset, "preset", "", "take operands from a preset")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "check every product up to a bound",
		Args:  cobra.NoArgs,
		RunE:  verifyGrid,
	}
	verifyCmd.Flags().IntVar(&verifyMax, "max", 10, "largest operand")
	verifyCmd.Flags().IntVar(&verifyWorkers, "workers", 4, "concurrent machines")
	verifyCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every pair")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print the transition table",
		Args:  cobra.NoArgs,
		RunE:  printTable,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a saved run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot head position and mark count of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a saved trace as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw the head path of a saved run as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOut, "output", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted list of multiplications",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	rootCmd.AddCommand(runCmd, tuiCmd, batchCmd, verifyCmd, tableCmd, presetsCmd, listCmd, showCmd, plotCmd, exportCSVCmd, exportSVGCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [multiplier] [multiplicand]",
		Short: "multiply two numbers",
		Args:  operandArgs,
		RunE:  runMultiply,
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "wait for enter before every step")
	cmd.Flags().BoolVarP(&sleep, "sleep", "s", false, "pause between steps")
	cmd.Flags().BoolVarP(&printSteps, "print", "p", false, "print the machine after every step")
	cmd.Flags().BoolVarP(&clearScreen, "clear", "c", false, "clear the screen before printing")
	cmd.Flags().IntVar(&delayMs, "delay", config.DefaultDelayMs, "pause length in milliseconds")
	cmd.Flags().IntVar(&window, "window", config.DefaultWindow, "tape cells shown either side of the head")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "abort after this many steps (0 = unlimited)")
	cmd.Flags().BoolVar(&save, "save", false, "store the run and its trace")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	return cmd
}

func setupLogger(lc config.LogConfig) error {
	l, closer, err := logging.New(logging.Options{
		Level:   lc.Level,
		File:    lc.File,
		Journal: lc.Journal,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	closeLog()
	logger, closeLog = l, closer
	slog.SetDefault(logger)
	return nil
}

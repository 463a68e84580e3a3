package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/turingmul/internal/config"
	"github.com/san-kum/turingmul/internal/metrics"
	"github.com/san-kum/turingmul/internal/render"
	"github.com/san-kum/turingmul/internal/runner"
	"github.com/san-kum/turingmul/internal/storage"
	"github.com/san-kum/turingmul/internal/tui"
	"github.com/san-kum/turingmul/internal/turing"
)

// operandArgs accepts either no operands (taken from a preset or config
// file) or both.
func operandArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("expected 0 or 2 operands, got %d", len(args))
	}
	for _, a := range args {
		if _, err := parseOperand(a); err != nil {
			return err
		}
	}
	return nil
}

func parseOperand(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("operand %q is not an integer", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("operand %d: %w", n, turing.ErrInvalidInput)
	}
	return n, nil
}

// resolveConfig layers defaults, preset, config file, positional operands and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) == 2 {
		cfg.Multiplier, _ = parseOperand(args[0])
		cfg.Multiplicand, _ = parseOperand(args[1])
	} else if preset == "" && configFile == "" {
		return nil, errors.New("operands required without --preset or --config")
	}

	flags := cmd.Flags()
	if flags.Changed("interactive") {
		cfg.Interactive = interactive
	}
	if flags.Changed("sleep") {
		cfg.Display.Sleep = sleep
	}
	if flags.Changed("print") {
		cfg.Display.Print = printSteps
	}
	if flags.Changed("clear") {
		cfg.Display.Clear = clearScreen
	}
	if flags.Changed("delay") {
		cfg.Display.DelayMs = delayMs
	}
	if flags.Changed("window") {
		cfg.Display.Window = window
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}
	if flags.Changed("save") {
		cfg.Save = save
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("journal") {
		cfg.Log.Journal = logJournal
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func colorEnabled() bool {
	return termenv.NewOutput(os.Stdout).Profile != termenv.Ascii
}

func runMultiply(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	if err := setupLogger(cfg.Log); err != nil {
		return err
	}

	m, err := turing.New(cfg.Multiplier, cfg.Multiplicand)
	if err != nil {
		return err
	}

	r := runner.New()
	for _, mt := range metrics.Defaults() {
		r.AddMetric(mt)
	}

	rend := render.New(cfg.Display.Window, colorEnabled(), cfg.Display.Theme)
	if cfg.Display.Print {
		r.AddObserver(render.NewPrinter(os.Stdout, rend, cfg.Display.Clear))
	}

	var pacers []runner.Pacer
	if d := cfg.Delay(); d > 0 {
		pacers = append(pacers, runner.Sleep(d))
	}
	if cfg.Interactive {
		pacers = append(pacers, runner.Prompt(os.Stdin, os.Stdout, "press enter to step "))
	}

	logger.Info("run started",
		"multiplier", cfg.Multiplier,
		"multiplicand", cfg.Multiplicand,
		"print", cfg.Display.Print,
		"interactive", cfg.Interactive,
		"delay", cfg.Delay(),
	)

	result, err := r.Run(cmd.Context(), m, runner.Config{
		Pacer:    runner.Chain(pacers...),
		MaxSteps: cfg.MaxSteps,
		Trace:    cfg.Save,
	})
	fmt.Println(rend.Summary(m))
	if err != nil {
		logger.Error("run failed", "steps", m.Steps(), "state", m.State().String(), "error", err)
		return err
	}

	logger.Info("run finished",
		"product", result.Product,
		"steps", result.Steps,
		"elapsed", result.Elapsed.Round(time.Microsecond),
	)
	for name, v := range result.Metrics {
		logger.Debug("metric", "name", name, "value", v)
	}

	if cfg.Save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(result)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		logger.Info("run saved", "id", id, "dir", dataDir)
		fmt.Printf("saved: %s\n", id)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, b := 0, 0
	switch {
	case len(args) == 2:
		a, _ = parseOperand(args[0])
		b, _ = parseOperand(args[1])
	case preset != "":
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		a, b = cfg.Multiplier, cfg.Multiplicand
	default:
		return errors.New("operands required without --preset")
	}
	if delayMs < 0 {
		return fmt.Errorf("delay must not be negative, got %d", delayMs)
	}
	cmd.SilenceUsage = true

	m, err := tui.New(a, b, tui.Options{
		Window: window,
		Theme:  theme,
		Delay:  time.Duration(delayMs) * time.Millisecond,
		Color:  true,
	})
	if err != nil {
		return err
	}
	logger.Debug("tui started", "multiplier", a, "multiplicand", b)
	return tui.Run(cmd.Context(), m)
}

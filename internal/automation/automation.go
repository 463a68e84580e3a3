package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/turingmul/internal/metrics"
	"github.com/san-kum/turingmul/internal/runner"
	"github.com/san-kum/turingmul/internal/storage"
	"github.com/san-kum/turingmul/internal/turing"
)

// ErrUnexpectedProduct is returned when a step declares an expected product
// and the machine disagrees.
var ErrUnexpectedProduct = errors.New("automation: unexpected product")

// Scenario is a scripted list of multiplications.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

type ScenarioStep struct {
	Multiplier   int  `yaml:"multiplier"`
	Multiplicand int  `yaml:"multiplicand"`
	MaxSteps     int  `yaml:"max_steps"`
	Save         bool `yaml:"save"`
	// Expect, when set, must equal the product.
	Expect *int `yaml:"expect"`
}

type StepResult struct {
	Step   ScenarioStep
	Result *runner.Result
	RunID  string
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("scenario has no steps")
	}
	for i, st := range s.Steps {
		if st.Multiplier < 0 || st.Multiplicand < 0 {
			return fmt.Errorf("step %d: %w", i+1, turing.ErrInvalidInput)
		}
		if st.MaxSteps < 0 {
			return fmt.Errorf("step %d: max_steps must not be negative", i+1)
		}
	}
	return nil
}

// RunScenario executes every step in order and stops at the first failure.
// Steps marked save are written to st, which may be nil when none are.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store, logger *slog.Logger) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		logger.Info("scenario step",
			"scenario", scenario.Name,
			"step", i+1,
			"of", len(scenario.Steps),
			"multiplier", step.Multiplier,
			"multiplicand", step.Multiplicand,
		)

		m, err := turing.New(step.Multiplier, step.Multiplicand)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		r := runner.New()
		for _, mt := range metrics.Defaults() {
			r.AddMetric(mt)
		}
		res, err := r.Run(ctx, m, runner.Config{MaxSteps: step.MaxSteps, Trace: step.Save})
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Step: step, Result: res}
		if step.Expect != nil && *step.Expect != res.Product {
			results = append(results, sr)
			return results, fmt.Errorf("step %d: %d x %d = %d, want %d: %w",
				i+1, step.Multiplier, step.Multiplicand, res.Product, *step.Expect, ErrUnexpectedProduct)
		}

		if step.Save {
			if st == nil {
				return results, fmt.Errorf("step %d: save requested without a store", i+1)
			}
			id, err := st.Save(res)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			sr.RunID = id
		}
		results = append(results, sr)
	}

	return results, nil
}

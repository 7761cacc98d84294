package cli

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/persuade"
	"github.com/arloliu/persuade/source"
	"github.com/arloliu/persuade/types"
)

// GenerateSpec describes a synthetic belief distribution.
type GenerateSpec struct {
	Points    int     `yaml:"points"`
	MinBelief float64 `yaml:"minBelief"`
	MaxBelief float64 `yaml:"maxBelief"`
	Seed      int64   `yaml:"seed"`
}

// Scenario is the YAML input shared by every subcommand.
//
// Example:
//
//	config:
//	  planner:
//	    queryBudget: 2
//	receivers:
//	  - {belief: 0.7, weight: 0.3}
//	  - {belief: 0.4, weight: 0.4}
//	  - {belief: 0.2, weight: 0.3}
//	generate:
//	  points: 20
//	  minBelief: 0
//	  maxBelief: 1
//	  seed: 42
type Scenario struct {
	Config       persuade.Config          `yaml:"config"`
	Receivers    []types.ReceiverType     `yaml:"receivers"`
	Distribution types.BeliefDistribution `yaml:"distribution"`
	Generate     *GenerateSpec            `yaml:"generate"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	return ParseScenario(data)
}

// ParseScenario decodes a scenario, applies config defaults and validates it.
//
// A scenario may list an explicit distribution or a generate block, not both.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	persuade.SetDefaults(&sc.Config)
	if err := sc.Config.Validate(); err != nil {
		return nil, err
	}
	if len(sc.Distribution) > 0 && sc.Generate != nil {
		return nil, fmt.Errorf("%w: scenario sets both distribution and generate", types.ErrInvalidInput)
	}

	return &sc, nil
}

// Population returns the receiver population source.
func (sc *Scenario) Population() (types.PopulationSource, error) {
	if len(sc.Receivers) == 0 {
		return nil, fmt.Errorf("%w: scenario has no receivers", types.ErrNoReceivers)
	}

	return source.NewStatic(sc.Receivers), nil
}

// DistributionSource returns the explicit or generated distribution source.
func (sc *Scenario) DistributionSource() (types.DistributionSource, error) {
	switch {
	case sc.Generate != nil:
		g := sc.Generate
		return source.NewGenerated(g.Points, g.MinBelief, g.MaxBelief, g.Seed), nil
	case len(sc.Distribution) > 0:
		return source.NewStaticDistribution(sc.Distribution), nil
	default:
		return nil, fmt.Errorf("%w: scenario has neither distribution nor generate", types.ErrEmptyDistribution)
	}
}

// LoadDistribution resolves the scenario's distribution.
func (sc *Scenario) LoadDistribution(ctx context.Context) (types.BeliefDistribution, error) {
	src, err := sc.DistributionSource()
	if err != nil {
		return nil, err
	}

	return src.Distribution(ctx)
}

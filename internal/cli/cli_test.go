package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/persuade/types"
)

const moderateScenario = `
config:
  planner:
    queryBudget: 2
receivers:
  - {belief: 0.7, weight: 0.3}
  - {belief: 0.4, weight: 0.4}
  - {belief: 0.2, weight: 0.3}
distribution:
  - {belief: 0.1, probability: 0.25}
  - {belief: 0.4, probability: 0.25}
  - {belief: 0.6, probability: 0.25}
  - {belief: 0.9, probability: 0.25}
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run executes the root command with fresh flag values and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	scenarioPath, logLevel, jsonOutput, showMetrics = "", "warn", false, false
	planBudget, planCost = 0, 0
	resetChanged(rootCmd)

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

// resetChanged clears flag state left behind by earlier executions.
func resetChanged(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	for _, sub := range cmd.Commands() {
		resetChanged(sub)
	}
}

func TestSearchCommand(t *testing.T) {
	path := writeScenario(t, moderateScenario)

	t.Run("prints the best policy and responses", func(t *testing.T) {
		out, err := run(t, "search", "--scenario", path)

		require.NoError(t, err)
		require.Contains(t, out, "Best policy: {m0: (0.800, 0.000), m1: (0.200, 1.000)}")
		require.Contains(t, out, "Expected utility: 0.6000")
		require.Contains(t, out, "Policies evaluated: 66 (skipped 55)")
		require.Contains(t, out, "ON m1")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := run(t, "search", "-s", path, "--json")
		require.NoError(t, err)

		var report struct {
			Result    types.PolicyResult `json:"result"`
			Responses []struct {
				OnM1 string `json:"onM1"`
			} `json:"responses"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		require.InDelta(t, 0.6, report.Result.Utility, 1e-9)
		require.Len(t, report.Responses, 3)
		require.Equal(t, "act", report.Responses[0].OnM1)
	})

	t.Run("prints metrics on request", func(t *testing.T) {
		out, err := run(t, "search", "-s", path, "--metrics")

		require.NoError(t, err)
		require.Contains(t, out, "Metrics:")
		require.Contains(t, out, `persuade_search_policies_total{outcome="evaluated"} 66`)
		require.Contains(t, out, "# TYPE persuade_search_policies_total counter")
		require.Contains(t, out, "# TYPE persuade_search_duration_seconds histogram")
		require.Contains(t, out, "persuade_search_duration_seconds_count 1")
	})

	t.Run("requires a scenario", func(t *testing.T) {
		_, err := run(t, "search")

		require.Error(t, err)
	})
}

func TestPlanCommand(t *testing.T) {
	path := writeScenario(t, moderateScenario)

	t.Run("uses the configured budget", func(t *testing.T) {
		out, err := run(t, "plan", "-s", path)

		require.NoError(t, err)
		require.Contains(t, out, "Budget: 2")
		require.Contains(t, out, "Expected value: 0.500000")
		require.Contains(t, out, "0.1000")
	})

	t.Run("flags override the config", func(t *testing.T) {
		out, err := run(t, "plan", "-s", path, "--budget", "0")

		require.NoError(t, err)
		require.Contains(t, out, "Thresholds: none")
		require.Contains(t, out, "Expected value: 0.225000")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := run(t, "plan", "-s", path, "-k", "1", "--cost", "0.2", "--json")
		require.NoError(t, err)

		var res types.PlanResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		require.Equal(t, []int{0}, res.Thresholds)
		require.InDelta(t, 0.3, res.ExpectedValue, 1e-12)
	})

	t.Run("rejects an out of range budget", func(t *testing.T) {
		_, err := run(t, "plan", "-s", path, "--budget", "9")

		require.ErrorIs(t, err, types.ErrInvalidBudget)
	})

	t.Run("rejects an explicit negative budget", func(t *testing.T) {
		_, err := run(t, "plan", "-s", path, "--budget", "-3")

		require.ErrorIs(t, err, types.ErrInvalidBudget)
	})

	t.Run("rejects an explicit negative cost", func(t *testing.T) {
		_, err := run(t, "plan", "-s", path, "--cost", "-0.5")

		require.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("an explicit zero budget is honored", func(t *testing.T) {
		out, err := run(t, "plan", "-s", path, "-k", "0", "--json")
		require.NoError(t, err)

		var res types.PlanResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		require.Equal(t, 0, res.Budget)
		require.Empty(t, res.Thresholds)
	})
}

func TestSweepCommand(t *testing.T) {
	path := writeScenario(t, moderateScenario)

	out, err := run(t, "sweep", "-s", path, "--json")
	require.NoError(t, err)

	var results []types.PlanResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 4)
	for k := 1; k < len(results); k++ {
		require.GreaterOrEqual(t, results[k].ExpectedValue, results[k-1].ExpectedValue)
	}

	out, err = run(t, "sweep", "-s", path)
	require.NoError(t, err)
	require.Contains(t, out, "BUDGET")
}

func TestDiscloseCommand(t *testing.T) {
	path := writeScenario(t, `
distribution:
  - {belief: 0.1, probability: 0.1}
  - {belief: 0.3, probability: 0.4}
  - {belief: 0.6, probability: 0.2}
  - {belief: 0.8, probability: 0.3}
`)

	out, err := run(t, "disclose", "-s", path)

	require.NoError(t, err)
	require.Contains(t, out, "Objective: 0.400000")
}

func TestGeneratedScenario(t *testing.T) {
	path := writeScenario(t, `
config:
  planner:
    queryBudget: 3
    noise:
      enabled: true
      seed: 42
generate:
  points: 10
  minBelief: 0
  maxBelief: 1
  seed: 7
`)

	first, err := run(t, "plan", "-s", path, "--json")
	require.NoError(t, err)
	second, err := run(t, "plan", "-s", path, "--json")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")

	require.NoError(t, err)
	require.Contains(t, out, "persuade "+version)
}

func TestParseScenario(t *testing.T) {
	t.Run("applies config defaults", func(t *testing.T) {
		sc, err := ParseScenario([]byte(moderateScenario))

		require.NoError(t, err)
		require.Equal(t, 11, sc.Config.Search.GridResolution)
		require.Equal(t, 2, sc.Config.Planner.QueryBudget)
		require.Len(t, sc.Receivers, 3)
		require.Equal(t, 4, sc.Distribution.Len())
	})

	t.Run("rejects noise without a seed", func(t *testing.T) {
		_, err := ParseScenario([]byte("config:\n  planner:\n    noise:\n      enabled: true\n"))

		require.ErrorIs(t, err, types.ErrNoiseSeedRequired)
	})

	t.Run("rejects distribution and generate together", func(t *testing.T) {
		_, err := ParseScenario([]byte("distribution:\n  - {belief: 0.5, probability: 1}\ngenerate:\n  points: 3\n  maxBelief: 1\n"))

		require.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("missing sections", func(t *testing.T) {
		sc, err := ParseScenario([]byte("{}"))
		require.NoError(t, err)

		_, err = sc.Population()
		require.ErrorIs(t, err, types.ErrNoReceivers)

		_, err = sc.DistributionSource()
		require.ErrorIs(t, err, types.ErrEmptyDistribution)
	})
}

package testing

import (
	"math/rand/v2"

	"github.com/arloliu/persuade/source"
	"github.com/arloliu/persuade/types"
)

// ModeratePopulation returns three receivers with middling priors.
// Its best policy on the default grid is (0.2, 1.0) with utility 0.6.
func ModeratePopulation() []types.ReceiverType {
	return []types.ReceiverType{
		{Belief: 0.7, Weight: 0.3},
		{Belief: 0.4, Weight: 0.4},
		{Belief: 0.2, Weight: 0.3},
	}
}

// PolarizedPopulation returns receivers clustered at both extremes.
// Its best policy on the default grid is (0.1, 0.9) with utility 0.7.
func PolarizedPopulation() []types.ReceiverType {
	return []types.ReceiverType{
		{Belief: 0.9, Weight: 0.4},
		{Belief: 0.5, Weight: 0.2},
		{Belief: 0.1, Weight: 0.4},
	}
}

// EvenDistribution returns four beliefs with equal mass.
//
// With zero cost, budget 0 plans to 0.225 and any budget >= 1 splits after
// index 0 for 0.5.
func EvenDistribution() types.BeliefDistribution {
	return types.BeliefDistribution{
		{Belief: 0.1, Probability: 0.25},
		{Belief: 0.4, Probability: 0.25},
		{Belief: 0.6, Probability: 0.25},
		{Belief: 0.9, Probability: 0.25},
	}
}

// RandomDistribution returns n strictly ascending beliefs in (0,1) with
// flat Dirichlet mass drawn from seed.
func RandomDistribution(n int, seed int64) types.BeliefDistribution {
	probs := source.Dirichlet(rand.NewPCG(uint64(seed), 0), n) //nolint:gosec // bit pattern only

	dist := make(types.BeliefDistribution, n)
	for i := range dist {
		dist[i] = types.BeliefPoint{Belief: float64(i+1) / float64(n+1), Probability: probs[i]}
	}

	return dist
}

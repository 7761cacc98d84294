package source

import (
	"context"
	"sync"

	"github.com/arloliu/persuade/types"
)

// Static implements a population source with a fixed list of receiver types.
type Static struct {
	mu        sync.RWMutex
	receivers []types.ReceiverType
}

var _ types.PopulationSource = (*Static)(nil)

// NewStatic creates a population source that always returns receivers.
//
// Example:
//
//	src := source.NewStatic([]types.ReceiverType{
//	    {Belief: 0.2, Weight: 0.5},
//	    {Belief: 0.6, Weight: 0.5},
//	})
//	receivers, _ := src.ListReceivers(ctx)
//	res, err := engine.SearchPolicy(ctx, receivers)
func NewStatic(receivers []types.ReceiverType) *Static {
	s := &Static{}
	s.Update(receivers)

	return s
}

// ListReceivers returns a copy of the population. It never fails.
func (s *Static) ListReceivers(_ context.Context) ([]types.ReceiverType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.ReceiverType, len(s.receivers))
	copy(result, s.receivers)

	return result, nil
}

// Update replaces the population.
func (s *Static) Update(receivers []types.ReceiverType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.receivers = make([]types.ReceiverType, len(receivers))
	copy(s.receivers, receivers)
}

// StaticDistribution implements a distribution source with a fixed distribution.
type StaticDistribution struct {
	mu   sync.RWMutex
	dist types.BeliefDistribution
}

var _ types.DistributionSource = (*StaticDistribution)(nil)

// NewStaticDistribution creates a distribution source that always returns dist.
func NewStaticDistribution(dist types.BeliefDistribution) *StaticDistribution {
	s := &StaticDistribution{}
	s.Update(dist)

	return s
}

// Distribution returns a copy of the distribution. It never fails.
func (s *StaticDistribution) Distribution(_ context.Context) (types.BeliefDistribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(types.BeliefDistribution, len(s.dist))
	copy(result, s.dist)

	return result, nil
}

// Update replaces the distribution.
func (s *StaticDistribution) Update(dist types.BeliefDistribution) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dist = make(types.BeliefDistribution, len(dist))
	copy(s.dist, dist)
}

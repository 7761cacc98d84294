// Package source provides receiver populations and belief distributions.
//
// The package includes:
//
//   - Static: a fixed receiver population
//   - StaticDistribution: a fixed belief distribution
//   - Generated: a seeded distribution with evenly spaced beliefs and
//     Dirichlet(1,...,1) probabilities
//
// Custom sources can be implemented by satisfying types.PopulationSource or
// types.DistributionSource.
package source

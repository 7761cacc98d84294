// Package testing provides test utilities for the persuade library.
//
// It follows Go's convention of shipping test helpers in a dedicated package
// (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger that writes through testing.TB
//   - ModeratePopulation, PolarizedPopulation: reference receiver populations
//   - EvenDistribution: reference four-point belief distribution
//   - RandomDistribution: seeded random distribution for property tests
//
// Example usage:
//
//	import persuadetest "github.com/arloliu/persuade/testing"
//
//	func TestMyReport(t *testing.T) {
//	    engine, _ := persuade.NewEngine(nil, persuade.WithLogger(persuadetest.NewTestLogger(t)))
//	    res, _ := engine.SearchPolicy(ctx, persuadetest.ModeratePopulation())
//	}
package testing

package planner

import "slices"

// noSplit marks a cell whose value was carried over from row k-1.
const noSplit = -1

// table holds the DP values and the split that produced each one.
//
// Rows are indexed by budget k in 0..K, columns by position i in 0..n-1.
type table struct {
	value   [][]float64
	splitAt [][]int
}

// newTable allocates a table for budget K over n positions.
func newTable(budget, n int) *table {
	t := &table{
		value:   make([][]float64, budget+1),
		splitAt: make([][]int, budget+1),
	}
	for k := range budget + 1 {
		t.value[k] = make([]float64, n)
		t.splitAt[k] = make([]int, n)
	}

	return t
}

// fill computes every row bottom-up from the per-point weighted beliefs.
//
// Row k is complete before row k+1 starts. Within a row, the outer loop runs
// over j ascending and accumulates the segment sum Σ_{t=j+1..i} left to right,
// so every candidate split for cell i is seen in ascending j and each segment
// sum is aggregated in ascending index order. A candidate replaces the current
// best only if strictly greater, so ties keep the carried-over value or the
// smallest j.
func (t *table) fill(weighted []float64, queryCost float64) {
	n := len(weighted)
	copy(t.value[0], weighted)
	for i := range n {
		t.splitAt[0][i] = noSplit
	}

	for k := 1; k < len(t.value); k++ {
		prev, cur, split := t.value[k-1], t.value[k], t.splitAt[k]
		copy(cur, prev)
		for i := range n {
			split[i] = noSplit
		}

		for j := 0; j < n-1; j++ {
			segment := 0.0
			for i := j + 1; i < n; i++ {
				segment += weighted[i]
				if v := prev[j] + segment - queryCost; v > cur[i] {
					cur[i] = v
					split[i] = j
				}
			}
		}
	}
}

// terminal returns value[K][n-1].
func (t *table) terminal() float64 {
	last := t.value[len(t.value)-1]

	return last[len(last)-1]
}

// backtrack walks from (K, n-1) down to row 0 and returns the chosen split
// indices, ascending and de-duplicated.
//
// A split j at (k, i) records threshold j and continues at (k-1, j); a
// carried-over cell continues at (k-1, i) without recording anything.
func (t *table) backtrack() []int {
	thresholds := []int{}
	i := len(t.value[0]) - 1
	for k := len(t.value) - 1; k > 0; k-- {
		if j := t.splitAt[k][i]; j != noSplit {
			thresholds = append(thresholds, j)
			i = j
		}
	}

	slices.Sort(thresholds)

	return slices.Compact(thresholds)
}

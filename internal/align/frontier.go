package align

import "fmt"

// frontier holds the furthest x reached on each diagonal k in [-max, max].
type frontier struct {
	max int
	xs  []int
}

func newFrontier(max int) frontier {
	return frontier{max: max, xs: make([]int, 2*max+1)}
}

func (f frontier) index(k int) int {
	if k < -f.max || k > f.max {
		panic(fmt.Sprintf("align: diagonal %d outside [-%d, %d]", k, f.max, f.max))
	}
	return k + f.max
}

func (f frontier) get(k int) int {
	return f.xs[f.index(k)]
}

func (f frontier) set(k, x int) {
	f.xs[f.index(k)] = x
}

func (f frontier) clone() frontier {
	xs := make([]int, len(f.xs))
	copy(xs, f.xs)
	return frontier{max: f.max, xs: xs}
}

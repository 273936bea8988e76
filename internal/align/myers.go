package align

// Diff returns the shortest edit script that turns old into new.
//
// It walks the edit graph breadth first by edit count d, keeping for every
// diagonal k = x - y the furthest x reached so far. Each depth reads the
// frontier of the previous one, so a copy of the frontier is kept per depth
// and replayed backwards once (len(old), len(new)) is reached.
//
// Ties between equally short paths resolve toward deletions first: a
// substituted token comes out as Delete followed by Insert.
func Diff[T comparable](old, new []T) Script[T] {
	n, m := len(old), len(new)
	if n == 0 && m == 0 {
		return Script[T]{}
	}

	v := newFrontier(n + m)
	trace := make([]frontier, 0, 8)

	for d := 0; d <= n+m; d++ {
		trace = append(trace, v.clone())

		for k := -d; k <= d; k += 2 {
			var x int
			if prefersInsert(v, k, d) {
				x = v.get(k + 1)
			} else {
				x = v.get(k-1) + 1
			}
			y := x - k

			for x < n && y < m && old[x] == new[y] {
				x++
				y++
			}

			v.set(k, x)

			if x >= n && y >= m {
				return backtrack(trace, old, new)
			}
		}
	}

	// The loop always reaches (n, m) by d == n+m.
	panic("align: edit graph end not reached")
}

// prefersInsert reports whether diagonal k at depth d is entered from k+1
// (a vertical insert step) rather than from k-1 (a horizontal delete step).
func prefersInsert(v frontier, k, d int) bool {
	return k == -d || (k != d && v.get(k-1) < v.get(k+1))
}

func backtrack[T comparable](trace []frontier, old, new []T) Script[T] {
	x, y := len(old), len(new)
	rev := make([]Op[T], 0, len(old)+len(new))

	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		prevK := k - 1
		if prefersInsert(v, k, d) {
			prevK = k + 1
		}

		prevX := v.get(prevK)
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			rev = append(rev, Op[T]{Kind: Equal, Token: old[x-1]})
			x--
			y--
		}

		if d > 0 {
			if x == prevX {
				rev = append(rev, Op[T]{Kind: Insert, Token: new[y-1]})
				y--
			} else {
				rev = append(rev, Op[T]{Kind: Delete, Token: old[x-1]})
				x--
			}
		}
	}

	script := make(Script[T], len(rev))
	for i, op := range rev {
		script[len(rev)-1-i] = op
	}
	return script
}

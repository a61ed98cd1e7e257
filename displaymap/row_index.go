package displaymap

import "math/bits"

// rowIndex is a Fenwick tree over per-buffer-row wrap row counts. It answers
// "first wrap row of buffer row r" and "buffer row holding wrap row w" in
// O(log n), and absorbs a single row's count change in O(log n).
type rowIndex struct {
	tree  []int // 1-based
	count []int
	sum   int
}

func (x *rowIndex) build(counts []int) {
	n := len(counts)
	x.count = append(x.count[:0], counts...)
	if cap(x.tree) >= n+1 {
		x.tree = x.tree[:n+1]
		clear(x.tree)
	} else {
		x.tree = make([]int, n+1)
	}
	x.sum = 0
	for i, c := range counts {
		x.tree[i+1] += c
		x.sum += c
		if j := (i + 1) + ((i + 1) & -(i + 1)); j <= n {
			x.tree[j] += x.tree[i+1]
		}
	}
}

func (x *rowIndex) len() int { return len(x.count) }

func (x *rowIndex) total() int { return x.sum }

func (x *rowIndex) at(row int) int { return x.count[row] }

func (x *rowIndex) set(row, c int) {
	delta := c - x.count[row]
	if delta == 0 {
		return
	}
	x.count[row] = c
	x.sum += delta
	for i := row + 1; i < len(x.tree); i += i & -i {
		x.tree[i] += delta
	}
}

// prefix returns the sum of counts[0:row].
func (x *rowIndex) prefix(row int) int {
	s := 0
	for i := row; i > 0; i -= i & -i {
		s += x.tree[i]
	}
	return s
}

// find returns the row r with prefix(r) <= w < prefix(r+1). Every count must
// be at least 1 and 0 <= w < total().
func (x *rowIndex) find(w int) int {
	n := len(x.count)
	if n == 0 {
		return 0
	}
	pos := 0
	for step := 1 << (bits.Len(uint(n)) - 1); step > 0; step >>= 1 {
		if next := pos + step; next <= n && x.tree[next] <= w {
			pos = next
			w -= x.tree[next]
		}
	}
	return pos
}

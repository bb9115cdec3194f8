package prim_kruskal

// DSU is a disjoint-set (union-find) forest over the ints [0, n) with
// path compression and union by rank.
type DSU struct {
	parent []int
	rank   []int
	sets   int
}

// NewDSU returns n singleton sets.
func NewDSU(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of x's set.
// Iterative with path halving to avoid deep recursion.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of x and y. It reports false if they were already
// the same set.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y are in the same set.
func (d *DSU) Connected(x, y int) bool { return d.Find(x) == d.Find(y) }

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

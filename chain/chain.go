package chain

// Cell is a cell identifier: a non-negative integer, contiguous within a
// complex and partitioned by dimension.
type Cell int

// Chain is a finite set of Cells over GF(2). Addition of chains is
// symmetric difference: a cell present in both operands cancels.
//
// The zero value is the empty chain and is ready to use.
type Chain struct {
	cells map[Cell]struct{}
}

// New returns a Chain containing exactly the given cells (duplicates
// collapse, since multiplicity is irrelevant over GF(2)).
func New(cells ...Cell) Chain {
	var c Chain
	for _, x := range cells {
		c.Add(x)
	}
	return c
}

// Len reports the number of cells in c.
func (c Chain) Len() int {
	return len(c.cells)
}

// Has reports whether x is a member of c.
func (c Chain) Has(x Cell) bool {
	_, ok := c.cells[x]
	return ok
}

// Count reports 1 if x is a member of c and 0 otherwise, matching the
// "count(x)" membership test of the chain semantic container.
func (c Chain) Count(x Cell) int {
	if c.Has(x) {
		return 1
	}
	return 0
}

// Cells returns a snapshot of the member cells. Iteration order is
// unspecified and may differ between calls.
func (c Chain) Cells() []Cell {
	out := make([]Cell, 0, len(c.cells))
	for x := range c.cells {
		out = append(out, x)
	}
	return out
}

// Add toggles membership of x in c: present cells are removed, absent
// cells are inserted. This is chain addition of the singleton {x}.
func (c *Chain) Add(x Cell) {
	if c.cells == nil {
		c.cells = make(map[Cell]struct{})
	}
	if _, ok := c.cells[x]; ok {
		delete(c.cells, x)
	} else {
		c.cells[x] = struct{}{}
	}
}

// Merge adds other into c by symmetric difference ("c += other").
func (c *Chain) Merge(other Chain) {
	for x := range other.cells {
		c.Add(x)
	}
}

// Clone returns an independent copy of c.
func (c Chain) Clone() Chain {
	clone := New()
	clone.Merge(c)
	return clone
}

// Equal reports whether c and other contain exactly the same cells.
func (c Chain) Equal(other Chain) bool {
	if len(c.cells) != len(other.cells) {
		return false
	}
	for x := range c.cells {
		if _, ok := other.cells[x]; !ok {
			return false
		}
	}
	return true
}

// Sum returns the symmetric-difference sum of the given chains, leaving
// each argument untouched.
func Sum(chains ...Chain) Chain {
	result := New()
	for _, c := range chains {
		result.Merge(c)
	}
	return result
}

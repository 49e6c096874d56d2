package acyclic

import "github.com/TravisCasey/pyCHomP2/chain"

type color int

const (
	white color = iota
	gray
	black
)

// HasCycle reports whether the directed graph with node set nodes and
// edges(x) giving x's out-neighbors contains a cycle.
func HasCycle(nodes []chain.Cell, edges func(chain.Cell) []chain.Cell) bool {
	colors := make(map[chain.Cell]color, len(nodes))
	for _, n := range nodes {
		colors[n] = white
	}

	var visit func(chain.Cell) bool
	visit = func(x chain.Cell) bool {
		colors[x] = gray
		for _, y := range edges(x) {
			switch colors[y] {
			case gray:
				return true
			case white:
				if visit(y) {
					return true
				}
			}
		}
		colors[x] = black
		return false
	}

	for _, n := range nodes {
		if colors[n] == white {
			if visit(n) {
				return true
			}
		}
	}
	return false
}

package morse

import (
	"container/heap"

	"github.com/TravisCasey/pyCHomP2/chain"
)

// cellHeap is a binary heap of cells ordered by less, used to sequence
// queens (or kings) by matching priority during flow and coflow.
type cellHeap struct {
	items []chain.Cell
	less  func(a, b chain.Cell) bool
}

func newCellHeap(less func(a, b chain.Cell) bool) *cellHeap {
	h := &cellHeap{less: less}
	heap.Init(h)
	return h
}

func (h *cellHeap) Len() int            { return len(h.items) }
func (h *cellHeap) Less(i, j int) bool  { return h.less(h.items[i], h.items[j]) }
func (h *cellHeap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *cellHeap) Push(x interface{})  { h.items = append(h.items, x.(chain.Cell)) }
func (h *cellHeap) Pop() interface{} {
	n := len(h.items)
	x := h.items[n-1]
	h.items = h.items[:n-1]
	return x
}

func (h *cellHeap) push(x chain.Cell) { heap.Push(h, x) }

func (h *cellHeap) pop() chain.Cell { return heap.Pop(h).(chain.Cell) }

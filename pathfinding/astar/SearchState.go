package astar

import "container/heap"

// frontierEntry wraps a node for the frontier heap. seq is the push order;
// it breaks ties between equal total costs FIFO so the search is
// deterministic. The same node may be pushed more than once (it is re-pushed
// whenever it is reached again before being expanded), so the entry, not the
// node, carries the heap bookkeeping.
type frontierEntry struct {
	node *node
	seq  int
}

type frontierHeap []frontierEntry

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].node.totalCost() != h[j].node.totalCost() {
		return h[i].node.totalCost() < h[j].node.totalCost()
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) {
	*h = append(*h, x.(frontierEntry))
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// nodeCache is the per-search record of every discovered node, keyed
// (row, column). Both levels preserve insertion order: the enumeration order
// of the cache is part of FindWalkable's output contract, so a plain nested
// map (with Go's randomized iteration) cannot back it. Re-putting an
// existing coordinate keeps its original position.
type nodeCache struct {
	rows     map[int]*cacheRow
	rowOrder []int
}

type cacheRow struct {
	cols     map[int]*node
	colOrder []int
}

func newNodeCache() *nodeCache {
	return &nodeCache{rows: map[int]*cacheRow{}}
}

func (c *nodeCache) get(x, y int) (*node, bool) {
	row, ok := c.rows[y]
	if !ok {
		return nil, false
	}
	n, ok := row.cols[x]
	return n, ok
}

func (c *nodeCache) put(n *node) {
	row, ok := c.rows[n.y]
	if !ok {
		row = &cacheRow{cols: map[int]*node{}}
		c.rows[n.y] = row
		c.rowOrder = append(c.rowOrder, n.y)
	}
	if _, ok := row.cols[n.x]; !ok {
		row.colOrder = append(row.colOrder, n.x)
	}
	row.cols[n.x] = n
}

// all returns every cached node in discovery order: rows in first-seen
// order, columns within each row in first-seen order.
func (c *nodeCache) all() []*node {
	var nodes []*node
	for _, y := range c.rowOrder {
		row := c.rows[y]
		for _, x := range row.colOrder {
			nodes = append(nodes, row.cols[x])
		}
	}
	return nodes
}

// searchState is the mutable state of one FindPath/FindWalkable invocation.
// It is built fresh per call and discarded on return.
type searchState struct {
	endX, endY int
	hasEnd     bool

	costThreshold float64
	hasThreshold  bool

	frontier frontierHeap
	nextSeq  int
	cache    *nodeCache
}

func newSearchState() *searchState {
	state := &searchState{cache: newNodeCache()}
	heap.Init(&state.frontier)
	return state
}

func (s *searchState) push(n *node) {
	heap.Push(&s.frontier, frontierEntry{node: n, seq: s.nextSeq})
	s.nextSeq++
}

func (s *searchState) peek() *node {
	return s.frontier[0].node
}

func (s *searchState) pop() *node {
	return heap.Pop(&s.frontier).(frontierEntry).node
}

// affordable reports whether an edge arriving at the given accumulated cost
// stays within the configured threshold. No threshold means always
// affordable.
func (s *searchState) affordable(cost float64) bool {
	return !s.hasThreshold || cost <= s.costThreshold
}

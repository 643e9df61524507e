package search

// entry is one frontier slot: an arena index plus its ordering keys.
type entry struct {
	idx  int     // arena index of the path-state
	cost float64 // accumulated cost, primary key
	seq  uint64  // insertion sequence, tie-break (earlier first)
}

// frontier is a min-heap of *entry ordered by cost, then by insertion sequence.
// It implements container/heap.Interface.
type frontier []*entry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by cost; equal costs go to the earlier insertion.
func (pq frontier) Less(i, j int) bool {
	if pq[i].cost == pq[j].cost {
		return pq[i].seq < pq[j].seq
	}

	return pq[i].cost < pq[j].cost
}

// Swap swaps two entries.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be an *entry. Called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

package search

import "weak"

// weakItem is one entry of the generic Dijkstra's open queue: a weak
// reference to a frontier node plus the joint cost it was pushed with.
// If the node it refers to has since been dominated and dropped from
// every open set, and nothing else in the tree still roots it, the node
// may already be gone by the time this entry is popped.
type weakItem struct {
	ptr      weak.Pointer[TreeNode]
	priority float64
}

type weakQueue []weakItem

func (q weakQueue) Len() int            { return len(q) }
func (q weakQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q weakQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *weakQueue) Push(x interface{}) { *q = append(*q, x.(weakItem)) }
func (q *weakQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// strongItem is one entry of the brute-force search's open queue: a
// strong reference, since the brute-force core never prunes and so has
// no use for weak tracking.
type strongItem struct {
	node     *TreeNode
	priority float64
}

type strongQueue []strongItem

func (q strongQueue) Len() int            { return len(q) }
func (q strongQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q strongQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *strongQueue) Push(x interface{}) { *q = append(*q, x.(strongItem)) }
func (q *strongQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

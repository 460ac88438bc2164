// SPDX-License-Identifier: MIT

package measure

import (
	"container/heap"
	"math"
)

// shortestFrom runs single-source Dijkstra over adj and returns the finite
// distance of every reachable concept (source included, at 0).
//
// Implementation:
//   - Stage 1: dist[src]=0, push src.
//   - Stage 2: pop the closest unvisited item; stale entries are skipped
//     (lazy decrease-key: improvements push duplicates).
//   - Stage 3: relax every neighbor and push on improvement.
//
// Complexity: O((V+E) log V) time, O(V+E) heap entries worst case.
func shortestFrom(adj map[string]map[string]float64, src string) map[string]float64 {
	dist := map[string]float64{src: 0}
	visited := make(map[string]bool, len(adj))

	pq := distPQ{}
	heap.Init(&pq)
	heap.Push(&pq, &distItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		for v, w := range adj[item.id] {
			if visited[v] {
				continue
			}
			nd := item.dist + w
			if old, ok := dist[v]; !ok || nd < old {
				dist[v] = nd
				heap.Push(&pq, &distItem{id: v, dist: nd})
			}
		}
	}

	return dist
}

// maxFinite returns the largest value in dist, or 0 for an empty map.
func maxFinite(dist map[string]float64) float64 {
	m := 0.0
	for _, d := range dist {
		if !math.IsInf(d, 0) && d > m {
			m = d
		}
	}

	return m
}

// distItem is one (concept, tentative distance) heap entry.
type distItem struct {
	id   string
	dist float64
}

// distPQ is a min-heap of *distItem ordered by dist, ties broken by id so
// pop order is deterministic.
type distPQ []*distItem

func (pq distPQ) Len() int { return len(pq) }

func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }

func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

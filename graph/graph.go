// Package graph orders the pieces of a diagram by their connections.
package graph

import (
	"errors"
	"sort"
)

// ErrCycle is returned when the edges form a cycle.
var ErrCycle = errors.New("cycle detected in graph")

// Edge is a directed connection between two node IDs.
type Edge struct {
	From string
	To   string
}

// TopologicalSort orders ids with Kahn's algorithm so every edge points
// forward. Ties are broken by ID for a deterministic result. Edges that name
// unknown nodes are ignored.
func TopologicalSort(ids []string, edges []Edge) ([]string, error) {
	inDegree, outs := build(ids, edges)

	queue := []string{}
	for _, id := range ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	result := make([]string, 0, len(ids))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		result = append(result, u)

		for _, v := range outs[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(result) != len(inDegree) {
		return nil, ErrCycle
	}
	return result, nil
}

// Layers groups ids by longest path from a source: sources are layer 0 and
// every node sits one layer after its deepest predecessor. Each layer keeps
// topological order.
func Layers(ids []string, edges []Edge) ([][]string, error) {
	order, err := TopologicalSort(ids, edges)
	if err != nil {
		return nil, err
	}
	_, outs := build(ids, edges)

	depth := make(map[string]int, len(order))
	var layers [][]string
	for _, id := range order {
		d := depth[id]
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], id)
		for _, v := range outs[id] {
			depth[v] = max(depth[v], d+1)
		}
	}
	return layers, nil
}

func build(ids []string, edges []Edge) (map[string]int, map[string][]string) {
	inDegree := make(map[string]int, len(ids))
	for _, id := range ids {
		inDegree[id] = 0
	}
	outs := make(map[string][]string)
	for _, e := range edges {
		_, okFrom := inDegree[e.From]
		_, okTo := inDegree[e.To]
		if !okFrom || !okTo {
			continue
		}
		outs[e.From] = append(outs[e.From], e.To)
		inDegree[e.To]++
	}
	return inDegree, outs
}

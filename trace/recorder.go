// Package trace records the resolution edges the bridge observes, giving a
// debuggable view of the module graph both build passes walk.
package trace

import (
	"errors"
	"sort"
	"sync"

	graphlib "github.com/dominikbraun/graph"
)

// Edge is one observed resolution: From imported To.
type Edge struct {
	From string
	To   string
}

// Recorder accumulates resolution edges into a directed graph. Safe for
// concurrent use; duplicate edges are recorded once.
type Recorder struct {
	mu sync.Mutex
	g  graphlib.Graph[string, string]
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		g: graphlib.New(graphlib.StringHash, graphlib.Directed()),
	}
}

// RecordEdge records that from resolved an import to to. Self-edges are
// dropped; everything else is additive.
func (r *Recorder) RecordEdge(from, to string) error {
	if from == "" || to == "" || from == to {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.g.AddVertex(from); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return err
	}
	if err := r.g.AddVertex(to); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return err
	}
	if err := r.g.AddEdge(from, to); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
		return err
	}
	return nil
}

// Edges returns every recorded edge sorted by source, then target.
func (r *Recorder) Edges() ([]Edge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	adjacency, err := r.g.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	var edges []Edge
	for from, targets := range adjacency {
		for to := range targets {
			edges = append(edges, Edge{From: from, To: to})
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges, nil
}

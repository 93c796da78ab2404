// Package graph implements the concurrent dependency graph: a mapping from
// parent cell to the ordered list of children whose expression references
// that parent.
package graph

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// entry guards one parent's child list with its own mutex, so that
// unrelated parents never contend on the same lock (§5's per-parent-lock
// requirement).
type entry struct {
	mu       sync.Mutex
	children []string
}

// Graph is the concurrent dependency graph, keyed by parent cell name.
type Graph struct {
	parents *xsync.MapOf[string, *entry]
}

func New() *Graph {
	return &Graph{parents: xsync.NewMapOf[string, *entry]()}
}

func (g *Graph) entryFor(parent string) *entry {
	e, _ := g.parents.LoadOrCompute(parent, func() *entry {
		return &entry{}
	})
	return e
}

// AddEdge appends child to parent's child list. Duplicates are permitted
// per §4.2; the propagator is idempotent over repeated children.
func (g *Graph) AddEdge(parent, child string) {
	e := g.entryFor(parent)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.children = append(e.children, child)
}

// RemoveEdge deletes every occurrence of child from parent's child list.
func (g *Graph) RemoveEdge(parent, child string) {
	e, ok := g.parents.Load(parent)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.children[:0]
	for _, c := range e.children {
		if c != child {
			kept = append(kept, c)
		}
	}
	e.children = kept
}

// Children returns a snapshot copy of parent's child list. An unknown
// parent yields an empty slice, never nil-panicking callers.
func (g *Graph) Children(parent string) []string {
	e, ok := g.parents.Load(parent)
	if !ok {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.children))
	copy(out, e.children)
	return out
}

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddRemoveChildren(t *testing.T) {
	g := New()
	g.AddEdge("A1", "B1")
	g.AddEdge("A1", "C1")

	assert.Equal(t, []string{"B1", "C1"}, g.Children("A1"))

	g.RemoveEdge("A1", "B1")
	assert.Equal(t, []string{"C1"}, g.Children("A1"))
}

func TestChildrenOfUnknownParentIsEmpty(t *testing.T) {
	g := New()
	assert.Empty(t, g.Children("Z99"))
}

func TestDuplicateEdgesPermitted(t *testing.T) {
	g := New()
	g.AddEdge("A1", "B1")
	g.AddEdge("A1", "B1")
	assert.Len(t, g.Children("A1"), 2)
}

package projectgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/projectgraph"
)

func newNode(path string) *projectgraph.Node {
	return projectgraph.NewNode(domain.NewProject(domain.ProjectSpec{FullPath: path}))
}

func TestGraph_NodesInDiscoveryOrder(t *testing.T) {
	a := newNode("/repo/a/a.proj.yaml")
	b := newNode("/repo/b/b.proj.yaml")
	c := newNode("/repo/c/c.proj.yaml")
	d := newNode("/repo/d/d.proj.yaml")
	a.AddReference(b)
	a.AddReference(c)
	b.AddReference(d)
	c.AddReference(d)

	g := projectgraph.NewGraph(a)

	require.Equal(t, a, g.EntryNode())
	nodes := g.Nodes()
	require.Len(t, nodes, 4)
	var paths []string
	for _, n := range nodes {
		paths = append(paths, n.Project().FullPath())
	}
	assert.Equal(t, []string{
		"/repo/a/a.proj.yaml",
		"/repo/b/b.proj.yaml",
		"/repo/c/c.proj.yaml",
		"/repo/d/d.proj.yaml",
	}, paths)
}

func TestGraph_Cycle(t *testing.T) {
	a := newNode("/repo/a/a.proj.yaml")
	b := newNode("/repo/b/b.proj.yaml")
	a.AddReference(b)
	b.AddReference(a)

	g := projectgraph.NewGraph(a)

	assert.Len(t, g.Nodes(), 2)
	require.Len(t, b.References(), 1)
	assert.Equal(t, a, b.References()[0])
}

func TestGraph_NilEntry(t *testing.T) {
	g := projectgraph.NewGraph(nil)
	assert.Empty(t, g.Nodes())
}

// Package projectgraph holds the in-memory project reference graph.
package projectgraph

import (
	"go.trai.ch/seer/internal/core/ports"
)

// Node is one evaluated project and its direct references.
type Node struct {
	project ports.EvaluatedProject
	refs    []*Node
}

// NewNode creates a node without references.
func NewNode(project ports.EvaluatedProject) *Node {
	return &Node{project: project}
}

// AddReference appends a direct reference. Self references and cycles are allowed.
func (n *Node) AddReference(ref *Node) {
	n.refs = append(n.refs, ref)
}

// Project returns the evaluated project of the node.
func (n *Node) Project() ports.EvaluatedProject {
	return n.project
}

// References returns the direct references in declaration order.
func (n *Node) References() []ports.ProjectGraphNode {
	out := make([]ports.ProjectGraphNode, len(n.refs))
	for i, ref := range n.refs {
		out[i] = ref
	}
	return out
}

// Graph is a loaded reference graph.
type Graph struct {
	entry *Node
	nodes []*Node
}

// NewGraph creates a graph rooted at entry. Nodes are collected in breadth-first
// discovery order, starting with entry.
func NewGraph(entry *Node) *Graph {
	g := &Graph{entry: entry}
	if entry == nil {
		return g
	}

	seen := map[*Node]struct{}{entry: {}}
	queue := []*Node{entry}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		g.nodes = append(g.nodes, current)
		for _, ref := range current.refs {
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			queue = append(queue, ref)
		}
	}
	return g
}

// EntryNode returns the node the graph was loaded for.
func (g *Graph) EntryNode() ports.ProjectGraphNode {
	return g.entry
}

// Nodes returns every reachable node, entry first.
func (g *Graph) Nodes() []ports.ProjectGraphNode {
	out := make([]ports.ProjectGraphNode, len(g.nodes))
	for i, node := range g.nodes {
		out[i] = node
	}
	return out
}

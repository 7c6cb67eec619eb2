// Package graph holds the predictors that need a project's references: the closure of
// project files and imports, copy-to-output and copy-to-publish propagation, and the
// outputs of referenced projects.
package graph

import "go.trai.ch/seer/internal/core/ports"

// closure returns every node reachable from the references of root, breadth first.
// root itself is excluded, even when a cycle leads back to it.
func closure(root ports.ProjectGraphNode) []ports.ProjectGraphNode {
	visited := map[ports.ProjectGraphNode]struct{}{root: {}}
	queue := append([]ports.ProjectGraphNode(nil), root.References()...)

	var out []ports.ProjectGraphNode
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}
		out = append(out, current)
		queue = append(queue, current.References()...)
	}
	return out
}

// directReferences returns the distinct direct references of root, excluding root.
func directReferences(root ports.ProjectGraphNode) []ports.ProjectGraphNode {
	seen := map[ports.ProjectGraphNode]struct{}{root: {}}
	var out []ports.ProjectGraphNode
	for _, ref := range root.References() {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	return out
}

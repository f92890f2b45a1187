package query

import (
	"fmt"
	"strings"
)

// Step is one node on a root-to-term path. Distance is signed relative to
// the queried term: the term itself is 0, its direct parent -1, the root
// the most negative value on the path.
type Step struct {
	ID       string
	Label    string
	Distance int
}

// Trajectory is one complete path from a root term to the queried term,
// ordered root-first.
type Trajectory []Step

// trajNode is a node of the merged trajectory tree. Children keep first
// insertion order, which is deterministic because trajectories are
// enumerated in sorted-branch order.
type trajNode struct {
	step     Step
	children []*trajNode
}

func (n *trajNode) child(s Step) *trajNode {
	for _, c := range n.children {
		if c.step == s {
			return c
		}
	}
	c := &trajNode{step: s}
	n.children = append(n.children, c)
	return c
}

// FormatTrajectoriesTree merges trajectories sharing a common prefix into
// one tree, keyed by the full (id, label, distance) step, and renders it
// with ASCII branch markers. A single trajectory renders as a flat
// "id: label" list instead of a tree; no trajectories render as the empty
// string.
func FormatTrajectoriesTree(trajectories []Trajectory) string {
	if len(trajectories) == 0 {
		return ""
	}
	if len(trajectories) == 1 {
		var b strings.Builder
		for _, s := range trajectories[0] {
			fmt.Fprintf(&b, "%s: %s\n", s.ID, s.Label)
		}
		return b.String()
	}

	// Forest: distinct first steps become distinct top-level nodes.
	root := &trajNode{}
	for _, tr := range trajectories {
		at := root
		for _, s := range tr {
			at = at.child(s)
		}
	}

	var b strings.Builder
	for _, top := range root.children {
		fmt.Fprintf(&b, "%s: %s (distance=%d)\n", top.step.ID, top.step.Label, top.step.Distance)
		renderChildren(&b, top, "")
	}
	return b.String()
}

func renderChildren(b *strings.Builder, n *trajNode, prefix string) {
	for i, c := range n.children {
		marker, extension := "├── ", "│   "
		if i == len(n.children)-1 {
			marker, extension = "└── ", "    "
		}
		fmt.Fprintf(b, "%s%s%s: %s (distance=%d)\n", prefix, marker, c.step.ID, c.step.Label, c.step.Distance)
		renderChildren(b, c, prefix+extension)
	}
}

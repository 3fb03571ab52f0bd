package trace

import (
	"fmt"
	"sort"
	"strings"
)

// DOT converts the recorded resolution graph to Graphviz DOT format. Output
// ordering is deterministic so renders diff cleanly across runs.
func DOT(r *Recorder) (string, error) {
	edges, err := r.Edges()
	if err != nil {
		return "", err
	}

	nodeSet := make(map[string]bool)
	for _, edge := range edges {
		nodeSet[edge.From] = true
		nodeSet[edge.To] = true
	}
	nodes := make([]string, 0, len(nodeSet))
	for node := range nodeSet {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)

	var sb strings.Builder
	sb.WriteString("digraph resolutions {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")
	sb.WriteString("\n")

	for _, node := range nodes {
		sb.WriteString(fmt.Sprintf("  %q;\n", node))
	}
	if len(nodes) > 0 {
		sb.WriteString("\n")
	}

	for _, edge := range edges {
		sb.WriteString(fmt.Sprintf("  %q -> %q;\n", edge.From, edge.To))
	}

	sb.WriteString("}")
	return sb.String(), nil
}

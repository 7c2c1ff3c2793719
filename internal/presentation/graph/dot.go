// Package graph renders a machine topology as Graphviz DOT or Mermaid
// text. It consumes the type-erased registry.Topology and has no feedback
// path into the engine.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/sxm/pkg/registry"
)

// GenerateDot produces Graphviz DOT syntax for the topology. Initial
// states get an invisible entry arrow, final states a double circle, and
// every defined arc is labelled with its processing function.
func GenerateDot(topo registry.Topology) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", sanitizeID(topo.Name))
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [shape=circle];\n")

	sb.WriteString("    // Initial states\n")
	for _, state := range topo.Initial {
		fmt.Fprintf(&sb, "    \"_start_%s\" [style=invisible, label=\"\", width=0, height=0];\n", state)
		fmt.Fprintf(&sb, "    \"_start_%s\" -> \"%s\" [penwidth=2.0];\n", state, state)
	}

	sb.WriteString("    // Final states\n")
	for _, state := range topo.Final {
		fmt.Fprintf(&sb, "    \"%s\" [shape=doublecircle];\n", state)
	}

	sb.WriteString("    // Transitions\n")
	for _, edge := range topo.Edges {
		fmt.Fprintf(&sb, "    \"%s\" -> \"%s\" [label=\"%s\"];\n", edge.From, edge.To, edge.Label)
	}

	sb.WriteString("}\n")
	return sb.String()
}

func sanitizeID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

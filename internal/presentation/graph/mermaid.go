package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/sxm/pkg/registry"
)

// GenerateMermaid produces a Mermaid flowchart for the topology. Initial
// states render as circles, other states as rectangles; arcs carry their
// processing function as the edge label.
func GenerateMermaid(topo registry.Topology) string {
	initial := make(map[string]bool)
	for _, state := range topo.Initial {
		initial[state] = true
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, state := range topo.States {
		safeID := sanitizeID(state)
		opener, closer := "[", "]"
		if initial[state] {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, state, closer)
	}

	for _, edge := range topo.Edges {
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", sanitizeID(edge.From), edge.Label, sanitizeID(edge.To))
	}

	return sb.String()
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sxm"
	"github.com/aretw0/sxm/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export a model's topology visualization",
	Long:  `Renders the transition topology of a registered model as Graphviz DOT or Mermaid.`,
	Run: func(cmd *cobra.Command, args []string) {
		modelName, _ := cmd.Flags().GetString("model")
		format, _ := cmd.Flags().GetString("format")

		reg := sxm.DefaultRegistry()
		model, ok := reg.Get(modelName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown model %q (available: %v)\n", modelName, reg.Names())
			os.Exit(1)
		}

		topo := model.Topology()
		switch format {
		case "dot":
			fmt.Print(graph.GenerateDot(topo))
		case "mermaid":
			fmt.Print(graph.GenerateMermaid(topo))
		default:
			fmt.Fprintf(os.Stderr, "Unknown format %q (want dot or mermaid)\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	graphCmd.Flags().String("model", "digicode", "Model to render")
	graphCmd.Flags().String("format", "dot", "Output format: dot or mermaid")
	rootCmd.AddCommand(graphCmd)
}

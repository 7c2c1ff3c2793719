package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/sxm"
	"github.com/aretw0/sxm/internal/presentation/tui"
	"github.com/aretw0/sxm/pkg/registry"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a test suite from a registered model",
	Long: `Generates one of the three test suites (logic, robustness, coverage) for a
registered model and writes it to stdout as a report, YAML or JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		modelName, _ := cmd.Flags().GetString("model")
		kind, _ := cmd.Flags().GetString("kind")
		format, _ := cmd.Flags().GetString("format")
		depth, _ := cmd.Flags().GetInt("depth")
		if !cmd.Flags().Changed("depth") {
			depth = cfg.DepthBound
		}

		reg := sxm.DefaultRegistry()
		model, ok := reg.Get(modelName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown model %q (available: %v)\n", modelName, reg.Names())
			os.Exit(1)
		}

		suite, err := model.Generate(registry.Kind(kind), depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating tests: %v\n", err)
			os.Exit(1)
		}

		if err := writeSuite(suite, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing suite: %v\n", err)
			os.Exit(1)
		}
	},
}

func writeSuite(suite *registry.Suite, format string) error {
	switch format {
	case "report":
		render := tui.NewRenderer()
		out, err := render(tui.SuiteMarkdown(suite))
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	case "yaml":
		data, err := yaml.Marshal(suite)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(suite)
	}
	return fmt.Errorf("unknown format %q (want report, yaml or json)", format)
}

func init() {
	generateCmd.Flags().String("model", "digicode", "Model to generate tests for")
	generateCmd.Flags().String("kind", "logic", "Test kind: logic, robustness or coverage")
	generateCmd.Flags().String("format", "report", "Output format: report, yaml or json")
	generateCmd.Flags().Int("depth", 10, "Depth bound for the guard-aware search (coverage only)")
	rootCmd.AddCommand(generateCmd)
}

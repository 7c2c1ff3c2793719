package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sxm/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "sxm",
	Short: "sxm generates model-based tests from stream X-machine models",
	Long: `sxm synthesizes conformance (logic), input-completeness (robustness) and
data-path (coverage) test suites from stream X-machine models: state
machines whose transitions are guarded functions over an explicit memory.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", ".sxm.yaml", "Path to the configuration file")
}

// loadConfig reads the configured file, falling back to defaults when it
// does not exist.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

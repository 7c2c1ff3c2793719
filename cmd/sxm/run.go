package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/sxm"
	"github.com/aretw0/sxm/internal/adapters/redis"
	"github.com/aretw0/sxm/internal/logging"
	"github.com/aretw0/sxm/pkg/ports"
	"github.com/aretw0/sxm/pkg/registry"
	"github.com/aretw0/sxm/pkg/runner"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a model interactively",
	Long: `Starts an interactive session against a registered model using the
ordered-trial dispatch policy: each line of input is parsed into a symbol
and tried against the available processing functions in priority order.

With --session and a configured redis store, the session survives restarts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		modelName, _ := cmd.Flags().GetString("model")
		sessionID, _ := cmd.Flags().GetString("session")

		reg := sxm.DefaultRegistry()
		model, ok := reg.Get(modelName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown model %q (available: %v)\n", modelName, reg.Names())
			os.Exit(1)
		}

		session := model.NewSession()
		ctx := context.Background()

		var store ports.SessionStore
		if sessionID != "" && cfg.Redis.Addr != "" {
			store = redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			snap, err := store.Load(ctx, sessionID)
			switch {
			case err == nil:
				if err := session.Restore(snap); err != nil {
					fmt.Fprintf(os.Stderr, "Error restoring session: %v\n", err)
					os.Exit(1)
				}
				logger.Info("session resumed", "session", sessionID, "state", session.State())
			case errors.Is(err, ports.ErrSessionNotFound):
				logger.Info("session started", "session", sessionID)
			default:
				fmt.Fprintf(os.Stderr, "Error loading session: %v\n", err)
				os.Exit(1)
			}
		}

		fmt.Printf("Running %s. State: %s. Enter inputs, or \"quit\" to exit.\n", modelName, session.State())

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "quit" || line == "exit" {
				break
			}

			output, emitted, err := session.Step(line)
			switch {
			case errors.Is(err, runner.ErrNoTransition):
				fmt.Println("  (rejected: no valid transition)")
			case err != nil:
				fmt.Printf("  Error: %v\n", err)
				continue
			case emitted:
				fmt.Printf("  Output: %s\n", output)
			}
			fmt.Printf("  State: %s\n", session.State())

			if store != nil {
				if err := saveSession(ctx, store, sessionID, session); err != nil {
					logger.Error("failed to persist session", "err", err)
				}
			}
		}
	},
}

func saveSession(ctx context.Context, store ports.SessionStore, sessionID string, session registry.Session) error {
	snap, err := session.Snapshot()
	if err != nil {
		return err
	}
	return store.Save(ctx, sessionID, snap)
}

func init() {
	runCmd.Flags().String("model", "digicode", "Model to run")
	runCmd.Flags().String("session", "", "Session ID for durable execution (requires redis in config)")
	rootCmd.AddCommand(runCmd)
}

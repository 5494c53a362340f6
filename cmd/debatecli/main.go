package main

import (
	"fmt"
	"os"

	"github.com/lorenzotomasdiez/debate-cli/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	root := &cobra.Command{
		Use:   "debatecli",
		Short: "Multi-agent debate orchestrator using the Claude and Gemini CLIs",
		Long:  "Runs structured three-step debates: an advocate argues for a topic, an opponent argues against it with the advocate's response in context, and a synthesizer reconciles both positions. Debates are stored locally as JSON.",
	}

	root.PersistentFlags().String("data-dir", "", "Directory for stored debates (default: DEBATE_DATA_DIR or data/debates)")

	root.AddCommand(newDebateCmd())
	root.AddCommand(newDebatesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment config and applies the --data-dir
// override.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dataDir, _ := cmd.Root().PersistentFlags().GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

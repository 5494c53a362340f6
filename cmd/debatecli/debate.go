package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/lorenzotomasdiez/debate-cli/internal/agent"
	"github.com/lorenzotomasdiez/debate-cli/internal/config"
	"github.com/lorenzotomasdiez/debate-cli/internal/debate"
	"github.com/lorenzotomasdiez/debate-cli/internal/models"
	"github.com/lorenzotomasdiez/debate-cli/internal/output"
	"github.com/lorenzotomasdiez/debate-cli/internal/storage"
	"github.com/spf13/cobra"
)

func newDebateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debate",
		Short: "Run a debate on the given topic",
		RunE:  runDebate,
	}
	cmd.Flags().String("topic", "", "Debate topic title (required)")
	cmd.Flags().String("description", "", "Detailed topic description (required)")
	cmd.Flags().String("provider", "claude", "AI provider: claude, gemini, or mixed")
	cmd.Flags().String("output", "", "Also write the rendered debate to this file")
	cmd.MarkFlagRequired("topic")
	cmd.MarkFlagRequired("description")
	return cmd
}

func runDebate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("topic")
	description, _ := cmd.Flags().GetString("description")
	provider, _ := cmd.Flags().GetString("provider")
	outputFile, _ := cmd.Flags().GetString("output")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	specs, err := defaultSpecs(provider, cfg)
	if err != nil {
		return err
	}

	backend, err := storage.NewJSONBackend(cfg.DataDir)
	if err != nil {
		return err
	}

	factory := agent.NewFactory()
	factory.ClaudeBin = cfg.ClaudeBin
	factory.GeminiBin = cfg.GeminiBin

	orch := debate.NewOrchestrator(backend, func(spec models.AgentSpec) (debate.Agent, error) {
		return factory.Create(spec)
	})
	orch.OnStep = printStep

	// Ctrl+C terminates the in-flight agent and abandons the rest.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	topic := models.Topic{Title: title, Description: description}
	fmt.Printf("Debate: %s\nProvider: %s | Agents: %d | Output: %s\n\n", title, provider, len(specs), cfg.DataDir)

	record, err := orch.RunDebate(ctx, topic, specs)
	if err != nil && !errors.Is(err, debate.ErrPersistence) {
		return err
	}

	rendered := output.FormatDebate(record)
	fmt.Println(rendered)

	if outputFile != "" {
		if werr := os.WriteFile(outputFile, []byte(rendered), 0o644); werr != nil {
			return fmt.Errorf("writing %s: %w", outputFile, werr)
		}
		fmt.Printf("Debate written to %s\n", outputFile)
	}

	fmt.Printf("Debate ID: %s\n", record.DebateID)
	if err != nil {
		// The record above is complete and usable; only storing it failed.
		return err
	}
	return nil
}

func printStep(result models.AgentResult) {
	status := output.Colorize(output.AnsiGreen, "ok")
	if !result.Success {
		status = output.Colorize(output.AnsiRed, "failed: "+result.ErrorMessage)
	}
	fmt.Printf("[%s] %s (%.1fms) %s\n", result.Role, output.Bold(result.AgentName), result.ExecutionTimeMS, status)
}

// defaultSpecs builds the agent trio for a provider choice, applying the
// configured temperature, token and timeout defaults.
func defaultSpecs(provider string, cfg *config.Config) ([]models.AgentSpec, error) {
	type seat struct {
		name     string
		role     models.Role
		provider models.Provider
		model    string
	}

	var seats []seat
	switch provider {
	case "claude":
		seats = []seat{
			{"Claude FOR", models.RoleAdvocate, models.ProviderClaude, "haiku"},
			{"Claude AGAINST", models.RoleOpponent, models.ProviderClaude, "haiku"},
			{"Claude SYNTHESIS", models.RoleSynthesizer, models.ProviderClaude, "haiku"},
		}
	case "gemini":
		seats = []seat{
			{"Gemini FOR", models.RoleAdvocate, models.ProviderGemini, "flash"},
			{"Gemini AGAINST", models.RoleOpponent, models.ProviderGemini, "flash"},
			{"Gemini SYNTHESIS", models.RoleSynthesizer, models.ProviderGemini, "flash"},
		}
	case "mixed":
		seats = []seat{
			{"Claude FOR", models.RoleAdvocate, models.ProviderClaude, "haiku"},
			{"Gemini AGAINST", models.RoleOpponent, models.ProviderGemini, "flash"},
			{"Claude SYNTHESIS", models.RoleSynthesizer, models.ProviderClaude, "haiku"},
		}
	default:
		return nil, fmt.Errorf("unknown provider %q: want claude, gemini or mixed", provider)
	}

	specs := make([]models.AgentSpec, len(seats))
	for i, s := range seats {
		spec, err := models.NewAgentSpec(s.name, s.role, s.provider, s.model)
		if err != nil {
			return nil, err
		}
		spec.Temperature = cfg.Temperature
		spec.MaxTokens = cfg.MaxTokens
		spec.TimeoutSeconds = cfg.TimeoutSeconds
		specs[i] = spec
	}
	return specs, nil
}

package agent

import (
	"context"

	"github.com/lorenzotomasdiez/debate-cli/internal/models"
)

// claudeAgent invokes the claude CLI in print mode. Output is used verbatim.
type claudeAgent struct {
	spec models.AgentSpec
	bin  string
	run  runFunc
}

func (a *claudeAgent) buildArgs(prompt string) []string {
	return []string{"--model", a.spec.ModelID, "--print", prompt}
}

func (a *claudeAgent) Execute(ctx context.Context, prompt string) models.AgentResult {
	return execute(ctx, a.run, a.spec, a.bin, a.buildArgs(prompt), nil)
}

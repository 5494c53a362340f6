package agent

import (
	"context"
	"strings"

	"github.com/lorenzotomasdiez/debate-cli/internal/models"
)

const credentialNotice = "Loaded cached credentials"

// geminiAgent invokes the gemini CLI non-interactively. The CLI prints
// credential-cache notices on stdout, so those lines are stripped before the
// remaining output is used as the response.
type geminiAgent struct {
	spec models.AgentSpec
	bin  string
	run  runFunc
}

func (a *geminiAgent) buildArgs(prompt string) []string {
	return []string{"--yolo", "-m", a.spec.ModelID, prompt}
}

func (a *geminiAgent) Execute(ctx context.Context, prompt string) models.AgentResult {
	return execute(ctx, a.run, a.spec, a.bin, a.buildArgs(prompt), cleanGeminiOutput)
}

// cleanGeminiOutput drops credential notice lines from stdout.
func cleanGeminiOutput(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, credentialNotice) {
			continue
		}
		if strings.Contains(strings.ToLower(line), "credentials") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

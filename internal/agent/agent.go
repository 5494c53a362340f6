// Package agent executes debate prompts through external CLI tools. Each
// provider wraps the shared process runner with its own command construction
// and output cleanup.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lorenzotomasdiez/debate-cli/internal/models"
)

// Agent turns a prompt into generated text via one external tool. Execute
// never returns an error: every failure is folded into the result, so
// callers need no provider-specific handling.
type Agent interface {
	Execute(ctx context.Context, prompt string) models.AgentResult
}

// ErrUnsupportedProvider is returned by the factory for providers outside
// {claude, gemini}.
var ErrUnsupportedProvider = errors.New("agent: unsupported provider")

// Factory builds provider-specific agents. The binary fields allow tests and
// configuration to point at alternative executables.
type Factory struct {
	ClaudeBin string
	GeminiBin string

	run runFunc
}

// NewFactory returns a Factory using the default binaries on PATH.
func NewFactory() *Factory {
	return &Factory{ClaudeBin: "claude", GeminiBin: "gemini", run: Run}
}

// Create builds the agent variant for spec's provider.
func (f *Factory) Create(spec models.AgentSpec) (Agent, error) {
	run := f.run
	if run == nil {
		run = Run
	}
	switch spec.Provider {
	case models.ProviderClaude:
		return &claudeAgent{spec: spec, bin: f.ClaudeBin, run: run}, nil
	case models.ProviderGemini:
		return &geminiAgent{spec: spec, bin: f.GeminiBin, run: run}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, spec.Provider)
	}
}

// execute runs the tool and converts the outcome into an AgentResult.
// Elapsed time covers the process run only, not prompt construction. An
// optional clean function scrubs provider noise from stdout; after cleaning,
// an empty response is a failure rather than a valid empty answer.
func execute(ctx context.Context, run runFunc, spec models.AgentSpec, bin string, args []string, clean func(string) string) models.AgentResult {
	start := time.Now()
	res, err := run(ctx, spec.Timeout(), bin, args...)
	elapsed := time.Since(start)

	if err != nil {
		return models.FailureResult(spec, err.Error(), elapsed)
	}

	text := res.Stdout
	if clean != nil {
		text = clean(text)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.FailureResult(spec, fmt.Sprintf("%s: %s produced no output", ErrEmptyResponse, bin), elapsed)
	}
	return models.SuccessResult(spec, text, elapsed)
}

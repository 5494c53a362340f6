package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lorenzotomasdiez/debate-cli/internal/models"
)

// fakeRun records the invocation and returns canned output.
type fakeRun struct {
	name    string
	args    []string
	timeout time.Duration

	result RunResult
	err    error
}

func (f *fakeRun) run(_ context.Context, timeout time.Duration, name string, args ...string) (RunResult, error) {
	f.timeout = timeout
	f.name = name
	f.args = args
	return f.result, f.err
}

func testFactory(fake *fakeRun) *Factory {
	return &Factory{ClaudeBin: "claude", GeminiBin: "gemini", run: fake.run}
}

func claudeSpec(t *testing.T) models.AgentSpec {
	t.Helper()
	spec, err := models.NewAgentSpec("Claude FOR", models.RoleAdvocate, models.ProviderClaude, "haiku")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return spec
}

func geminiSpec(t *testing.T) models.AgentSpec {
	t.Helper()
	spec, err := models.NewAgentSpec("Gemini AGAINST", models.RoleOpponent, models.ProviderGemini, "flash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return spec
}

func TestClaudeInvocationShape(t *testing.T) {
	fake := &fakeRun{result: RunResult{Stdout: "an argument\n"}}
	ag, err := testFactory(fake).Create(claudeSpec(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := ag.Execute(context.Background(), "the prompt")
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if fake.name != "claude" {
		t.Errorf("binary = %q, want claude", fake.name)
	}
	want := []string{"--model", "claude-haiku-4-5-20251001", "--print", "the prompt"}
	if fmt.Sprint(fake.args) != fmt.Sprint(want) {
		t.Errorf("args = %v, want %v", fake.args, want)
	}
	if fake.timeout != 60*time.Second {
		t.Errorf("timeout = %v, want 60s", fake.timeout)
	}
}

func TestGeminiInvocationShape(t *testing.T) {
	fake := &fakeRun{result: RunResult{Stdout: "a counter\n"}}
	ag, err := testFactory(fake).Create(geminiSpec(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ag.Execute(context.Background(), "the prompt")
	want := []string{"--yolo", "-m", "gemini-2.5-flash", "the prompt"}
	if fmt.Sprint(fake.args) != fmt.Sprint(want) {
		t.Errorf("args = %v, want %v", fake.args, want)
	}
}

func TestClaudeOutputPassedThroughVerbatim(t *testing.T) {
	out := "line one\nLoaded cached credentials mention\nline two"
	fake := &fakeRun{result: RunResult{Stdout: out}}
	ag, _ := testFactory(fake).Create(claudeSpec(t))

	result := ag.Execute(context.Background(), "p")
	if result.ResponseText != out {
		t.Errorf("claude output was altered: %q", result.ResponseText)
	}
}

func TestGeminiStripsCredentialLines(t *testing.T) {
	fake := &fakeRun{result: RunResult{Stdout: "Loaded cached credentials.\nThe real answer\nUsing stored CREDENTIALS here\n"}}
	ag, _ := testFactory(fake).Create(geminiSpec(t))

	result := ag.Execute(context.Background(), "p")
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.ResponseText != "The real answer" {
		t.Errorf("ResponseText = %q, want %q", result.ResponseText, "The real answer")
	}
}

func TestGeminiOnlyCredentialLinesIsEmptyResponse(t *testing.T) {
	fake := &fakeRun{result: RunResult{Stdout: "Loaded cached credentials.\n"}}
	ag, _ := testFactory(fake).Create(geminiSpec(t))

	result := ag.Execute(context.Background(), "p")
	if result.Success {
		t.Fatalf("expected failure, got %+v", result)
	}
	if !strings.Contains(result.ErrorMessage, "empty response") {
		t.Errorf("ErrorMessage = %q, want empty response", result.ErrorMessage)
	}
}

func TestEmptyStdoutIsFailure(t *testing.T) {
	fake := &fakeRun{result: RunResult{Stdout: "   \n"}}
	ag, _ := testFactory(fake).Create(claudeSpec(t))

	result := ag.Execute(context.Background(), "p")
	if result.Success {
		t.Fatalf("expected failure for blank output, got %+v", result)
	}
	if result.ResponseText != "" {
		t.Errorf("failed result carries text: %q", result.ResponseText)
	}
}

func TestRunErrorBecomesFailedResult(t *testing.T) {
	fake := &fakeRun{err: fmt.Errorf("%w: claude did not finish within 60s", ErrTimeout)}
	ag, _ := testFactory(fake).Create(claudeSpec(t))

	result := ag.Execute(context.Background(), "p")
	if result.Success {
		t.Fatalf("expected failure, got %+v", result)
	}
	if !strings.Contains(result.ErrorMessage, "timeout") {
		t.Errorf("ErrorMessage = %q, want timeout", result.ErrorMessage)
	}
	if result.AgentName != "Claude FOR" || result.Role != models.RoleAdvocate {
		t.Errorf("failed result lost spec identity: %+v", result)
	}
}

func TestFactoryUnsupportedProvider(t *testing.T) {
	spec := claudeSpec(t)
	spec.Provider = models.Provider("openai")

	_, err := testFactory(&fakeRun{}).Create(spec)
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Errorf("expected ErrUnsupportedProvider, got %v", err)
	}
}

func TestFactoryBinaryOverrides(t *testing.T) {
	fake := &fakeRun{result: RunResult{Stdout: "x"}}
	f := testFactory(fake)
	f.ClaudeBin = "/opt/bin/claude-next"

	ag, _ := f.Create(claudeSpec(t))
	ag.Execute(context.Background(), "p")
	if fake.name != "/opt/bin/claude-next" {
		t.Errorf("binary = %q, want override", fake.name)
	}
}

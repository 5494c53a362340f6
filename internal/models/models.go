package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role identifies an agent's position in the debate. The serialized values
// match the record format of earlier versions, so stored debates stay
// readable.
type Role string

const (
	RoleAdvocate    Role = "FOR"
	RoleOpponent    Role = "AGAINST"
	RoleSynthesizer Role = "SYNTHESIS"
)

// Provider identifies which external CLI tool backs an agent.
type Provider string

const (
	ProviderClaude Provider = "claude"
	ProviderGemini Provider = "gemini"
)

// Topic is the subject of a debate. Read-only once constructed.
type Topic struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AgentSpec configures a single debate agent. Build it with NewAgentSpec so
// the model ID is resolved; treat it as immutable afterwards.
type AgentSpec struct {
	Name           string   `json:"name"`
	Role           Role     `json:"role"`
	Provider       Provider `json:"model_provider"`
	ModelName      string   `json:"model_name"`
	ModelID        string   `json:"model_id"`
	Temperature    float64  `json:"temperature"`
	MaxTokens      int      `json:"max_tokens"`
	TimeoutSeconds int      `json:"timeout_seconds"`
}

const (
	DefaultTemperature    = 0.7
	DefaultMaxTokens      = 2000
	DefaultTimeoutSeconds = 60
)

// NewAgentSpec builds an AgentSpec with defaults, resolving the full model ID
// from (provider, modelName). Unknown provider/model combinations fail here,
// before any agent is built.
func NewAgentSpec(name string, role Role, provider Provider, modelName string) (AgentSpec, error) {
	if name == "" {
		return AgentSpec{}, fmt.Errorf("models: agent name is required")
	}
	switch role {
	case RoleAdvocate, RoleOpponent, RoleSynthesizer:
	default:
		return AgentSpec{}, fmt.Errorf("models: unknown role %q", role)
	}
	modelID, err := ResolveModelID(provider, modelName)
	if err != nil {
		return AgentSpec{}, err
	}
	return AgentSpec{
		Name:           name,
		Role:           role,
		Provider:       provider,
		ModelName:      modelName,
		ModelID:        modelID,
		Temperature:    DefaultTemperature,
		MaxTokens:      DefaultMaxTokens,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}, nil
}

// Timeout returns the per-agent execution timeout as a duration.
func (s AgentSpec) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// AgentResult is the outcome of one agent invocation. Exactly one of
// (Success with non-empty ResponseText) or (failure with ErrorMessage) holds.
type AgentResult struct {
	AgentName       string   `json:"agent_name"`
	Role            Role     `json:"role"`
	Provider        Provider `json:"model_provider"`
	ModelName       string   `json:"model_name"`
	ResponseText    string   `json:"response_text"`
	ExecutionTimeMS float64  `json:"execution_time_ms"`
	Success         bool     `json:"success"`
	ErrorMessage    string   `json:"error_message,omitempty"`
}

// SuccessResult builds a successful AgentResult for spec.
func SuccessResult(spec AgentSpec, text string, elapsed time.Duration) AgentResult {
	return AgentResult{
		AgentName:       spec.Name,
		Role:            spec.Role,
		Provider:        spec.Provider,
		ModelName:       spec.ModelName,
		ResponseText:    text,
		ExecutionTimeMS: durationMS(elapsed),
		Success:         true,
	}
}

// FailureResult builds a failed AgentResult for spec. The response text is
// always empty on failure.
func FailureResult(spec AgentSpec, errMsg string, elapsed time.Duration) AgentResult {
	return AgentResult{
		AgentName:       spec.Name,
		Role:            spec.Role,
		Provider:        spec.Provider,
		ModelName:       spec.ModelName,
		ExecutionTimeMS: durationMS(elapsed),
		Success:         false,
		ErrorMessage:    errMsg,
	}
}

// DebateRecord is the complete, append-only record of one debate run.
// Responses are ordered advocate, opponent, synthesizer.
type DebateRecord struct {
	DebateID             string        `json:"debate_id"`
	Topic                Topic         `json:"topic"`
	AgentsConfig         []AgentSpec   `json:"agents_config"`
	AgentResponses       []AgentResult `json:"agent_responses"`
	TotalExecutionTimeMS float64       `json:"total_execution_time_ms"`
	CreatedAt            time.Time     `json:"created_at"`
}

// NewDebateRecord assembles a record with a fresh ID and timestamp.
func NewDebateRecord(topic Topic, specs []AgentSpec, responses []AgentResult, totalMS float64) DebateRecord {
	return DebateRecord{
		DebateID:             uuid.NewString(),
		Topic:                topic,
		AgentsConfig:         specs,
		AgentResponses:       responses,
		TotalExecutionTimeMS: totalMS,
		CreatedAt:            time.Now().UTC(),
	}
}

// IndexEntry is the listing projection of a DebateRecord, stored alongside
// the full records so listing does not deserialize every one.
type IndexEntry struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	TopicTitle string    `json:"topic_title"`
}

func durationMS(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

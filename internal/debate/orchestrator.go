// Package debate orchestrates the three-step debate protocol: an advocate
// argues for the topic, an opponent counters with the advocate's response in
// context, and a synthesizer reconciles both.
package debate

import (
	"context"
	"errors"
	"fmt"

	"github.com/lorenzotomasdiez/debate-cli/internal/models"
)

var (
	// ErrInvalidRoleComposition is returned when the agent specs are not
	// exactly one advocate, one opponent and one synthesizer. It is the only
	// error that aborts a run before any process is spawned.
	ErrInvalidRoleComposition = errors.New("debate: invalid role composition")

	// ErrPersistence is returned when a completed debate could not be
	// stored. The in-memory record is still returned alongside it.
	ErrPersistence = errors.New("debate: persistence failed")
)

// Agent runs one prompt through an external tool. Failures are folded into
// the result, never returned as errors.
type Agent interface {
	Execute(ctx context.Context, prompt string) models.AgentResult
}

// AgentFactory builds an executable agent from its spec.
type AgentFactory func(spec models.AgentSpec) (Agent, error)

// Storage persists completed debate records.
type Storage interface {
	Save(record *models.DebateRecord) (string, error)
	Get(id string) (*models.DebateRecord, error)
	List(limit int) ([]*models.DebateRecord, error)
	Delete(id string) (bool, error)
}

// Orchestrator runs debates sequentially with context-passing and delegates
// persistence to its storage backend.
type Orchestrator struct {
	storage Storage
	factory AgentFactory

	// OnStep, when set, is called with each agent's result as it completes.
	OnStep func(models.AgentResult)
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(storage Storage, factory AgentFactory) *Orchestrator {
	return &Orchestrator{storage: storage, factory: factory}
}

// RunDebate validates specs, executes the three steps in role order with
// each later step seeing the earlier responses, and stores the resulting
// record.
//
// A failed step does not abort the run: later steps proceed with the failed
// step's empty text, so a best-effort complete record always comes back.
// Cancelling ctx terminates the in-flight process and marks the remaining
// steps failed without spawning them. If storing fails, the record is
// returned together with an error wrapping ErrPersistence.
func (o *Orchestrator) RunDebate(ctx context.Context, topic models.Topic, specs []models.AgentSpec) (*models.DebateRecord, error) {
	ordered, err := orderByRole(specs)
	if err != nil {
		return nil, err
	}

	advocate := o.runStep(ctx, ordered[0], AdvocatePrompt(topic))
	opponent := o.runStep(ctx, ordered[1], OpponentPrompt(topic, advocate.ResponseText))
	synthesis := o.runStep(ctx, ordered[2], SynthesisPrompt(topic, advocate.ResponseText, opponent.ResponseText))

	results := []models.AgentResult{advocate, opponent, synthesis}

	// Summed per-step time, not run wall-clock, so each step's cost stays
	// auditable from the record alone.
	var totalMS float64
	for _, r := range results {
		totalMS += r.ExecutionTimeMS
	}

	record := models.NewDebateRecord(topic, specs, results, totalMS)
	if _, err := o.storage.Save(&record); err != nil {
		return &record, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &record, nil
}

// GetDebate retrieves a stored debate by ID.
func (o *Orchestrator) GetDebate(id string) (*models.DebateRecord, error) {
	return o.storage.Get(id)
}

// ListDebates returns up to limit stored debates, most recent first.
func (o *Orchestrator) ListDebates(limit int) ([]*models.DebateRecord, error) {
	return o.storage.List(limit)
}

// DeleteDebate removes a stored debate, reporting whether it existed.
func (o *Orchestrator) DeleteDebate(id string) (bool, error) {
	return o.storage.Delete(id)
}

func (o *Orchestrator) runStep(ctx context.Context, spec models.AgentSpec, prompt string) models.AgentResult {
	result := o.executeStep(ctx, spec, prompt)
	if o.OnStep != nil {
		o.OnStep(result)
	}
	return result
}

func (o *Orchestrator) executeStep(ctx context.Context, spec models.AgentSpec, prompt string) models.AgentResult {
	if err := ctx.Err(); err != nil {
		return models.FailureResult(spec, fmt.Sprintf("debate: step abandoned: %v", err), 0)
	}
	ag, err := o.factory(spec)
	if err != nil {
		return models.FailureResult(spec, err.Error(), 0)
	}
	return ag.Execute(ctx, prompt)
}

// orderByRole checks that specs is exactly one agent per role and returns
// them in execution order: advocate, opponent, synthesizer.
func orderByRole(specs []models.AgentSpec) ([3]models.AgentSpec, error) {
	var ordered [3]models.AgentSpec
	if len(specs) != 3 {
		return ordered, fmt.Errorf("%w: want exactly 3 agents, got %d", ErrInvalidRoleComposition, len(specs))
	}

	positions := map[models.Role]int{
		models.RoleAdvocate:    0,
		models.RoleOpponent:    1,
		models.RoleSynthesizer: 2,
	}
	seen := make(map[models.Role]bool, 3)
	for _, spec := range specs {
		pos, ok := positions[spec.Role]
		if !ok {
			return ordered, fmt.Errorf("%w: unknown role %q", ErrInvalidRoleComposition, spec.Role)
		}
		if seen[spec.Role] {
			return ordered, fmt.Errorf("%w: duplicate role %q", ErrInvalidRoleComposition, spec.Role)
		}
		seen[spec.Role] = true
		ordered[pos] = spec
	}
	return ordered, nil
}

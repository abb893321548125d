package mcp

import (
	"errors"
	"fmt"

	"opsdeck/internal/domain/agent"
	"opsdeck/internal/domain/calendar"
	"opsdeck/internal/domain/client"
	"opsdeck/internal/domain/cost"
	"opsdeck/internal/domain/decision"
	"opsdeck/internal/domain/goal"
	"opsdeck/internal/domain/priority"
	"opsdeck/internal/domain/task"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// mapError maps domain errors to MCP error codes. Unknown errors pass
// through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, task.ErrInvalidInput),
		errors.Is(err, priority.ErrInvalidInput),
		errors.Is(err, cost.ErrInvalidInput),
		errors.Is(err, calendar.ErrInvalidInput),
		errors.Is(err, client.ErrInvalidInput),
		errors.Is(err, agent.ErrInvalidInput),
		errors.Is(err, decision.ErrInvalidInput),
		errors.Is(err, goal.ErrInvalidInput):
		return &APIError{Code: "REJECTED", Message: err.Error(), RecoveryHint: "Check required fields; state is unchanged"}
	case errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, priority.ErrPriorityNotFound),
		errors.Is(err, cost.ErrCostNotFound),
		errors.Is(err, calendar.ErrEventNotFound),
		errors.Is(err, client.ErrClientNotFound),
		errors.Is(err, agent.ErrAgentNotFound),
		errors.Is(err, decision.ErrDecisionNotFound):
		return &APIError{Code: "NOT_FOUND", Message: err.Error(), RecoveryHint: "Check ID spelling"}
	default:
		return err
	}
}

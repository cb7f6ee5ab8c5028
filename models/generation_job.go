package models

import (
	"time"

	"github.com/google/uuid"
)

// GenerationJobStatus represents the status of a generation job
type GenerationJobStatus string

const (
	JobStatusPending    GenerationJobStatus = "pending"
	JobStatusInProgress GenerationJobStatus = "in_progress"
	JobStatusCompleted  GenerationJobStatus = "completed"
	JobStatusFailed     GenerationJobStatus = "failed"
)

// Step statuses
const (
	StepPending    = "pending"
	StepInProgress = "in_progress"
	StepCompleted  = "completed"
	StepFailed     = "failed"
)

// GenerationStep represents a step in the generation process
type GenerationStep struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}

// GenerationSteps represents a list of generation steps
type GenerationSteps []GenerationStep

// Clone returns an independent copy of the steps
func (g GenerationSteps) Clone() GenerationSteps {
	out := make(GenerationSteps, len(g))
	copy(out, g)
	return out
}

// GenerationJob tracks an asynchronous legal guide generation
type GenerationJob struct {
	ID           uuid.UUID           `json:"id"`
	SessionID    string              `json:"-"`
	Topic        string              `json:"topic"`
	Status       GenerationJobStatus `json:"status"`
	CurrentStep  *string             `json:"current_step,omitempty"`
	Steps        GenerationSteps     `json:"steps"`
	Result       *string             `json:"result,omitempty"`
	ErrorCode    *string             `json:"error_code,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
}

package repository

import (
	"context"
	"sync"
	"time"

	"legalease-backend/models"

	"github.com/google/uuid"
)

// GenerationJobRepository keeps generation jobs in memory
type GenerationJobRepository struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*models.GenerationJob
}

// NewGenerationJobRepository creates a new generation job repository
func NewGenerationJobRepository() *GenerationJobRepository {
	return &GenerationJobRepository{jobs: make(map[uuid.UUID]*models.GenerationJob)}
}

// Create creates a new generation job
func (r *GenerationJobRepository) Create(ctx context.Context, job *models.GenerationJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Steps == nil {
		job.Steps = make(models.GenerationSteps, 0)
	}

	r.jobs[job.ID] = cloneJob(job)
	return nil
}

// GetByID retrieves a generation job by ID
func (r *GenerationJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GenerationJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneJob(job), nil
}

// UpdateStatus updates the status of a generation job
func (r *GenerationJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.GenerationJobStatus) error {
	return r.update(id, func(job *models.GenerationJob) {
		job.Status = status
	})
}

// UpdateProgress updates the progress of a generation job
func (r *GenerationJobRepository) UpdateProgress(ctx context.Context, id uuid.UUID, currentStep string, steps models.GenerationSteps) error {
	return r.update(id, func(job *models.GenerationJob) {
		job.CurrentStep = &currentStep
		job.Steps = steps.Clone()
	})
}

// Complete marks a generation job as completed with its result
func (r *GenerationJobRepository) Complete(ctx context.Context, id uuid.UUID, result string) error {
	return r.update(id, func(job *models.GenerationJob) {
		now := time.Now()
		job.Status = models.JobStatusCompleted
		job.Result = &result
		job.CompletedAt = &now
	})
}

// Fail marks a generation job as failed
func (r *GenerationJobRepository) Fail(ctx context.Context, id uuid.UUID, errorCode, errorMessage string) error {
	return r.update(id, func(job *models.GenerationJob) {
		job.Status = models.JobStatusFailed
		job.ErrorCode = &errorCode
		job.ErrorMessage = &errorMessage
	})
}

func (r *GenerationJobRepository) update(id uuid.UUID, apply func(*models.GenerationJob)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return ErrNotFound
	}
	apply(job)
	job.UpdatedAt = time.Now()
	return nil
}

func cloneJob(job *models.GenerationJob) *models.GenerationJob {
	out := *job
	out.Steps = job.Steps.Clone()
	return &out
}

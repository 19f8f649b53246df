package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Job struct {
	ID             uuid.UUID `validate:"-"`
	Title          string    `validate:"required,min=5,max=50"`
	Description    string    `validate:"required"`
	RequiredSkills string    `validate:"required,min=5,max=50"`
	Experience     string    `validate:"required,min=5,max=50"`
	Company        *Company  `validate:"required"`

	// Inverse side of the Applicant<->Job many-to-many. Mutations go
	// through the Applicant so the two views never diverge.
	applicants []*Applicant
}

// Applicants returns the applicants that applied to this job.
func (j *Job) Applicants() []*Applicant {
	return j.applicants
}

// AddApplicant links an applicant to this job via the owning side.
func (j *Job) AddApplicant(applicant *Applicant) {
	if applicant != nil {
		applicant.Apply(j)
	}
}

// RemoveApplicant removes the link via the owning side.
func (j *Job) RemoveApplicant(applicant *Applicant) {
	if applicant != nil {
		applicant.Withdraw(j)
	}
}

// JobFilter restricts a job listing. Nil fields impose no constraint; an
// empty string is still applied as a substring match.
type JobFilter struct {
	Title           *string
	CompanyName     *string
	CompanyLocation *string
}

type JobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Job, error)
	Fetch(ctx context.Context) ([]Job, error)
	FetchFiltered(ctx context.Context, filter JobFilter) ([]Job, error)
	Save(ctx context.Context, job *Job) error
	Delete(ctx context.Context, job *Job) error
}

type JobUsecase interface {
	Create(ctx context.Context, job *Job, companyID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Job, error)
	List(ctx context.Context, filter JobFilter) ([]Job, error)
	Update(ctx context.Context, id uuid.UUID, fields *Job) (*Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

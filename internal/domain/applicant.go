package domain

import (
	"context"

	"github.com/google/uuid"
)

type Applicant struct {
	ID                 uuid.UUID `validate:"-"`
	Name               string    `validate:"required,min=5,max=50"`
	ContactInformation string    `validate:"required,min=5,max=50"`
	JobPreferences     string    `validate:"required,min=5,max=50"`

	// Owning side of the Applicant<->Job many-to-many. Mutated only via
	// Apply/Withdraw so both sides of the link stay in sync.
	jobsApplied []*Job
}

// JobsApplied returns the jobs this applicant has applied to.
func (a *Applicant) JobsApplied() []*Job {
	return a.jobsApplied
}

// Apply links the applicant to a job. Both collection views are updated in
// the same call; applying twice to the same job is a no-op.
func (a *Applicant) Apply(job *Job) {
	if job == nil || a.hasApplied(job) {
		return
	}
	a.jobsApplied = append(a.jobsApplied, job)
	job.applicants = append(job.applicants, a)
}

// Withdraw removes the link to a job from both sides.
func (a *Applicant) Withdraw(job *Job) {
	if job == nil || !a.hasApplied(job) {
		return
	}
	a.jobsApplied = removeJob(a.jobsApplied, job)
	job.applicants = removeApplicant(job.applicants, a)
}

func (a *Applicant) hasApplied(job *Job) bool {
	for _, j := range a.jobsApplied {
		if j == job {
			return true
		}
	}
	return false
}

func removeJob(jobs []*Job, job *Job) []*Job {
	out := jobs[:0]
	for _, j := range jobs {
		if j != job {
			out = append(out, j)
		}
	}
	return out
}

func removeApplicant(applicants []*Applicant, applicant *Applicant) []*Applicant {
	out := applicants[:0]
	for _, a := range applicants {
		if a != applicant {
			out = append(out, a)
		}
	}
	return out
}

type ApplicantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Applicant, error)
	Fetch(ctx context.Context) ([]Applicant, error)
	Save(ctx context.Context, applicant *Applicant) error
	Delete(ctx context.Context, applicant *Applicant) error
}

type ApplicantUsecase interface {
	Create(ctx context.Context, applicant *Applicant, jobApplied uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Applicant, error)
	List(ctx context.Context, callerEmail string) ([]Applicant, error)
	Update(ctx context.Context, id uuid.UUID, fields *Applicant) (*Applicant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

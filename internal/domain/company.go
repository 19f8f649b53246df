package domain

import (
	"context"

	"github.com/google/uuid"
)

// Company owns zero or more job posts. No length constraints apply here,
// only the persisted columns themselves.
type Company struct {
	ID                 uuid.UUID `validate:"-"`
	Name               string
	Description        string
	Location           string
	ContactInformation string

	// One-to-many to Job. Mutated only via AddJobPost/RemoveJobPost so
	// the job's Company pointer and this collection stay in sync.
	jobPosts []*Job
}

// JobPosts returns the jobs this company has posted.
func (c *Company) JobPosts() []*Job {
	return c.jobPosts
}

// AddJobPost attaches a job to this company and points the job back at
// it. Adding the same job twice is a no-op.
func (c *Company) AddJobPost(job *Job) {
	if job == nil || c.hasJobPost(job) {
		return
	}
	c.jobPosts = append(c.jobPosts, job)
	job.Company = c
}

// RemoveJobPost detaches a job from this company and clears its
// back-reference.
func (c *Company) RemoveJobPost(job *Job) {
	if job == nil || !c.hasJobPost(job) {
		return
	}
	c.jobPosts = removeJob(c.jobPosts, job)
	if job.Company == c {
		job.Company = nil
	}
}

func (c *Company) hasJobPost(job *Job) bool {
	for _, j := range c.jobPosts {
		if j == job {
			return true
		}
	}
	return false
}

type CompanyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	Fetch(ctx context.Context) ([]Company, error)
	Save(ctx context.Context, company *Company) error
	Delete(ctx context.Context, company *Company) error
}

type CompanyUsecase interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	List(ctx context.Context, callerEmail string) ([]Company, error)
	Update(ctx context.Context, id uuid.UUID, fields *Company) (*Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestApplyLinksBothSides(t *testing.T) {
	applicant := &domain.Applicant{Name: "Jane Applicant"}
	job := &domain.Job{Title: "PHP developer"}

	applicant.Apply(job)

	assert.Contains(t, applicant.JobsApplied(), job)
	assert.Contains(t, job.Applicants(), applicant)
}

func TestAddApplicantDelegatesToOwningSide(t *testing.T) {
	applicant := &domain.Applicant{Name: "Jane Applicant"}
	job := &domain.Job{Title: "Go developer"}

	job.AddApplicant(applicant)

	assert.Contains(t, applicant.JobsApplied(), job)
	assert.Contains(t, job.Applicants(), applicant)
}

func TestApplyTwiceKeepsSetSemantics(t *testing.T) {
	applicant := &domain.Applicant{Name: "Jane Applicant"}
	job := &domain.Job{Title: "Go developer"}

	applicant.Apply(job)
	applicant.Apply(job)
	job.AddApplicant(applicant)

	assert.Len(t, applicant.JobsApplied(), 1)
	assert.Len(t, job.Applicants(), 1)
}

func TestWithdrawClearsBothSides(t *testing.T) {
	applicant := &domain.Applicant{Name: "Jane Applicant"}
	job := &domain.Job{Title: "Go developer"}
	other := &domain.Job{Title: "PHP developer"}

	applicant.Apply(job)
	applicant.Apply(other)
	applicant.Withdraw(job)

	assert.NotContains(t, applicant.JobsApplied(), job)
	assert.Empty(t, job.Applicants())
	assert.Contains(t, applicant.JobsApplied(), other)
	assert.Contains(t, other.Applicants(), applicant)
}

func TestRemoveApplicantDelegatesToOwningSide(t *testing.T) {
	applicant := &domain.Applicant{Name: "Jane Applicant"}
	job := &domain.Job{Title: "Go developer"}

	applicant.Apply(job)
	job.RemoveApplicant(applicant)

	assert.Empty(t, applicant.JobsApplied())
	assert.Empty(t, job.Applicants())
}

func TestAddJobPostSetsBackReference(t *testing.T) {
	company := &domain.Company{Name: "Acme"}
	job := &domain.Job{Title: "Go developer"}

	company.AddJobPost(job)
	company.AddJobPost(job)

	assert.Len(t, company.JobPosts(), 1)
	assert.Same(t, company, job.Company)
}

func TestRemoveJobPostClearsBackReference(t *testing.T) {
	company := &domain.Company{Name: "Acme"}
	job := &domain.Job{Title: "Go developer"}
	other := &domain.Job{Title: "PHP developer"}

	company.AddJobPost(job)
	company.AddJobPost(other)
	company.RemoveJobPost(job)

	assert.NotContains(t, company.JobPosts(), job)
	assert.Nil(t, job.Company)
	assert.Contains(t, company.JobPosts(), other)
	assert.Same(t, company, other.Company)
}

func TestWithdrawUnrelatedJobIsNoop(t *testing.T) {
	applicant := &domain.Applicant{Name: "Jane Applicant"}
	job := &domain.Job{Title: "Go developer"}

	applicant.Withdraw(job)

	assert.Empty(t, applicant.JobsApplied())
	assert.Empty(t, job.Applicants())
}

package validation_test

import (
	"strings"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func validJob() *domain.Job {
	return &domain.Job{
		Title:          "Go developer",
		Description:    "d",
		RequiredSkills: "Go and SQL",
		Experience:     "Three years",
		Company:        &domain.Company{Name: "Acme"},
	}
}

func TestJobTitleTooShort(t *testing.T) {
	validate := validator.New()

	job := validJob()
	job.Title = "abcd"

	violations := validation.Violations(validate.Struct(job))
	assert.Equal(t,
		[]string{"This value is too short. It should have 5 characters or more."},
		violations["title"],
	)
}

func TestJobTitleAtMinLengthIsValid(t *testing.T) {
	validate := validator.New()

	job := validJob()
	job.Title = "abcde"

	violations := validation.Violations(validate.Struct(job))
	assert.NotContains(t, violations, "title")
}

func TestJobTitleTooLong(t *testing.T) {
	validate := validator.New()

	job := validJob()
	job.Title = strings.Repeat("a", 51)

	violations := validation.Violations(validate.Struct(job))
	assert.Equal(t,
		[]string{"This value is too long. It should have 50 characters or less."},
		violations["title"],
	)
}

func TestJobDescriptionHasNoLengthRule(t *testing.T) {
	validate := validator.New()

	job := validJob()
	job.Description = strings.Repeat("long ", 200)

	violations := validation.Violations(validate.Struct(job))
	assert.Empty(t, violations)
}

func TestJobMissingCompanyReportedAsBlank(t *testing.T) {
	validate := validator.New()

	job := validJob()
	job.Company = nil

	violations := validation.Violations(validate.Struct(job))
	assert.Equal(t, []string{"This value should not be blank."}, violations["company"])
}

func TestApplicantBlankFieldsAllReported(t *testing.T) {
	validate := validator.New()

	violations := validation.Violations(validate.Struct(&domain.Applicant{}))

	for _, field := range []string{"name", "contactInformation", "jobPreferences"} {
		assert.Equal(t, []string{"This value should not be blank."}, violations[field], field)
	}
}

func TestValidApplicantHasEmptyMap(t *testing.T) {
	validate := validator.New()

	applicant := &domain.Applicant{
		Name:               "Jane Applicant",
		ContactInformation: "jane@example.com",
		JobPreferences:     "Remote backend work",
	}

	violations := validation.Violations(validate.Struct(applicant))
	assert.Empty(t, violations)
}

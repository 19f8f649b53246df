package v1

import (
	"go-jobboard-backend/internal/domain"
)

// Public views are allow-lists: each struct names exactly the fields the
// API exposes for its entity. The application collections (jobsApplied on
// Applicant, applicants on Job) never appear, which keeps who-applied-where
// private. A company does expose its jobPosts, but each nested job drops
// the company back-reference so the graph never cycles on output.

type ApplicantView struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	ContactInformation string `json:"contactInformation"`
	JobPreferences     string `json:"jobPreferences"`
}

// CompanyFields carries the scalar company attributes, shared by the
// company endpoints and the company nested inside a job.
type CompanyFields struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Location           string `json:"location"`
	ContactInformation string `json:"contactInformation"`
}

// CompanyView is the company on its own endpoints: the scalar fields
// plus its job posts. Each nested job drops the company back-reference
// and its applicants.
type CompanyView struct {
	CompanyFields
	JobPosts []JobPostView `json:"jobPosts"`
}

// JobPostView is a job as seen from inside its company.
type JobPostView struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	RequiredSkills string `json:"requiredSkills"`
	Experience     string `json:"experience"`
}

type JobView struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	RequiredSkills string        `json:"requiredSkills"`
	Experience     string        `json:"experience"`
	Company        CompanyFields `json:"company"`
}

func NewApplicantView(applicant *domain.Applicant) ApplicantView {
	return ApplicantView{
		ID:                 applicant.ID.String(),
		Name:               applicant.Name,
		ContactInformation: applicant.ContactInformation,
		JobPreferences:     applicant.JobPreferences,
	}
}

func newCompanyFields(company *domain.Company) CompanyFields {
	return CompanyFields{
		ID:                 company.ID.String(),
		Name:               company.Name,
		Description:        company.Description,
		Location:           company.Location,
		ContactInformation: company.ContactInformation,
	}
}

func NewCompanyView(company *domain.Company) CompanyView {
	posts := company.JobPosts()
	views := make([]JobPostView, 0, len(posts))
	for _, job := range posts {
		views = append(views, JobPostView{
			ID:             job.ID.String(),
			Title:          job.Title,
			Description:    job.Description,
			RequiredSkills: job.RequiredSkills,
			Experience:     job.Experience,
		})
	}
	return CompanyView{CompanyFields: newCompanyFields(company), JobPosts: views}
}

func NewJobView(job *domain.Job) JobView {
	view := JobView{
		ID:             job.ID.String(),
		Title:          job.Title,
		Description:    job.Description,
		RequiredSkills: job.RequiredSkills,
		Experience:     job.Experience,
	}
	if job.Company != nil {
		view.Company = newCompanyFields(job.Company)
	}
	return view
}

func NewApplicantViews(applicants []domain.Applicant) []ApplicantView {
	views := make([]ApplicantView, 0, len(applicants))
	for i := range applicants {
		views = append(views, NewApplicantView(&applicants[i]))
	}
	return views
}

func NewCompanyViews(companies []domain.Company) []CompanyView {
	views := make([]CompanyView, 0, len(companies))
	for i := range companies {
		views = append(views, NewCompanyView(&companies[i]))
	}
	return views
}

func NewJobViews(jobs []domain.Job) []JobView {
	views := make([]JobView, 0, len(jobs))
	for i := range jobs {
		views = append(views, NewJobView(&jobs[i]))
	}
	return views
}

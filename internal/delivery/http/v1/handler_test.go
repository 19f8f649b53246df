package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobUC struct {
	mock.Mock
}

func (m *MockJobUC) Create(ctx context.Context, job *domain.Job, companyID uuid.UUID) error {
	return m.Called(ctx, job, companyID).Error(0)
}

func (m *MockJobUC) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobUC) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobUC) Update(ctx context.Context, id uuid.UUID, fields *domain.Job) (*domain.Job, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobUC) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCompanyUC struct {
	mock.Mock
}

func (m *MockCompanyUC) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyUC) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyUC) List(ctx context.Context, callerEmail string) ([]domain.Company, error) {
	args := m.Called(ctx, callerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyUC) Update(ctx context.Context, id uuid.UUID, fields *domain.Company) (*domain.Company, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyUC) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicantUC struct {
	mock.Mock
}

func (m *MockApplicantUC) Create(ctx context.Context, applicant *domain.Applicant, jobApplied uuid.UUID) error {
	return m.Called(ctx, applicant, jobApplied).Error(0)
}

func (m *MockApplicantUC) GetByID(ctx context.Context, id uuid.UUID) (*domain.Applicant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockApplicantUC) List(ctx context.Context, callerEmail string) ([]domain.Applicant, error) {
	args := m.Called(ctx, callerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Applicant), args.Error(1)
}

func (m *MockApplicantUC) Update(ctx context.Context, id uuid.UUID, fields *domain.Applicant) (*domain.Applicant, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockApplicantUC) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockAuthUC struct {
	mock.Mock
}

func (m *MockAuthUC) Register(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthUC) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

type testDeps struct {
	applicantUC *MockApplicantUC
	companyUC   *MockCompanyUC
	jobUC       *MockJobUC
	authUC      *MockAuthUC
	tokens      *auth.TokenManager
	router      *gin.Engine
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := &testDeps{
		applicantUC: new(MockApplicantUC),
		companyUC:   new(MockCompanyUC),
		jobUC:       new(MockJobUC),
		authUC:      new(MockAuthUC),
		tokens:      auth.NewTokenManager("test-secret", time.Hour),
	}
	deps.router = NewRouter(RouterDeps{
		ApplicantUC: deps.applicantUC,
		CompanyUC:   deps.companyUC,
		JobUC:       deps.jobUC,
		AuthUC:      deps.authUC,
		Tokens:      deps.tokens,
		Config:      &config.Config{},
	})
	return deps
}

func doRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestDeleteUnknownJobEchoesID(t *testing.T) {
	deps := newTestDeps(t)
	id := uuid.New()
	deps.jobUC.On("Delete", mock.Anything, id).Return(domain.ErrNotFound)

	w := doRequest(deps.router, http.MethodDelete, "/api/v1/jobs/"+id.String(), "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Job not found", env["message"])
	assert.Equal(t, float64(404), env["statusCode"])
	assert.Equal(t, map[string]any{"id": id.String()}, env["data"])
}

func TestMalformedJobIDTreatedAsNotFound(t *testing.T) {
	deps := newTestDeps(t)

	w := doRequest(deps.router, http.MethodDelete, "/api/v1/jobs/nonexistent-id", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, map[string]any{"id": "nonexistent-id"}, env["data"])
	deps.jobUC.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCreateCompanyReturnsStringID(t *testing.T) {
	deps := newTestDeps(t)
	assigned := uuid.New()
	deps.companyUC.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Company).ID = assigned
	})

	body := `{"name":"Acme","description":"d","location":"NY","contactInformation":"c"}`
	w := doRequest(deps.router, http.MethodPost, "/api/v1/companies", body, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Company created successfully", env["message"])
	assert.Equal(t, float64(201), env["statusCode"])
	assert.Equal(t, map[string]any{"id": assigned.String()}, env["data"])
}

func TestGetCompanySerializesJobPosts(t *testing.T) {
	deps := newTestDeps(t)
	company := &domain.Company{
		ID:                 uuid.New(),
		Name:               "Acme",
		Description:        "d",
		Location:           "NY",
		ContactInformation: "c",
	}
	job := &domain.Job{ID: uuid.New(), Title: "Go developer", RequiredSkills: "Go", Experience: "Junior"}
	company.AddJobPost(job)
	deps.companyUC.On("GetByID", mock.Anything, company.ID).Return(company, nil)

	w := doRequest(deps.router, http.MethodGet, "/api/v1/companies/"+company.ID.String(), "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	data, ok := env["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Acme", data["name"])
	assert.NotContains(t, data, "applicants")

	posts, ok := data["jobPosts"].([]any)
	require.True(t, ok)
	require.Len(t, posts, 1)
	nested, ok := posts[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Go developer", nested["title"])
	assert.NotContains(t, nested, "company")
}

func TestListApplicantsRequiresToken(t *testing.T) {
	deps := newTestDeps(t)

	w := doRequest(deps.router, http.MethodGet, "/api/v1/applicants", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	deps.applicantUC.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListApplicantsWithTokenNamesCaller(t *testing.T) {
	deps := newTestDeps(t)
	token, err := deps.tokens.Issue("user-1", "user@example.com")
	require.NoError(t, err)

	deps.applicantUC.On("List", mock.Anything, "user@example.com").
		Return([]domain.Applicant{{ID: uuid.New(), Name: "Jane Applicant"}}, nil)

	w := doRequest(deps.router, http.MethodGet, "/api/v1/applicants", "",
		map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "List of applicants requested by user@example.com", env["message"])
}

func TestCreateApplicantBlankJobsApplied(t *testing.T) {
	deps := newTestDeps(t)

	body := `{"name":"Jane Applicant","contactInformation":"jane@example.com","jobPreferences":"Remote","jobsApplied":""}`
	w := doRequest(deps.router, http.MethodPost, "/api/v1/applicants", body, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid inputs", env["message"])
	data, ok := env["data"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "jobsApplied")
	deps.applicantUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterShortPasswordEnvelope(t *testing.T) {
	deps := newTestDeps(t)
	deps.authUC.On("Register", mock.Anything, "user@example.com", "short").
		Return(nil, apperror.BadRequest("Password length needs to be at least 10 characters or longer").
			WithData(map[string]string{"password": "short"}))

	w := doRequest(deps.router, http.MethodPost, "/api/auth/register", `{"email":"user@example.com","password":"short"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Password length needs to be at least 10 characters or longer", env["message"])
	assert.Equal(t, map[string]any{"password": "short"}, env["data"])
}

func TestLoginCheckReturnsToken(t *testing.T) {
	deps := newTestDeps(t)
	deps.authUC.On("Login", mock.Anything, "user@example.com", "longenoughpassword").
		Return("signed-token", nil)

	w := doRequest(deps.router, http.MethodPost, "/api/login_check", `{"username":"user@example.com","password":"longenoughpassword"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, map[string]any{"token": "signed-token"}, env["data"])
}

func TestJobListFilterPresenceSemantics(t *testing.T) {
	deps := newTestDeps(t)

	deps.jobUC.On("List", mock.Anything, mock.MatchedBy(func(f domain.JobFilter) bool {
		return f.Title != nil && *f.Title == "PHP" && f.CompanyName == nil && f.CompanyLocation == nil
	})).Return([]domain.Job{}, nil).Once()

	w := doRequest(deps.router, http.MethodGet, "/api/v1/jobs?title=PHP", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// An empty value is still a filter, distinct from an absent parameter.
	deps.jobUC.On("List", mock.Anything, mock.MatchedBy(func(f domain.JobFilter) bool {
		return f.Title != nil && *f.Title == ""
	})).Return([]domain.Job{}, nil).Once()

	w = doRequest(deps.router, http.MethodGet, "/api/v1/jobs?title=", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	deps.jobUC.AssertExpectations(t)
}

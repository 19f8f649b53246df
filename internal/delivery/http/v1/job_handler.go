package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := public.Group("/jobs")
	{
		jobs.POST("", handler.Create)
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetByID)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	RequiredSkills string `json:"requiredSkills"`
	Experience     string `json:"experience"`
	Company        string `json:"company"`
}

type UpdateJobRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	RequiredSkills string `json:"requiredSkills"`
	Experience     string `json:"experience"`
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// An unparseable company reference gets the same treatment as an
	// unknown one: the reference stays unset and validation reports it.
	companyID, _ := uuid.Parse(req.Company)

	job := &domain.Job{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Experience:     req.Experience,
	}

	if err := h.jobUC.Create(c, job, companyID); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, "Job created successfully", gin.H{"id": job.ID.String()})
}

// List returns all jobs, optionally filtered by title, company name and
// company location. A present-but-empty query value still filters.
func (h *JobHandler) List(c *gin.Context) {
	query := c.Request.URL.Query()

	var filter domain.JobFilter
	if values, ok := query["title"]; ok && len(values) > 0 {
		filter.Title = &values[0]
	}
	if values, ok := query["name"]; ok && len(values) > 0 {
		filter.CompanyName = &values[0]
	}
	if values, ok := query["location"]; ok && len(values) > 0 {
		filter.CompanyLocation = &values[0]
	}

	jobs, err := h.jobUC.List(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, "List of jobs requested", NewJobViews(jobs))
}

func (h *JobHandler) GetByID(c *gin.Context) {
	rawID := c.Param("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NotFound("Job not found", rawID))
		return
	}

	job, err := h.jobUC.GetByID(c, id)
	if err != nil {
		c.Error(asNotFound(err, "Job not found", rawID))
		return
	}

	response.JSON(c, http.StatusOK, "Job by ID", NewJobView(job))
}

func (h *JobHandler) Update(c *gin.Context) {
	rawID := c.Param("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NotFound("Job not found", rawID))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.Update(c, id, &domain.Job{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Experience:     req.Experience,
	})
	if err != nil {
		c.Error(asNotFound(err, "Job not found", rawID))
		return
	}

	response.JSON(c, http.StatusOK, "Job updated successfully", NewJobView(job))
}

func (h *JobHandler) Delete(c *gin.Context) {
	rawID := c.Param("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NotFound("Job not found", rawID))
		return
	}

	if err := h.jobUC.Delete(c, id); err != nil {
		c.Error(asNotFound(err, "Job not found", rawID))
		return
	}

	response.JSON(c, http.StatusOK, "Job removed successfully", nil)
}

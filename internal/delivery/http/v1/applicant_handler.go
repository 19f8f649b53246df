package v1

import (
	"fmt"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApplicantHandler struct {
	applicantUC domain.ApplicantUsecase
}

func NewApplicantHandler(public *gin.RouterGroup, protected *gin.RouterGroup, applicantUC domain.ApplicantUsecase) {
	handler := &ApplicantHandler{applicantUC: applicantUC}

	applicants := public.Group("/applicants")
	{
		applicants.POST("", handler.Create)
		applicants.GET("/:id", handler.GetByID)
		applicants.PUT("/:id", handler.Update)
		applicants.DELETE("/:id", handler.Delete)
	}

	// Listing requires an authenticated caller.
	protected.GET("/applicants", handler.List)
}

type CreateApplicantRequest struct {
	Name               string `json:"name"`
	ContactInformation string `json:"contactInformation"`
	JobPreferences     string `json:"jobPreferences"`
	JobsApplied        string `json:"jobsApplied"`
}

type UpdateApplicantRequest struct {
	Name               string `json:"name"`
	ContactInformation string `json:"contactInformation"`
	JobPreferences     string `json:"jobPreferences"`
}

// Create registers an applicant and applies it to the referenced job.
func (h *ApplicantHandler) Create(c *gin.Context) {
	var req CreateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if req.JobsApplied == "" {
		c.Error(apperror.BadRequest("Invalid inputs").
			WithData(map[string][]string{"jobsApplied": {"This value should not be blank."}}))
		return
	}
	jobID, err := uuid.Parse(req.JobsApplied)
	if err != nil {
		c.Error(apperror.BadRequest("Job applied to does not exist").
			WithData(map[string]string{"jobsApplied": req.JobsApplied}))
		return
	}

	applicant := &domain.Applicant{
		Name:               req.Name,
		ContactInformation: req.ContactInformation,
		JobPreferences:     req.JobPreferences,
	}

	if err := h.applicantUC.Create(c, applicant, jobID); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, "Applicant created successfully", gin.H{"id": applicant.ID.String()})
}

func (h *ApplicantHandler) List(c *gin.Context) {
	email := callerEmail(c)

	applicants, err := h.applicantUC.List(c, email)
	if err != nil {
		c.Error(err)
		return
	}

	message := fmt.Sprintf("List of applicants requested by %s", email)
	response.JSON(c, http.StatusOK, message, NewApplicantViews(applicants))
}

func (h *ApplicantHandler) GetByID(c *gin.Context) {
	rawID := c.Param("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NotFound("Applicant not found", rawID))
		return
	}

	applicant, err := h.applicantUC.GetByID(c, id)
	if err != nil {
		c.Error(asNotFound(err, "Applicant not found", rawID))
		return
	}

	response.JSON(c, http.StatusOK, "Applicant by ID", NewApplicantView(applicant))
}

func (h *ApplicantHandler) Update(c *gin.Context) {
	rawID := c.Param("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NotFound("Applicant not found", rawID))
		return
	}

	var req UpdateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	applicant, err := h.applicantUC.Update(c, id, &domain.Applicant{
		Name:               req.Name,
		ContactInformation: req.ContactInformation,
		JobPreferences:     req.JobPreferences,
	})
	if err != nil {
		c.Error(asNotFound(err, "Applicant not found", rawID))
		return
	}

	response.JSON(c, http.StatusOK, "Applicant updated successfully", NewApplicantView(applicant))
}

func (h *ApplicantHandler) Delete(c *gin.Context) {
	rawID := c.Param("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NotFound("Applicant not found", rawID))
		return
	}

	if err := h.applicantUC.Delete(c, id); err != nil {
		c.Error(asNotFound(err, "Applicant not found", rawID))
		return
	}

	response.JSON(c, http.StatusOK, "Applicant removed successfully", nil)
}

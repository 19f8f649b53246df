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

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := public.Group("/companies")
	{
		companies.POST("", handler.Create)
		companies.GET("/:id", handler.GetByID)
		companies.PUT("/:id", handler.Update)
		companies.DELETE("/:id", handler.Delete)
	}

	// Listing requires an authenticated caller.
	protected.GET("/companies", handler.List)
}

type CompanyRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Location           string `json:"location"`
	ContactInformation string `json:"contactInformation"`
}

func (r *CompanyRequest) toDomain() *domain.Company {
	return &domain.Company{
		Name:               r.Name,
		Description:        r.Description,
		Location:           r.Location,
		ContactInformation: r.ContactInformation,
	}
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := req.toDomain()
	if err := h.companyUC.Create(c, company); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, "Company created successfully", gin.H{"id": company.ID.String()})
}

func (h *CompanyHandler) List(c *gin.Context) {
	email := callerEmail(c)

	companies, err := h.companyUC.List(c, email)
	if err != nil {
		c.Error(err)
		return
	}

	message := fmt.Sprintf("List of companies requested by %s", email)
	response.JSON(c, http.StatusOK, message, NewCompanyViews(companies))
}

func (h *CompanyHandler) GetByID(c *gin.Context) {
	rawID := c.Param("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NotFound("Company not found", rawID))
		return
	}

	company, err := h.companyUC.GetByID(c, id)
	if err != nil {
		c.Error(asNotFound(err, "Company not found", rawID))
		return
	}

	response.JSON(c, http.StatusOK, "Company by ID", NewCompanyView(company))
}

func (h *CompanyHandler) Update(c *gin.Context) {
	rawID := c.Param("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NotFound("Company not found", rawID))
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company, err := h.companyUC.Update(c, id, req.toDomain())
	if err != nil {
		c.Error(asNotFound(err, "Company not found", rawID))
		return
	}

	response.JSON(c, http.StatusOK, "Company updated successfully", NewCompanyView(company))
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	rawID := c.Param("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NotFound("Company not found", rawID))
		return
	}

	if err := h.companyUC.Delete(c, id); err != nil {
		c.Error(asNotFound(err, "Company not found", rawID))
		return
	}

	response.JSON(c, http.StatusOK, "Company removed successfully", nil)
}

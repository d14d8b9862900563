package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/kevin101681/cascadeconnect-sub011/internal/api"
	"github.com/kevin101681/cascadeconnect-sub011/internal/db"
	"github.com/kevin101681/cascadeconnect-sub011/internal/repository"
	"github.com/kevin101681/cascadeconnect-sub011/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// HomeownerHandler handles homeowner-related HTTP requests
type HomeownerHandler struct {
	homeownerService *service.HomeownerService
	validator        *validator.Validate
}

// NewHomeownerHandler creates a new homeowner handler
func NewHomeownerHandler(homeownerService *service.HomeownerService) *HomeownerHandler {
	return &HomeownerHandler{
		homeownerService: homeownerService,
		validator:        validator.New(),
	}
}

// Homeowner response model
// @Description Homeowner record
type HomeownerResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Alice Baker"`
	Email     *string   `json:"email,omitempty" example:"alice.baker@example.com"`
	Phone     *string   `json:"phone,omitempty" example:"+15551234567"`
	Address   *string   `json:"address,omitempty" example:"123 Main Street"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
}

// CreateHomeownerRequest represents the request to create a homeowner
// @Description Create homeowner request
type CreateHomeownerRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=255" example:"Alice Baker"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email,max=255" example:"alice.baker@example.com"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=50" example:"555-123-4567"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500" example:"123 Main Street"`
}

// UpdateHomeownerRequest represents the request to update a homeowner
// @Description Update homeowner request
type UpdateHomeownerRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=255" example:"Alice Baker"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email,max=255" example:"alice.baker@example.com"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=50" example:"555-123-4567"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500" example:"123 Main Street"`
}

// ListHomeownersQuery represents query parameters for listing homeowners
type ListHomeownersQuery struct {
	Page  int `form:"page" validate:"omitempty,min=1" example:"1"`
	Limit int `form:"limit" validate:"omitempty,min=1,max=100" example:"20"`
}

func homeownerToResponse(h *repository.Homeowner) HomeownerResponse {
	return HomeownerResponse{
		ID:        h.ID.String(),
		Name:      h.Name,
		Email:     h.Email,
		Phone:     h.Phone,
		Address:   h.Address,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// CreateHomeowner creates a new homeowner
// @Summary Create a new homeowner
// @Description Register a homeowner with contact details and service address
// @Tags homeowners
// @Accept json
// @Produce json
// @Param homeowner body CreateHomeownerRequest true "Homeowner information"
// @Success 201 {object} api.APIResponse{data=HomeownerResponse} "Homeowner created successfully"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid request"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /homeowners [post]
func (h *HomeownerHandler) CreateHomeowner(c *gin.Context) {
	var req CreateHomeownerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	homeowner, err := h.homeownerService.CreateHomeowner(c.Request.Context(), repository.CreateHomeownerRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		api.SendInternalError(c, "Failed to create homeowner")
		return
	}

	api.SendSuccess(c, http.StatusCreated, homeownerToResponse(homeowner), nil)
}

// GetHomeowner retrieves a homeowner by ID
// @Summary Get a homeowner by ID
// @Tags homeowners
// @Produce json
// @Param id path string true "Homeowner ID" format(uuid)
// @Success 200 {object} api.APIResponse{data=HomeownerResponse} "Homeowner retrieved successfully"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid homeowner ID"
// @Failure 404 {object} api.APIResponse{error=api.APIError} "Homeowner not found"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /homeowners/{id} [get]
func (h *HomeownerHandler) GetHomeowner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.SendValidationError(c, "Invalid homeowner ID", "ID must be a valid UUID")
		return
	}

	homeowner, err := h.homeownerService.GetHomeowner(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.SendNotFound(c, "Homeowner")
			return
		}
		api.SendInternalError(c, "Failed to retrieve homeowner")
		return
	}

	api.SendSuccess(c, http.StatusOK, homeownerToResponse(homeowner), nil)
}

// ListHomeowners retrieves a paginated list of homeowners
// @Summary List homeowners
// @Tags homeowners
// @Produce json
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Items per page" default(20) minimum(1) maximum(100)
// @Success 200 {object} api.APIResponse{data=[]HomeownerResponse,meta=api.Meta} "Homeowners retrieved successfully"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid query parameters"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /homeowners [get]
func (h *HomeownerHandler) ListHomeowners(c *gin.Context) {
	var query ListHomeownersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		api.SendValidationError(c, "Invalid query parameters", err.Error())
		return
	}

	if err := h.validator.Struct(query); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	homeowners, total, err := h.homeownerService.ListHomeowners(c.Request.Context(), repository.ListHomeownersParams{
		Limit:  int32(query.Limit),
		Offset: int32((query.Page - 1) * query.Limit),
	})
	if err != nil {
		api.SendInternalError(c, "Failed to retrieve homeowners")
		return
	}

	responses := make([]HomeownerResponse, len(homeowners))
	for i, homeowner := range homeowners {
		responses[i] = homeownerToResponse(&homeowner)
	}

	totalPages := int(total) / query.Limit
	if int(total)%query.Limit > 0 {
		totalPages++
	}

	meta := &api.Meta{
		Pagination: &api.PaginationMeta{
			Page:  query.Page,
			Limit: query.Limit,
			Total: total,
			Pages: totalPages,
		},
	}

	api.SendSuccess(c, http.StatusOK, responses, meta)
}

// UpdateHomeowner updates an existing homeowner
// @Summary Update a homeowner
// @Tags homeowners
// @Accept json
// @Produce json
// @Param id path string true "Homeowner ID" format(uuid)
// @Param homeowner body UpdateHomeownerRequest true "Updated homeowner information"
// @Success 200 {object} api.APIResponse{data=HomeownerResponse} "Homeowner updated successfully"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid request"
// @Failure 404 {object} api.APIResponse{error=api.APIError} "Homeowner not found"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /homeowners/{id} [put]
func (h *HomeownerHandler) UpdateHomeowner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.SendValidationError(c, "Invalid homeowner ID", "ID must be a valid UUID")
		return
	}

	var req UpdateHomeownerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	homeowner, err := h.homeownerService.UpdateHomeowner(c.Request.Context(), id, repository.UpdateHomeownerRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.SendNotFound(c, "Homeowner")
			return
		}
		api.SendInternalError(c, "Failed to update homeowner")
		return
	}

	api.SendSuccess(c, http.StatusOK, homeownerToResponse(homeowner), nil)
}

// DeleteHomeowner deletes a homeowner
// @Summary Delete a homeowner
// @Description Soft delete a homeowner by ID
// @Tags homeowners
// @Produce json
// @Param id path string true "Homeowner ID" format(uuid)
// @Success 204 "Homeowner deleted successfully"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid homeowner ID"
// @Failure 404 {object} api.APIResponse{error=api.APIError} "Homeowner not found"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /homeowners/{id} [delete]
func (h *HomeownerHandler) DeleteHomeowner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.SendValidationError(c, "Invalid homeowner ID", "ID must be a valid UUID")
		return
	}

	if err := h.homeownerService.DeleteHomeowner(c.Request.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.SendNotFound(c, "Homeowner")
			return
		}
		api.SendInternalError(c, "Failed to delete homeowner")
		return
	}

	c.Status(http.StatusNoContent)
}

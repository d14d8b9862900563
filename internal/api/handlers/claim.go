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

// ClaimHandler handles warranty claim HTTP requests
type ClaimHandler struct {
	claimService *service.ClaimService
	messageRepo  *repository.MessageRepository
	validator    *validator.Validate
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService *service.ClaimService, messageRepo *repository.MessageRepository) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
		messageRepo:  messageRepo,
		validator:    validator.New(),
	}
}

// Claim response model
// @Description Warranty claim record
type ClaimResponse struct {
	ID                string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title             string    `json:"title" example:"Leaking roof"`
	Description       *string   `json:"description,omitempty" example:"Water stains on the upstairs ceiling"`
	Status            string    `json:"status" example:"linked" enums:"new,linked,needs_review,resolved"`
	HomeownerID       *string   `json:"homeowner_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	TranscriptAddress *string   `json:"transcript_address,omitempty" example:"123 main street"`
	MatchSimilarity   *float64  `json:"match_similarity,omitempty" example:"0.95"`
	MatchQuality      *string   `json:"match_quality,omitempty" example:"Excellent match"`
	CreatedAt         time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt         time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
}

// IntakeClaimRequest represents the request to file a new claim
// @Description Claim intake request, with the address as captured from the call transcript
type IntakeClaimRequest struct {
	Title             string  `json:"title" validate:"required,min=1,max=255" example:"Leaking roof"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000" example:"Water stains on the upstairs ceiling"`
	TranscriptAddress string  `json:"transcript_address,omitempty" validate:"omitempty,max=500" example:"123 main street"`
}

// UpdateClaimStatusRequest represents a claim status transition
type UpdateClaimStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new linked needs_review resolved" example:"resolved"`
}

// LinkClaimRequest represents a manual reviewer decision linking a claim
type LinkClaimRequest struct {
	HomeownerID string  `json:"homeowner_id" validate:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Similarity  float64 `json:"similarity" validate:"omitempty,min=0,max=1" example:"0.82"`
}

// ListClaimsQuery represents query parameters for listing claims
type ListClaimsQuery struct {
	Page   int    `form:"page" validate:"omitempty,min=1" example:"1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100" example:"20"`
	Status string `form:"status" validate:"omitempty,oneof=new linked needs_review resolved" example:"needs_review"`
}

// ClaimMessageResponse represents a message on a claim thread
type ClaimMessageResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Sender    string    `json:"sender" example:"agent"`
	Body      string    `json:"body" example:"Technician scheduled for Tuesday"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
}

// CreateClaimMessageRequest represents a new message on a claim thread
type CreateClaimMessageRequest struct {
	Sender string `json:"sender" validate:"required,oneof=agent homeowner system" example:"agent"`
	Body   string `json:"body" validate:"required,min=1,max=5000" example:"Technician scheduled for Tuesday"`
}

func claimToResponse(claim *repository.Claim) ClaimResponse {
	resp := ClaimResponse{
		ID:                claim.ID.String(),
		Title:             claim.Title,
		Description:       claim.Description,
		Status:            claim.Status,
		TranscriptAddress: claim.TranscriptAddress,
		MatchSimilarity:   claim.MatchSimilarity,
		CreatedAt:         claim.CreatedAt,
		UpdatedAt:         claim.UpdatedAt,
	}
	if claim.HomeownerID != nil {
		id := claim.HomeownerID.String()
		resp.HomeownerID = &id
	}
	if claim.MatchSimilarity != nil {
		quality := matchQualityLabel(*claim.MatchSimilarity)
		resp.MatchQuality = &quality
	}
	return resp
}

func messageToResponse(msg *repository.ClaimMessage) ClaimMessageResponse {
	return ClaimMessageResponse{
		ID:        msg.ID.String(),
		Sender:    msg.Sender,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt,
	}
}

// IntakeClaim files a new warranty claim
// @Summary File a new claim
// @Description File a claim from the intake workflow. When a transcript address is provided it is resolved against the homeowner roster; a confident match links the claim automatically, otherwise it is flagged for manual review.
// @Tags claims
// @Accept json
// @Produce json
// @Param claim body IntakeClaimRequest true "Claim information"
// @Success 201 {object} api.APIResponse{data=ClaimResponse} "Claim filed successfully"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid request"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /claims [post]
func (h *ClaimHandler) IntakeClaim(c *gin.Context) {
	var req IntakeClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	result, err := h.claimService.IntakeClaim(c.Request.Context(), service.IntakeClaimRequest{
		Title:             req.Title,
		Description:       req.Description,
		TranscriptAddress: req.TranscriptAddress,
	})
	if err != nil {
		if errors.Is(err, service.ErrMatchLookup) {
			api.SendError(c, http.StatusServiceUnavailable, api.ErrCodeInternal, "Homeowner matching is temporarily unavailable", "")
			return
		}
		api.SendInternalError(c, "Failed to file claim")
		return
	}

	api.SendSuccess(c, http.StatusCreated, claimToResponse(result.Claim), nil)
}

// GetClaim retrieves a claim by ID
// @Summary Get a claim by ID
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID" format(uuid)
// @Success 200 {object} api.APIResponse{data=ClaimResponse} "Claim retrieved successfully"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid claim ID"
// @Failure 404 {object} api.APIResponse{error=api.APIError} "Claim not found"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.SendValidationError(c, "Invalid claim ID", "ID must be a valid UUID")
		return
	}

	claim, err := h.claimService.GetClaim(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.SendNotFound(c, "Claim")
			return
		}
		api.SendInternalError(c, "Failed to retrieve claim")
		return
	}

	api.SendSuccess(c, http.StatusOK, claimToResponse(claim), nil)
}

// ListClaims retrieves a paginated list of claims
// @Summary List claims
// @Tags claims
// @Produce json
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Items per page" default(20) minimum(1) maximum(100)
// @Param status query string false "Filter by status" Enums(new, linked, needs_review, resolved)
// @Success 200 {object} api.APIResponse{data=[]ClaimResponse} "Claims retrieved successfully"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid query parameters"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /claims [get]
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	var query ListClaimsQuery
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

	claims, err := h.claimService.ListClaims(c.Request.Context(), repository.ListClaimsParams{
		Status: query.Status,
		Limit:  int32(query.Limit),
		Offset: int32((query.Page - 1) * query.Limit),
	})
	if err != nil {
		api.SendInternalError(c, "Failed to retrieve claims")
		return
	}

	responses := make([]ClaimResponse, len(claims))
	for i, claim := range claims {
		responses[i] = claimToResponse(&claim)
	}

	api.SendSuccess(c, http.StatusOK, responses, nil)
}

// UpdateClaimStatus transitions a claim to a new status
// @Summary Update claim status
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Claim ID" format(uuid)
// @Param status body UpdateClaimStatusRequest true "New status"
// @Success 200 {object} api.APIResponse{data=ClaimResponse} "Claim status updated"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid request"
// @Failure 404 {object} api.APIResponse{error=api.APIError} "Claim not found"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /claims/{id}/status [patch]
func (h *ClaimHandler) UpdateClaimStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.SendValidationError(c, "Invalid claim ID", "ID must be a valid UUID")
		return
	}

	var req UpdateClaimStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	claim, err := h.claimService.UpdateClaimStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.SendNotFound(c, "Claim")
			return
		}
		api.SendInternalError(c, "Failed to update claim status")
		return
	}

	api.SendSuccess(c, http.StatusOK, claimToResponse(claim), nil)
}

// LinkClaim manually links a claim to a homeowner
// @Summary Link a claim to a homeowner
// @Description Record a reviewer's decision to link a claim flagged for manual review
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Claim ID" format(uuid)
// @Param link body LinkClaimRequest true "Homeowner to link"
// @Success 200 {object} api.APIResponse{data=ClaimResponse} "Claim linked"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid request"
// @Failure 404 {object} api.APIResponse{error=api.APIError} "Claim not found"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /claims/{id}/link [post]
func (h *ClaimHandler) LinkClaim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.SendValidationError(c, "Invalid claim ID", "ID must be a valid UUID")
		return
	}

	var req LinkClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	homeownerID, err := uuid.Parse(req.HomeownerID)
	if err != nil {
		api.SendValidationError(c, "Invalid homeowner ID", "ID must be a valid UUID")
		return
	}

	claim, err := h.claimService.LinkClaim(c.Request.Context(), id, homeownerID, req.Similarity)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.SendNotFound(c, "Claim")
			return
		}
		api.SendInternalError(c, "Failed to link claim")
		return
	}

	api.SendSuccess(c, http.StatusOK, claimToResponse(claim), nil)
}

// DeleteClaim permanently deletes a claim
// @Summary Delete a claim
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID" format(uuid)
// @Success 204 "Claim deleted successfully"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid claim ID"
// @Failure 404 {object} api.APIResponse{error=api.APIError} "Claim not found"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /claims/{id} [delete]
func (h *ClaimHandler) DeleteClaim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.SendValidationError(c, "Invalid claim ID", "ID must be a valid UUID")
		return
	}

	if err := h.claimService.DeleteClaim(c.Request.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.SendNotFound(c, "Claim")
			return
		}
		api.SendInternalError(c, "Failed to delete claim")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListClaimMessages retrieves the message thread for a claim
// @Summary List claim messages
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID" format(uuid)
// @Success 200 {object} api.APIResponse{data=[]ClaimMessageResponse} "Messages retrieved successfully"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid claim ID"
// @Failure 404 {object} api.APIResponse{error=api.APIError} "Claim not found"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /claims/{id}/messages [get]
func (h *ClaimHandler) ListClaimMessages(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.SendValidationError(c, "Invalid claim ID", "ID must be a valid UUID")
		return
	}

	if _, err := h.claimService.GetClaim(c.Request.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.SendNotFound(c, "Claim")
			return
		}
		api.SendInternalError(c, "Failed to retrieve claim")
		return
	}

	messages, err := h.messageRepo.ListMessages(c.Request.Context(), id)
	if err != nil {
		api.SendInternalError(c, "Failed to retrieve messages")
		return
	}

	responses := make([]ClaimMessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = messageToResponse(&msg)
	}

	api.SendSuccess(c, http.StatusOK, responses, nil)
}

// CreateClaimMessage appends a message to a claim thread
// @Summary Add a claim message
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Claim ID" format(uuid)
// @Param message body CreateClaimMessageRequest true "Message"
// @Success 201 {object} api.APIResponse{data=ClaimMessageResponse} "Message created"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid request"
// @Failure 404 {object} api.APIResponse{error=api.APIError} "Claim not found"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /claims/{id}/messages [post]
func (h *ClaimHandler) CreateClaimMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.SendValidationError(c, "Invalid claim ID", "ID must be a valid UUID")
		return
	}

	var req CreateClaimMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	if _, err := h.claimService.GetClaim(c.Request.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.SendNotFound(c, "Claim")
			return
		}
		api.SendInternalError(c, "Failed to retrieve claim")
		return
	}

	message, err := h.messageRepo.CreateMessage(c.Request.Context(), repository.CreateMessageRequest{
		ClaimID: id,
		Sender:  req.Sender,
		Body:    req.Body,
	})
	if err != nil {
		api.SendInternalError(c, "Failed to create message")
		return
	}

	api.SendSuccess(c, http.StatusCreated, messageToResponse(message), nil)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/kevin101681/cascadeconnect-sub011/internal/api"
	"github.com/kevin101681/cascadeconnect-sub011/internal/matching"
	"github.com/kevin101681/cascadeconnect-sub011/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// MatchHandler exposes address resolution for interactive use: intake agents
// checking an address before filing, and reviewers pulling ranked candidates.
type MatchHandler struct {
	matchService *service.HomeownerMatchService
	validator    *validator.Validate
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService *service.HomeownerMatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		validator:    validator.New(),
	}
}

// MatchRequest represents an address resolution request
// @Description Address resolution request
type MatchRequest struct {
	Address       string   `json:"address" validate:"required,max=500" example:"123 main street"`
	MinSimilarity *float64 `json:"min_similarity,omitempty" validate:"omitempty,min=0,max=1" example:"0.7"`
	Limit         *int     `json:"limit,omitempty" validate:"omitempty,min=1,max=50" example:"5"`
}

// MatchCandidateResponse represents one scored candidate
type MatchCandidateResponse struct {
	HomeownerID string  `json:"homeowner_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string  `json:"name" example:"Alice Baker"`
	Address     string  `json:"address" example:"123 Main Street"`
	Similarity  float64 `json:"similarity" example:"0.95"`
	Quality     string  `json:"quality" example:"Excellent match"`
}

// MatchResponse represents the outcome of a single-best resolution
type MatchResponse struct {
	Matched bool                    `json:"matched" example:"true"`
	Match   *MatchCandidateResponse `json:"match,omitempty"`
}

func matchQualityLabel(similarity float64) string {
	return matching.MatchQuality(similarity)
}

func (h *MatchHandler) options(req MatchRequest) matching.MatchOptions {
	opts := h.matchService.DefaultOptions()
	if req.MinSimilarity != nil {
		opts.MinSimilarity = *req.MinSimilarity
	}
	if req.Limit != nil {
		opts.Limit = *req.Limit
	}
	return opts
}

func candidateToResponse(result matching.MatchResult) MatchCandidateResponse {
	return MatchCandidateResponse{
		HomeownerID: result.Candidate.ID,
		Name:        result.Candidate.Name,
		Address:     result.Candidate.Address,
		Similarity:  result.Similarity,
		Quality:     matchQualityLabel(result.Similarity),
	}
}

// MatchHomeowner resolves an address to the single best homeowner
// @Summary Resolve an address to a homeowner
// @Description Resolve a free-text address against the homeowner roster and return the best match, if any reaches the similarity threshold
// @Tags matching
// @Accept json
// @Produce json
// @Param request body MatchRequest true "Address to resolve"
// @Success 200 {object} api.APIResponse{data=MatchResponse} "Resolution outcome"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid request"
// @Failure 503 {object} api.APIResponse{error=api.APIError} "Candidate lookup unavailable"
// @Router /match/homeowner [post]
func (h *MatchHandler) MatchHomeowner(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	result, err := h.matchService.MatchHomeowner(c.Request.Context(), req.Address, h.options(req))
	if err != nil {
		if errors.Is(err, service.ErrMatchLookup) {
			api.SendError(c, http.StatusServiceUnavailable, api.ErrCodeInternal, "Homeowner matching is temporarily unavailable", "")
			return
		}
		api.SendInternalError(c, "Failed to resolve address")
		return
	}

	response := MatchResponse{Matched: result != nil}
	if result != nil {
		candidate := candidateToResponse(*result)
		response.Match = &candidate
	}

	api.SendSuccess(c, http.StatusOK, response, nil)
}

// MatchCandidates returns the ranked candidates for an address
// @Summary List ranked homeowner candidates for an address
// @Description Return every homeowner at or above the similarity threshold, best first, for manual review
// @Tags matching
// @Accept json
// @Produce json
// @Param request body MatchRequest true "Address to resolve"
// @Success 200 {object} api.APIResponse{data=[]MatchCandidateResponse} "Ranked candidates"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid request"
// @Failure 503 {object} api.APIResponse{error=api.APIError} "Candidate lookup unavailable"
// @Router /match/candidates [post]
func (h *MatchHandler) MatchCandidates(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	results, err := h.matchService.MatchHomeowners(c.Request.Context(), req.Address, h.options(req))
	if err != nil {
		if errors.Is(err, service.ErrMatchLookup) {
			api.SendError(c, http.StatusServiceUnavailable, api.ErrCodeInternal, "Homeowner matching is temporarily unavailable", "")
			return
		}
		api.SendInternalError(c, "Failed to resolve address")
		return
	}

	responses := make([]MatchCandidateResponse, len(results))
	for i, result := range results {
		responses[i] = candidateToResponse(result)
	}

	api.SendSuccess(c, http.StatusOK, responses, nil)
}

package handlers

import (
	"net/http"

	"github.com/kevin101681/cascadeconnect-sub011/internal/api"
	"github.com/kevin101681/cascadeconnect-sub011/internal/repository"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves operational endpoints: dashboard stats and the manual
// review-digest trigger.
type SystemHandler struct {
	homeownerRepo *repository.HomeownerRepository
	claimRepo     *repository.ClaimRepository
	digestRunner  func() error
}

func NewSystemHandler(homeownerRepo *repository.HomeownerRepository, claimRepo *repository.ClaimRepository, digestRunner func() error) *SystemHandler {
	return &SystemHandler{
		homeownerRepo: homeownerRepo,
		claimRepo:     claimRepo,
		digestRunner:  digestRunner,
	}
}

// StatsResponse summarizes the claim pipeline
type StatsResponse struct {
	Homeowners        int64 `json:"homeowners" example:"240"`
	ClaimsNew         int64 `json:"claims_new" example:"3"`
	ClaimsLinked      int64 `json:"claims_linked" example:"180"`
	ClaimsNeedsReview int64 `json:"claims_needs_review" example:"7"`
	ClaimsResolved    int64 `json:"claims_resolved" example:"150"`
}

// GetStats returns pipeline counts for the dashboard
// @Summary Get system stats
// @Tags system
// @Produce json
// @Success 200 {object} api.APIResponse{data=StatsResponse} "Stats retrieved successfully"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /system/stats [get]
func (h *SystemHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	homeowners, err := h.homeownerRepo.CountHomeowners(ctx)
	if err != nil {
		api.SendInternalError(c, "Failed to count homeowners")
		return
	}

	stats := StatsResponse{Homeowners: homeowners}
	counts := []struct {
		status string
		dest   *int64
	}{
		{repository.ClaimStatusNew, &stats.ClaimsNew},
		{repository.ClaimStatusLinked, &stats.ClaimsLinked},
		{repository.ClaimStatusNeedsReview, &stats.ClaimsNeedsReview},
		{repository.ClaimStatusResolved, &stats.ClaimsResolved},
	}
	for _, count := range counts {
		n, err := h.claimRepo.CountClaimsByStatus(ctx, count.status)
		if err != nil {
			api.SendInternalError(c, "Failed to count claims")
			return
		}
		*count.dest = n
	}

	api.SendSuccess(c, http.StatusOK, stats, nil)
}

// TriggerReviewDigest runs the review digest job immediately
// @Summary Trigger the review digest
// @Description Run the needs-review digest notification outside its schedule
// @Tags system
// @Produce json
// @Success 202 {object} api.APIResponse "Digest triggered"
// @Failure 500 {object} api.APIResponse{error=api.APIError} "Internal server error"
// @Router /system/review-digest [post]
func (h *SystemHandler) TriggerReviewDigest(c *gin.Context) {
	if err := h.digestRunner(); err != nil {
		api.SendInternalError(c, "Failed to run review digest")
		return
	}
	api.SendSuccess(c, http.StatusAccepted, gin.H{"triggered": true}, nil)
}

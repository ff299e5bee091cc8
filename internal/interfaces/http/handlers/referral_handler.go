package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"stake-chain.backend/internal/interfaces/http/response"
	"stake-chain.backend/internal/usecases"
)

// ReferralHandler handles referral endpoints
type ReferralHandler struct {
	referralUsecase *usecases.ReferralUsecase
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralUsecase *usecases.ReferralUsecase) *ReferralHandler {
	return &ReferralHandler{referralUsecase: referralUsecase}
}

// ListReferrals returns a user's direct referrals only
// GET /api/referrals/:userAddress
func (h *ReferralHandler) ListReferrals(c *gin.Context) {
	referrals, err := h.referralUsecase.ListReferrals(c.Request.Context(), c.Param("userAddress"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, referrals)
}

// GetReferralTree returns the full downstream subtree of a user
// GET /api/referrals/:userAddress/tree?maxDepth=N
func (h *ReferralHandler) GetReferralTree(c *gin.Context) {
	maxDepth := 0
	if raw := c.Query("maxDepth"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			maxDepth = parsed
		}
	}

	tree, err := h.referralUsecase.GetReferralTree(c.Request.Context(), c.Param("userAddress"), maxDepth)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, tree)
}

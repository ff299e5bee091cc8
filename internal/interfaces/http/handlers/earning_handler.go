package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stake-chain.backend/internal/domain/entities"
	"stake-chain.backend/internal/interfaces/http/response"
	"stake-chain.backend/internal/usecases"
)

// EarningHandler handles earning endpoints
type EarningHandler struct {
	earningUsecase *usecases.EarningUsecase
}

// NewEarningHandler creates a new earning handler
func NewEarningHandler(earningUsecase *usecases.EarningUsecase) *EarningHandler {
	return &EarningHandler{earningUsecase: earningUsecase}
}

// RecordEarning appends an earning event
// POST /api/earnings
func (h *EarningHandler) RecordEarning(c *gin.Context) {
	var input entities.RecordEarningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	earning, err := h.earningUsecase.RecordEarning(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, earning)
}

// ListEarnings returns a user's earning log
// GET /api/earnings/:userAddress
func (h *EarningHandler) ListEarnings(c *gin.Context) {
	earnings, err := h.earningUsecase.ListEarnings(c.Request.Context(), c.Param("userAddress"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, earnings)
}

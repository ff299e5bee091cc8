package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stake-chain.backend/internal/domain/entities"
	"stake-chain.backend/internal/interfaces/http/response"
	"stake-chain.backend/internal/usecases"
)

// InvestmentHandler handles investment endpoints
type InvestmentHandler struct {
	accountUsecase *usecases.AccountUsecase
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(accountUsecase *usecases.AccountUsecase) *InvestmentHandler {
	return &InvestmentHandler{accountUsecase: accountUsecase}
}

// RecordInvestment appends a deposit and updates the user's totals
// POST /api/investments
func (h *InvestmentHandler) RecordInvestment(c *gin.Context) {
	var input entities.RecordInvestmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	investment, err := h.accountUsecase.RecordInvestment(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, investment)
}

// ListInvestments returns a user's investment log
// GET /api/investments/:userAddress
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	investments, err := h.accountUsecase.ListInvestments(c.Request.Context(), c.Param("userAddress"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, investments)
}

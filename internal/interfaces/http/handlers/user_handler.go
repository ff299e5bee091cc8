package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"stake-chain.backend/internal/domain/entities"
	domainerrors "stake-chain.backend/internal/domain/errors"
	"stake-chain.backend/internal/interfaces/http/response"
	"stake-chain.backend/internal/usecases"
)

// UserHandler handles user endpoints
type UserHandler struct {
	accountUsecase *usecases.AccountUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(accountUsecase *usecases.AccountUsecase) *UserHandler {
	return &UserHandler{accountUsecase: accountUsecase}
}

// GetUser returns the ledger record for one wallet
// GET /api/users/:address
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.accountUsecase.GetUser(c.Request.Context(), c.Param("address"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Register registers a wallet, optionally under a referrer
// POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var input entities.RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accountUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		// every register failure surfaces as 400, missing referrer included
		var appErr *domainerrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

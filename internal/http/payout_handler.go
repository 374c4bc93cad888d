package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payout-bot/internal/service"
)

// PayoutHandler mantiene dependencias para los endpoints de pagos.
type PayoutHandler struct {
	logger     *zap.Logger
	payoutServ *service.PayoutService
}

// NewPayoutHandler crea una instancia de PayoutHandler con sus dependencias.
func NewPayoutHandler(logger *zap.Logger, payoutServ *service.PayoutService) *PayoutHandler {
	return &PayoutHandler{
		logger:     logger,
		payoutServ: payoutServ,
	}
}

// CreatePayout maneja POST /payouts.
func (h *PayoutHandler) CreatePayout(c *gin.Context) {
	var req struct {
		UserID   string `json:"user_id" binding:"required"`
		Amount   string `json:"amount" binding:"required"`
		Currency string `json:"currency" binding:"required"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create payout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	payout := h.payoutServ.Create(service.CreatePayoutInput{
		UserID:   req.UserID,
		Amount:   req.Amount,
		Currency: req.Currency,
		Notes:    req.Notes,
	})

	c.JSON(http.StatusCreated, gin.H{"payout": payout})
}

// ListPayouts maneja GET /payouts.
func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	status := c.Query("status")
	userID := c.Query("userId")

	c.JSON(http.StatusOK, gin.H{"payouts": h.payoutServ.List(status, userID)})
}

// GetPayout maneja GET /payouts/:id.
func (h *PayoutHandler) GetPayout(c *gin.Context) {
	payout, ok := h.payoutServ.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "payout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payout": payout})
}

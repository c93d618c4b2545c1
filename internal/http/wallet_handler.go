package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jasaku/internal/domain"
	"jasaku/internal/metrics"
	"jasaku/internal/service"
)

// WalletHandler mantiene dependencias para endpoints de saldo y revelación.
type WalletHandler struct {
	logger *zap.Logger
	wallet *service.WalletService
}

// NewWalletHandler crea una instancia de WalletHandler con dependencias necesarias.
func NewWalletHandler(logger *zap.Logger, wallet *service.WalletService) *WalletHandler {
	return &WalletHandler{
		logger: logger,
		wallet: wallet,
	}
}

// GetWallet maneja GET /wallet.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	wallet, err := h.wallet.Balance(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("get wallet failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load wallet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wallet":        wallet,
		"contact_fee":   h.wallet.ContactFee(),
		"topup_options": domain.TopUpDenominations,
	})
}

// TopUp maneja POST /wallet/topup: acreditación incondicional de un monto
// positivo. La verificación del pago es un colaborador externo.
func (h *WalletHandler) TopUp(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Amount int64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid topup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	wallet, err := h.wallet.TopUp(c.Request.Context(), claims.UserID, req.Amount)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrWalletInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	default:
		h.logger.Error("topup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not top up"})
		return
	}

	metrics.TopUps.Inc()
	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}

// RevealContact maneja POST /providers/:provider_id/contact. Fondos
// insuficientes responde 402 con las denominaciones de recarga: nunca un
// callejón sin salida.
func (h *WalletHandler) RevealContact(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	decision, err := h.wallet.AttemptReveal(c.Request.Context(), claims.UserID, c.Param("provider_id"))
	if err != nil {
		h.logger.Error("reveal failed", zap.Error(err), zap.String("user_id", claims.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reveal contact"})
		return
	}

	if decision.Status == domain.RevealDeniedInsufficientFunds {
		metrics.RevealsDenied.Inc()
		c.JSON(http.StatusPaymentRequired, gin.H{"decision": decision})
		return
	}

	metrics.RevealsGranted.Inc()
	c.JSON(http.StatusOK, gin.H{"decision": decision})
}

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

// Advertencia mostrada al remitente cuando el chequeo detecta contacto.
const contactWarning = "Informasi kontak terdeteksi dan akan difilter. Jangan berbagi kontak pribadi sebelum deal demi menjaga privasi anda pada oknum tak bertanggungjawab."

// ChatHandler mantiene dependencias para endpoints de mensajería.
type ChatHandler struct {
	logger *zap.Logger
	chat   *service.ChatService
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, chat *service.ChatService) *ChatHandler {
	return &ChatHandler{
		logger: logger,
		chat:   chat,
	}
}

// PreviewMessage maneja POST /messages/preview: el chequeo de tipeo en vivo.
// El cliente lo invoca en cada cambio del borrador para decidir si habilita
// el botón de envío.
func (h *ChatHandler) PreviewMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid preview request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res := h.chat.Preview(req.Content)
	body := gin.H{
		"filtered_message":  res.FilteredMessage,
		"contained_contact": res.ContainedContact,
	}
	if res.ContainedContact {
		body["warning"] = contactWarning
	}
	c.JSON(http.StatusOK, body)
}

// SendMessage maneja POST /messages. Un mensaje con información de contacto
// se rechaza entero con 422; nunca se censura-y-envía.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		ReceiverID string `json:"receiver_id" binding:"required"`
		Content    string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid send message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg, err := h.chat.Send(c.Request.Context(), domain.Message{
		SenderID:   claims.UserID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrContactInfoDetected):
		metrics.MessagesBlocked.Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "contact info detected",
			"warning": contactWarning,
		})
		return
	case errors.Is(err, service.ErrSendRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many messages"})
		return
	case errors.Is(err, service.ErrChatInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	default:
		h.logger.Error("send message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send message"})
		return
	}

	metrics.MessagesSent.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// GetConversation maneja GET /conversations/:peer_id y devuelve el transcript
// agrupado por día.
func (h *ChatHandler) GetConversation(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	groups, err := h.chat.History(c.Request.Context(), claims.UserID, c.Param("peer_id"))
	if err != nil {
		h.logger.Error("list conversation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load conversation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// MarkConversationRead maneja POST /conversations/:peer_id/read.
func (h *ChatHandler) MarkConversationRead(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	err := h.chat.MarkRead(c.Request.Context(), claims.UserID, c.Param("peer_id"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrChatInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	default:
		h.logger.Error("mark read failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not mark conversation read"})
		return
	}

	c.Status(http.StatusNoContent)
}

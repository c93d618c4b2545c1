package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jasaku/internal/domain"
	"jasaku/internal/repository"
)

// ChatService encapsula el flujo de composición de mensajes: chequeo en vivo,
// bloqueo estricto de información de contacto y persistencia del transcript.
type ChatService struct {
	repo    repository.MessageRepository
	filter  ContactFilter
	limiter SendRateLimiter
	loc     *time.Location
	now     func() time.Time
}

var (
	ErrChatServiceNotConfigured = errors.New("chat service not configured")
	ErrChatInvalidInput         = errors.New("chat invalid input")
	ErrContactInfoDetected      = errors.New("contact info detected")
	ErrSendRateLimited          = errors.New("send rate limited")
)

func NewChatService(repo repository.MessageRepository, limiter SendRateLimiter, loc *time.Location) *ChatService {
	if loc == nil {
		loc = time.UTC
	}
	return &ChatService{
		repo:    repo,
		filter:  DefaultContactFilter,
		limiter: limiter,
		loc:     loc,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Preview es el chequeo de tipeo en vivo: el cliente lo invoca en cada cambio
// para deshabilitar el envío y mostrar la advertencia. No persiste nada.
func (s *ChatService) Preview(content string) domain.RedactionResult {
	if s == nil {
		return DefaultContactFilter.Filter(content)
	}
	return s.filter.Filter(content)
}

// Send valida y persiste un mensaje. Política estricta: un mensaje con
// información de contacto se rechaza entero, nunca se censura-y-envía. Lo que
// sí se almacena siempre es la salida del filtro, como red de seguridad para
// cualquier camino que haya saltado el chequeo en vivo.
func (s *ChatService) Send(ctx context.Context, msg domain.Message) (domain.Message, error) {
	if s == nil || s.repo == nil {
		return domain.Message{}, ErrChatServiceNotConfigured
	}

	msg.SenderID = strings.TrimSpace(msg.SenderID)
	msg.ReceiverID = strings.TrimSpace(msg.ReceiverID)
	msg.Content = strings.TrimSpace(msg.Content)

	if msg.SenderID == "" || msg.ReceiverID == "" || msg.Content == "" {
		return domain.Message{}, ErrChatInvalidInput
	}
	if s.limiter != nil && !s.limiter.Allow(msg.SenderID) {
		return domain.Message{}, ErrSendRateLimited
	}

	res := s.filter.Filter(msg.Content)
	if res.ContainedContact {
		return domain.Message{}, ErrContactInfoDetected
	}
	msg.Content = res.FilteredMessage

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now()
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return domain.Message{}, err
	}
	return msg, nil
}

// History devuelve el transcript entre dos usuarios agrupado por día.
func (s *ChatService) History(ctx context.Context, userID, peerID string) ([]domain.MessageGroup, error) {
	if s == nil || s.repo == nil {
		return nil, ErrChatServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	peerID = strings.TrimSpace(peerID)
	if userID == "" || peerID == "" {
		return []domain.MessageGroup{}, nil
	}

	messages, err := s.repo.ListConversation(ctx, userID, peerID)
	if err != nil {
		return nil, err
	}
	return GroupByDate(messages, s.now(), s.loc), nil
}

// MarkRead marca como leídos los mensajes que peerID le envió a userID.
func (s *ChatService) MarkRead(ctx context.Context, userID, peerID string) error {
	if s == nil || s.repo == nil {
		return ErrChatServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	peerID = strings.TrimSpace(peerID)
	if userID == "" || peerID == "" {
		return ErrChatInvalidInput
	}
	return s.repo.MarkRead(ctx, userID, peerID)
}

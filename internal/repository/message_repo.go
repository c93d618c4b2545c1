package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"jasaku/internal/domain"
)

// MessageRepository define el contrato de persistencia del transcript de chat.
// El transcript es append-only: el contenido nunca se muta después de creado,
// sólo la bandera de lectura.
type MessageRepository interface {
	Create(ctx context.Context, message domain.Message) error
	ListConversation(ctx context.Context, userID, peerID string) ([]domain.Message, error)
	MarkRead(ctx context.Context, receiverID, senderID string) error
}

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Create(ctx context.Context, message domain.Message) error {
	const query = `
		INSERT INTO messages (id, sender_id, receiver_id, content, created_at, read)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.SenderID,
		message.ReceiverID,
		message.Content,
		message.Timestamp,
		message.Read,
	)
	return err
}

func (r *PgMessageRepository) ListConversation(ctx context.Context, userID, peerID string) ([]domain.Message, error) {
	const query = `
		SELECT id, sender_id, receiver_id, content, created_at, read
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID, peerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		err = rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.Content,
			&msg.Timestamp,
			&msg.Read,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *PgMessageRepository) MarkRead(ctx context.Context, receiverID, senderID string) error {
	const query = `
		UPDATE messages
		SET read = TRUE
		WHERE receiver_id = $1 AND sender_id = $2 AND read = FALSE
	`

	_, err := r.pool.Exec(ctx, query, receiverID, senderID)
	return err
}

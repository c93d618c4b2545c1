package domain

import "time"

type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// MessageGroup agrupa mensajes consecutivos del mismo día calendario.
type MessageGroup struct {
	DateLabel string    `json:"date"`
	Messages  []Message `json:"messages"`
}

// RedactionResult es el resultado efímero del filtro de contacto; no se persiste.
type RedactionResult struct {
	FilteredMessage  string `json:"filtered_message"`
	ContainedContact bool   `json:"contained_contact"`
}

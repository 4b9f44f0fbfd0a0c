package dto

import (
	"time"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	Id         uuid.UUID  `json:"id"`
	TypeCode   string     `json:"type_code"`
	EntityType string     `json:"entity_type,omitempty"`
	EntityId   *uuid.UUID `json:"entity_id,omitempty"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	IsRead     bool       `json:"is_read"`
	CreatedAt  time.Time  `json:"created_at"`
}

type MarkReadRequest struct {
	Ids []uuid.UUID `json:"ids"`
}

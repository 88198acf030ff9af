package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	SessionID     uuid.UUID  `json:"session_id" db:"session_id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	Role          string     `json:"role" db:"role"`
	Experience    string     `json:"experience" db:"experience"`
	TopicsToFocus string     `json:"topics_to_focus" db:"topics_to_focus"`
	Questions     []Question `json:"questions"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateSessionReq struct {
	Role          string `json:"role" binding:"required"`
	Experience    string `json:"experience" binding:"required"`
	TopicsToFocus string `json:"topicsToFocus" binding:"required"`
}

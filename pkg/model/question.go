package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	QuestionID uuid.UUID `json:"question_id" db:"question_id"`
	SessionID  uuid.UUID `json:"session_id" db:"session_id"`
	Question   string    `json:"question" db:"question"`
	Answer     string    `json:"answer" db:"answer"`
	IsPinned   bool      `json:"isPinned" db:"is_pinned"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type AddQuestionReq struct {
	Role          string    `json:"role" binding:"required"`
	Experience    string    `json:"experience" binding:"required"`
	TopicsToFocus string    `json:"topicsToFocus" binding:"required"`
	SessionID     uuid.UUID `json:"sessionId" binding:"required"`
}

// GeneratedQA is one question/answer pair recovered from model output.
type GeneratedQA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mradulpatle03/IDE/pkg/model"
)

// ContextUserIDKey is where the auth middleware stores the caller's id.
const ContextUserIDKey = "userID"

type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	UpdateProfile(ctx context.Context, u *model.User) error
}

type ProjectStore interface {
	Create(ctx context.Context, p *model.Project) error
	SaveCode(ctx context.Context, projectID, owner uuid.UUID, code string) error
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]model.Project, error)
	GetByIDAndOwner(ctx context.Context, projectID, owner uuid.UUID) (model.Project, error)
	Rename(ctx context.Context, projectID, owner uuid.UUID, name string) error
	Delete(ctx context.Context, projectID, owner uuid.UUID) error
}

type SessionStore interface {
	Create(ctx context.Context, s *model.Session) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Session, error)
	GetByIDAndOwner(ctx context.Context, sessionID, owner uuid.UUID) (model.Session, error)
	Delete(ctx context.Context, sessionID, owner uuid.UUID) error
}

type QuestionStore interface {
	CreateBatch(ctx context.Context, questions []model.Question) error
	TogglePin(ctx context.Context, questionID, owner uuid.UUID) (bool, error)
}

// AIClient is the slice of the Gemini client the handlers use.
type AIClient interface {
	InterviewQuestions(ctx context.Context, role, experience, topicsToFocus string) ([]model.GeneratedQA, string, error)
	GenerateRoadmap(ctx context.Context, req model.RoadmapReq) (*model.Roadmap, error)
	DSAQuestions(ctx context.Context, q model.DSAQuery) ([]model.DSAQuestion, string, error)
	MentorChat(ctx context.Context, message string) (string, error)
}

// CodeRunner proxies the external execution service.
type CodeRunner interface {
	Execute(ctx context.Context, req model.RunCodeReq) (*model.RunCodeRes, error)
	Runtimes(ctx context.Context) ([]model.Runtime, error)
}

// Uploader pushes file buffers to the image CDN.
type Uploader interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}

type Application struct {
	Logger    *zap.Logger
	Users     UserStore
	Projects  ProjectStore
	Sessions  SessionStore
	Questions QuestionStore
	AI        AIClient
	Runner    CodeRunner
	Uploader  Uploader
	Cache     *redis.Client
	JwtSecret string
	JwtTTL    time.Duration
}

// UserIDFromContext retrieves the authenticated user id set by the auth
// middleware. The zero uuid means the request was not authenticated.
func UserIDFromContext(c *gin.Context) uuid.UUID {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

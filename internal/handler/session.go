package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mradulpatle03/IDE/internal/repository"
	"github.com/mradulpatle03/IDE/pkg/model"
	"github.com/mradulpatle03/IDE/pkg/response"
)

// CreateSession saves a new interview-practice configuration.
func (app *Application) CreateSession(c *gin.Context) {
	var req model.CreateSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please provide all the details")
		return
	}

	session := &model.Session{
		UserID:        UserIDFromContext(c),
		Role:          req.Role,
		Experience:    req.Experience,
		TopicsToFocus: req.TopicsToFocus,
	}

	if err := app.Sessions.Create(c.Request.Context(), session); err != nil {
		app.Logger.Error("create_session: insert failed", zap.Error(err))
		response.InternalError(c, "could not create session")
		return
	}

	response.Created(c, "Session created successfully")
}

// GetMySessions lists the caller's sessions, newest first, with questions.
func (app *Application) GetMySessions(c *gin.Context) {
	sessions, err := app.Sessions.ListByUser(c.Request.Context(), UserIDFromContext(c))
	if err != nil {
		app.Logger.Error("get_sessions: query failed", zap.Error(err))
		response.InternalError(c, "could not fetch sessions")
		return
	}
	if sessions == nil {
		sessions = []model.Session{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "session": sessions})
}

// GetSessionByID fetches one session, questions pinned-first then newest.
func (app *Application) GetSessionByID(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid session id")
		return
	}

	session, err := app.Sessions.GetByIDAndOwner(c.Request.Context(), sessionID, UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Session not found")
			return
		}
		app.Logger.Error("get_session: query failed", zap.String("session_id", sessionID.String()), zap.Error(err))
		response.InternalError(c, "could not fetch session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "session": session})
}

// DeleteSession removes a session and, through the cascade, its questions.
func (app *Application) DeleteSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid session id")
		return
	}

	err = app.Sessions.Delete(c.Request.Context(), sessionID, UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Session not found")
			return
		}
		app.Logger.Error("delete_session: delete failed", zap.String("session_id", sessionID.String()), zap.Error(err))
		response.InternalError(c, "could not delete session")
		return
	}

	response.OK(c, "Session deleted successfully")
}

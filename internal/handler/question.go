package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mradulpatle03/IDE/internal/repository"
	"github.com/mradulpatle03/IDE/pkg/lenientjson"
	"github.com/mradulpatle03/IDE/pkg/model"
	"github.com/mradulpatle03/IDE/pkg/response"
)

// AddQuestion generates interview questions for a session via the LLM and
// bulk-inserts the recovered pairs.
func (app *Application) AddQuestion(c *gin.Context) {
	var req model.AddQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please provide all the details")
		return
	}

	ctx := c.Request.Context()
	owner := UserIDFromContext(c)

	session, err := app.Sessions.GetByIDAndOwner(ctx, req.SessionID, owner)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Session not found")
			return
		}
		app.Logger.Error("add_question: session lookup failed", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	pairs, cleaned, err := app.AI.InterviewQuestions(ctx, req.Role, req.Experience, req.TopicsToFocus)
	if err != nil {
		var decodeErr *lenientjson.DecodeError
		if errors.As(err, &decodeErr) {
			app.Logger.Warn("add_question: unparseable model output",
				zap.String("session_id", session.SessionID.String()),
			)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"msg":     "Invalid JSON from model",
				"raw":     decodeErr.Cleaned,
			})
			return
		}
		app.Logger.Error("add_question: generation failed", zap.Error(err))
		response.InternalError(c, "could not generate questions")
		return
	}

	questions := make([]model.Question, 0, len(pairs))
	for _, p := range pairs {
		if p.Question == "" || p.Answer == "" {
			continue
		}
		questions = append(questions, model.Question{
			SessionID: session.SessionID,
			Question:  p.Question,
			Answer:    p.Answer,
		})
	}
	if len(questions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"msg":     "Invalid JSON from model",
			"raw":     cleaned,
		})
		return
	}

	if err := app.Questions.CreateBatch(ctx, questions); err != nil {
		app.Logger.Error("add_question: insert failed",
			zap.String("session_id", session.SessionID.String()),
			zap.Error(err),
		)
		response.InternalError(c, "could not save questions")
		return
	}

	app.Logger.Info("add_question: questions created",
		zap.String("session_id", session.SessionID.String()),
		zap.Int("count", len(questions)),
	)

	response.Created(c, "Questions created successfully")
}

// TogglePinQuestion flips a question's pinned flag.
func (app *Application) TogglePinQuestion(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid question id")
		return
	}

	pinned, err := app.Questions.TogglePin(c.Request.Context(), questionID, UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Question not found")
			return
		}
		app.Logger.Error("toggle_question: update failed",
			zap.String("question_id", questionID.String()),
			zap.Error(err),
		)
		response.InternalError(c, "could not toggle question")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"msg":      "Question pinned successfully",
		"isPinned": pinned,
	})
}

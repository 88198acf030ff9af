package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mradulpatle03/IDE/pkg/model"
	"github.com/mradulpatle03/IDE/pkg/response"
)

// Chat answers a single doubt. No history is kept server-side; any
// continuity lives in the client.
func (app *Application) Chat(c *gin.Context) {
	var req model.ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Message is required")
		return
	}

	reply, err := app.AI.MentorChat(c.Request.Context(), req.Message)
	if err != nil {
		app.Logger.Error("chat: generation failed", zap.Error(err))
		response.InternalError(c, "AI failed to respond")
		return
	}

	c.JSON(http.StatusOK, model.ChatRes{Reply: reply})
}

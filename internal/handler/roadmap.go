package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mradulpatle03/IDE/pkg/model"
	"github.com/mradulpatle03/IDE/pkg/response"
)

// GenerateRoadmap builds a personalized learning roadmap. Single shot; a
// malformed model reply is a 500, not retried.
func (app *Application) GenerateRoadmap(c *gin.Context) {
	var req model.RoadmapReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	roadmap, err := app.AI.GenerateRoadmap(c.Request.Context(), req)
	if err != nil {
		app.Logger.Error("roadmap: generation failed", zap.String("role", req.Role), zap.Error(err))
		response.InternalError(c, "Failed to generate roadmap")
		return
	}

	c.JSON(http.StatusOK, roadmap)
}

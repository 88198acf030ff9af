package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mradulpatle03/IDE/internal/cache"
	"github.com/mradulpatle03/IDE/pkg/model"
	"github.com/mradulpatle03/IDE/pkg/response"
)

const runtimesCacheKey = "piston:runtimes"
const runtimesCacheTTL = time.Hour

// RunCode forwards source and stdin to the execution service and returns
// stdout, stderr and the exit code.
func (app *Application) RunCode(c *gin.Context) {
	var req model.RunCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "language, version and code are required")
		return
	}

	result, err := app.Runner.Execute(c.Request.Context(), req)
	if err != nil {
		app.Logger.Error("run_code: execution failed", zap.String("language", req.Language), zap.Error(err))
		response.InternalError(c, "could not run code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "run": result})
}

// GetRuntimes lists supported languages/versions, cached for an hour.
func (app *Application) GetRuntimes(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []model.Runtime
	if cache.GetJSON(ctx, app.Cache, runtimesCacheKey, &cached) {
		c.JSON(http.StatusOK, gin.H{"success": true, "runtimes": cached})
		return
	}

	runtimes, err := app.Runner.Runtimes(ctx)
	if err != nil {
		app.Logger.Error("get_runtimes: fetch failed", zap.Error(err))
		response.InternalError(c, "could not fetch runtimes")
		return
	}

	cache.SetJSON(ctx, app.Cache, runtimesCacheKey, runtimes, runtimesCacheTTL)
	c.JSON(http.StatusOK, gin.H{"success": true, "runtimes": runtimes})
}

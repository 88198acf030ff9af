package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mradulpatle03/IDE/internal/cache"
	"github.com/mradulpatle03/IDE/pkg/lenientjson"
	"github.com/mradulpatle03/IDE/pkg/model"
	"github.com/mradulpatle03/IDE/pkg/response"
)

const dsaCacheTTL = 10 * time.Minute

// GetDSAQuestions asks the LLM for curated practice problems. Results are
// cached per parameter tuple; on unrecoverable output the raw text is served
// instead of an error, which clients handle defensively.
func (app *Application) GetDSAQuestions(c *gin.Context) {
	var q model.DSAQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	ctx := c.Request.Context()
	key := fmt.Sprintf("dsa:%s:%s:%s:%d", q.Topic, q.Difficulty, q.Company, q.Limit)

	var cached []model.DSAQuestion
	if cache.GetJSON(ctx, app.Cache, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	questions, cleaned, err := app.AI.DSAQuestions(ctx, q)
	if err != nil {
		var decodeErr *lenientjson.DecodeError
		if errors.As(err, &decodeErr) {
			c.JSON(http.StatusOK, gin.H{"raw": cleaned})
			return
		}
		app.Logger.Error("dsa: generation failed", zap.String("topic", q.Topic), zap.Error(err))
		response.InternalError(c, "Failed to fetch questions")
		return
	}

	cache.SetJSON(ctx, app.Cache, key, questions, dsaCacheTTL)
	c.JSON(http.StatusOK, questions)
}

package main

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/mradulpatle03/IDE/internal/auth"
	"github.com/mradulpatle03/IDE/internal/handler"
	"github.com/mradulpatle03/IDE/internal/repository"
	"github.com/mradulpatle03/IDE/pkg/response"
)

// AuthMiddleware authenticates requests via the httpOnly token cookie.
func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("token")
		if err != nil || token == "" {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(app.Config.JWT.Secret, token)
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		// check the user still exists
		_, err = app.Handler.Users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Unauthorized(c, "invalid token")
			} else {
				response.InternalError(c, "")
			}
			c.Abort()
			return
		}

		c.Set(handler.ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// RateLimitMiddleware applies a per-client token bucket to the open AI
// endpoints.
func (app *application) RateLimitMiddleware() gin.HandlerFunc {
	if !app.Config.Limiter.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(app.Config.Limiter.RPS), app.Config.Limiter.Burst)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			response.TooManyRequests(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows the configured frontend origins with credentials.
func (app *application) CORSMiddleware() gin.HandlerFunc {
	trusted := make(map[string]bool)
	for _, origin := range app.Config.GetCORSOrigins() {
		trusted[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if trusted[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape every JSON response shares.
type Envelope struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg,omitempty"`
}

// OK sends a 200 with a success message.
func OK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Msg: msg})
}

// Created sends a 201 with a success message.
func Created(c *gin.Context, msg string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Msg: msg})
}

func errorResponse(c *gin.Context, status int, msg string) {
	c.JSON(status, Envelope{Success: false, Msg: msg})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, msg string) {
	errorResponse(c, http.StatusBadRequest, msg)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, msg string) {
	if msg == "" {
		msg = "unauthorized"
	}
	errorResponse(c, http.StatusUnauthorized, msg)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, msg string) {
	if msg == "" {
		msg = "resource not found"
	}
	errorResponse(c, http.StatusNotFound, msg)
}

// InternalError sends a 500 response.
// Internal error details are logged, never sent to clients.
func InternalError(c *gin.Context, msg string) {
	if msg == "" {
		msg = "internal server error"
	}
	errorResponse(c, http.StatusInternalServerError, msg)
}

// TooManyRequests sends a 429 response.
func TooManyRequests(c *gin.Context, msg string) {
	if msg == "" {
		msg = "rate limit exceeded, please try again later"
	}
	errorResponse(c, http.StatusTooManyRequests, msg)
}

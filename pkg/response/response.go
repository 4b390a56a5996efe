package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 response
func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 response
func Created(c *gin.Context, body interface{}) {
	c.JSON(http.StatusCreated, body)
}

// NoContent sends a 204 response with no body
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with a single message
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// BadRequest sends a 400 error response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error response
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 error response
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError sends a generic 500 error response. Internal detail is never
// returned to the caller.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Server error")
}

// Issue is one field-level validation failure
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError sends a 400 response with field-level detail
func ValidationError(c *gin.Context, issues []Issue) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "VALIDATION_ERROR",
		"issues": issues,
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StandardResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Stable machine-readable failure codes surfaced alongside the
// user-facing message. Internal error text is never forwarded.
const (
	codeValidation        = "validation_error"
	codeNotEligible       = "not_eligible"
	codeNoActiveChallenge = "no_active_challenge"
	codeForbidden         = "forbidden"
	codeNotFound          = "not_found"
	codeConflict          = "conflict"
)

func fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": message, "code": code})
}

func failValidation(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, codeValidation, message)
}

func failNotFound(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, codeNotFound, message)
}

func failForbidden(c *gin.Context, message string) {
	fail(c, http.StatusForbidden, codeForbidden, message)
}

func failNotEligible(c *gin.Context, message string) {
	fail(c, http.StatusConflict, codeNotEligible, message)
}

func failConflict(c *gin.Context, message string) {
	fail(c, http.StatusConflict, codeConflict, message)
}

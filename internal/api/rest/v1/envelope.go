package v1

import (
	"github.com/gin-gonic/gin"
)

const (
	// TypeSuccess marks a successful response envelope
	TypeSuccess = "success"
	// TypeError marks a failed response envelope
	TypeError = "error"
)

// Envelope is the body of every JSON response
type Envelope struct {
	Status  int    `json:"status"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewEnvelope builds an envelope. Data is omitted from the JSON when nil.
func NewEnvelope(status int, envelopeType, message string, data any) Envelope {
	return Envelope{Status: status, Type: envelopeType, Message: message, Data: data}
}

func respondSuccess(ctx *gin.Context, status int, message string, data any) {
	ctx.JSON(status, NewEnvelope(status, TypeSuccess, message, data))
}

func respondError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, NewEnvelope(status, TypeError, message, nil))
}

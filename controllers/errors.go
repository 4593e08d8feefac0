package controllers

import (
	"errors"

	"pos-backend/pkg/resp"
	"pos-backend/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the JSON envelope.
func respondError(c *gin.Context, err error) {
	var ve *services.ValidationError
	var re *services.InvalidReferenceError
	switch {
	case errors.As(err, &ve), errors.As(err, &re),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrDuplicateKey):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

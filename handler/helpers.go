package handler

import (
	"errors"

	"dailysync/repository"
	"dailysync/usecase"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
)

// currentUserID pulls the authenticated principal set by the auth
// middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return "", false
	}
	return userID.(string), true
}

// respondError maps service errors onto the response envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNoSession):
		utils.Unauthorized(c, "No authenticated session")
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, "Record not found")
	case errors.Is(err, usecase.ErrValidation):
		utils.BadRequest(c, err.Error())
	default:
		utils.InternalError(c, err.Error())
	}
}

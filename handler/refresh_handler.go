package handler

import (
	"errors"
	"fmt"

	"dailysync/repository"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Refresh exchanges a valid refresh token for a new access/refresh pair.
// The backing session must still be active.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	token, err := jwt.Parse(req.Refresh, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		utils.TrackAuthAttempt("failure", "invalid_refresh_token")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "refresh" || claims["iss"] != utils.TokenIssuer {
		utils.TrackAuthAttempt("failure", "invalid_refresh_claims")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}
	userID, _ := claims["user_id"].(string)
	sessionID, _ := claims["session_id"].(string)
	if userID == "" || sessionID == "" {
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	session, err := h.sessions.GetSession(c.Request.Context(), sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.Unauthorized(c, "Session no longer active")
		return
	}
	if err != nil {
		utils.TrackError("session", "fetch_failed")
		utils.InternalError(c, "Failed to fetch session")
		return
	}
	if !session.IsActive || session.UserID != userID {
		utils.Unauthorized(c, "Session no longer active")
		return
	}

	access, err := utils.GenerateAccessToken(userID, sessionID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refresh, err := utils.GenerateRefreshToken(userID, sessionID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := h.sessions.TouchSession(c.Request.Context(), sessionID); err != nil {
		utils.TrackError("session", "touch_failed")
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, gin.H{
		"token":   access,
		"refresh": refresh,
	})
}

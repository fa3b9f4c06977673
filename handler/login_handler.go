package handler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"dailysync/model"
	"dailysync/repository"
	"dailysync/services"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
	"go.mongodb.org/mongo-driver/bson"
)

const MaxActiveSessions = 5

func deviceInfo(c *gin.Context) string {
	ua := useragent.Parse(c.Request.UserAgent())
	if ua.Name == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s %s on %s", ua.Name, ua.Version, ua.OS)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.users.FindUserByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		utils.TrackAuthAttempt("failure", "user_not_found")
		utils.Unauthorized(c, "Invalid email or password")
		return
	}
	if err != nil {
		utils.TrackError("auth", "user_lookup")
		utils.InternalError(c, "Failed to look up user")
		return
	}

	match, err := services.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		utils.TrackError("auth", "password_verification")
		utils.Unauthorized(c, "Invalid email or password")
		return
	}
	if !match {
		utils.TrackAuthAttempt("failure", "invalid_password")
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	// Cap concurrent sessions per user. The oldest active one is ended
	// when the cap is hit.
	active, err := h.sessions.GetActiveSessions(c.Request.Context(), user.UserID)
	if err != nil {
		utils.TrackError("session", "count_check")
		utils.InternalError(c, "Failed to check sessions")
		return
	}
	var notice string
	if len(active) >= MaxActiveSessions {
		oldest := active[len(active)-1]
		if err := h.sessions.EndSession(c.Request.Context(), oldest.SessionID); err != nil {
			utils.TrackError("session", "session_cleanup")
			utils.InternalError(c, "Failed to manage sessions")
			return
		}
		notice = "Logged out of oldest session due to session limit"
		log.Printf("Ended oldest session for user %s due to session limit", user.UserID)
	}

	now := time.Now()
	session := &model.Session{
		SessionID:      utils.GenerateID(),
		UserID:         user.UserID,
		CreatedAt:      now,
		ExpiresAt:      now.Add(utils.GetEnvAsDuration("SESSION_DURATION", 24*time.Hour)),
		LastActivityAt: now,
		DeviceInfo:     deviceInfo(c),
		IPAddress:      c.ClientIP(),
		IsActive:       true,
	}
	if err := h.sessions.CreateSession(c.Request.Context(), session); err != nil {
		utils.TrackError("session", "creation")
		utils.InternalError(c, "Failed to create session")
		return
	}

	token, err := utils.GenerateAccessToken(user.UserID, session.SessionID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(user.UserID, session.SessionID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := h.users.TouchLastLogin(c.Request.Context(), user.UserID, bson.M{"last_login_at": now}); err != nil {
		log.Printf("warning: failed to record last login for %s: %v", user.UserID, err)
	}

	utils.TrackAuthAttempt("success", "login")

	response := gin.H{
		"message": "Login successful",
		"token":   token,
		"refresh": refreshToken,
		"user": gin.H{
			"id":       user.UserID,
			"username": user.Username,
			"email":    user.Email,
		},
	}
	if notice != "" {
		response["notice"] = notice
	}
	utils.Success(c, response)
}

package handler

import (
	"errors"

	"dailysync/repository"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
)

// Me returns the authenticated account record.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.users.FindUserByID(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.NotFound(c, "User not found")
		return
	}
	if err != nil {
		utils.TrackError("auth", "user_lookup")
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	utils.Success(c, gin.H{
		"id":            user.UserID,
		"username":      user.Username,
		"email":         user.Email,
		"created_at":    user.CreatedAt,
		"last_login_at": user.LastLoginAt,
	})
}

// GetActiveSessions lists the caller's active sessions, marking the one
// backing the current request.
func (h *AuthHandler) GetActiveSessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	currentSession := c.GetString("session_id")

	sessions, err := h.sessions.GetActiveSessions(c.Request.Context(), userID)
	if err != nil {
		utils.TrackError("session", "fetch_failed")
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	out := make([]gin.H, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, gin.H{
			"session_id":       s.SessionID,
			"created_at":       s.CreatedAt,
			"last_activity_at": s.LastActivityAt,
			"device_info":      s.DeviceInfo,
			"ip_address":       s.IPAddress,
			"current":          s.SessionID == currentSession,
		})
	}
	utils.Success(c, gin.H{"sessions": out})
}

// EndSession ends one named session belonging to the caller.
func (h *AuthHandler) EndSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessionID := c.Param("id")
	session, err := h.sessions.GetSession(c.Request.Context(), sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.NotFound(c, "Session not found")
		return
	}
	if err != nil {
		utils.TrackError("session", "fetch_failed")
		utils.InternalError(c, "Failed to fetch session")
		return
	}
	if session.UserID != userID {
		utils.NotFound(c, "Session not found")
		return
	}

	if err := h.sessions.EndSession(c.Request.Context(), sessionID); err != nil {
		utils.TrackError("session", "end_failed")
		utils.InternalError(c, "Failed to end session")
		return
	}
	utils.Success(c, gin.H{"message": "Session ended"})
}

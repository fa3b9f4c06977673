package handler

import (
	"log"

	"dailysync/utils"

	"github.com/gin-gonic/gin"
)

// Logout ends the current session and tears down the user's live
// subscriptions so no controller keeps streaming after sign-out.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessionID := c.GetString("session_id")
	if sessionID == "" {
		utils.BadRequest(c, "Missing session")
		return
	}

	if err := h.sessions.EndSession(c.Request.Context(), sessionID); err != nil {
		utils.TrackError("session", "end_failed")
		utils.InternalError(c, "Failed to end session")
		return
	}

	h.hub.DropUser(userID)
	log.Printf("user %s logged out, session %s ended", userID, sessionID)

	utils.Success(c, gin.H{"message": "Successfully logged out"})
}

// LogoutAll ends every active session for the user.
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ended, err := h.sessions.EndAllUserSessions(c.Request.Context(), userID)
	if err != nil {
		utils.TrackError("session", "end_all_failed")
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	h.hub.DropUser(userID)

	utils.Success(c, gin.H{
		"message":        "Successfully logged out everywhere",
		"sessions_ended": ended,
	})
}

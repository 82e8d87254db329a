package handler

import (
	"log"
	"strings"

	"notewell/repository"
	"notewell/services"
	"notewell/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler blacklists the presented tokens and ends the session so
// the logout takes effect immediately.
func LogoutHandler(c *gin.Context, sessionsRepo *repository.SessionsRepo) {
	accessToken := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	// The body is optional; logout works with the access token alone.
	_ = c.ShouldBindJSON(&req)

	if err := services.BlacklistTokens(accessToken, req.RefreshToken); err != nil {
		utils.InternalError(c, "Failed to invalidate tokens")
		return
	}

	sessionID := c.GetString("session_id")
	if sessionID != "" {
		if err := sessionsRepo.EndSession(c, sessionID); err != nil && err != repository.ErrNotFound {
			log.Printf("failed to end session %s: %v", sessionID, err)
		}
		if services.GlobalSessionCache != nil {
			services.GlobalSessionCache.DeleteSession(c, sessionID)
		}
	}

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}

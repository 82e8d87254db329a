package handler

import (
	"notewell/dto"
	"notewell/repository"
	"notewell/services"
	"notewell/utils"

	"github.com/gin-gonic/gin"
)

func GetActiveSessionsHandler(c *gin.Context, sessionsRepo *repository.SessionsRepo) {
	sessions, err := sessionsRepo.GetUserActiveSessions(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	utils.Success(c, dto.ToSessionResponses(sessions, c.GetString("session_id")))
}

func EndSessionHandler(c *gin.Context, sessionsRepo *repository.SessionsRepo) {
	sessionID := c.Param("id")

	session, err := sessionsRepo.GetSession(c, sessionID)
	if err != nil {
		if err == repository.ErrNotFound {
			utils.NotFound(c, "Session not found")
			return
		}
		utils.InternalError(c, "Failed to fetch session")
		return
	}
	if session.UserID != c.GetString("user_id") {
		utils.NotFound(c, "Session not found")
		return
	}

	if err := sessionsRepo.EndSession(c, sessionID); err != nil {
		utils.InternalError(c, "Failed to end session")
		return
	}
	if services.GlobalSessionCache != nil {
		services.GlobalSessionCache.DeleteSession(c, sessionID)
	}

	utils.Success(c, gin.H{"message": "Session ended"})
}

// EndAllSessionsHandler logs the user out everywhere, including the
// current session.
func EndAllSessionsHandler(c *gin.Context, sessionsRepo *repository.SessionsRepo) {
	userID := c.GetString("user_id")

	sessions, err := sessionsRepo.GetUserActiveSessions(c, userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	ended, err := sessionsRepo.EndAllUserSessions(c, userID)
	if err != nil {
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	if services.GlobalSessionCache != nil {
		for _, session := range sessions {
			services.GlobalSessionCache.DeleteSession(c, session.SessionID)
		}
	}

	utils.Success(c, gin.H{"ended": ended})
}

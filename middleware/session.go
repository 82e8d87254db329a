package middleware

import (
	"log"
	"net/http"

	"notewell/repository"
	"notewell/services"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware rejects requests whose session has been ended and
// records activity. The Redis cache answers the common case; a miss
// falls through to Mongo.
func SessionMiddleware(sessionsRepo *repository.SessionsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.Next()
			return
		}

		if services.GlobalSessionCache != nil {
			cached, err := services.GlobalSessionCache.GetSession(c, sessionID)
			if err == nil && cached != nil {
				if !cached.IsActive {
					c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has ended"})
					c.Abort()
					return
				}
				touchSession(sessionsRepo, c, sessionID)
				c.Next()
				return
			}
		}

		session, err := sessionsRepo.GetSession(c, sessionID)
		if err != nil {
			if err == repository.ErrNotFound {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found"})
				c.Abort()
				return
			}
			// Store trouble should not lock every user out.
			log.Printf("session lookup failed for %s: %v", sessionID, err)
			c.Next()
			return
		}
		if !session.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has ended"})
			c.Abort()
			return
		}

		if services.GlobalSessionCache != nil {
			if err := services.GlobalSessionCache.SetSession(c, session); err != nil {
				log.Printf("failed to cache session %s: %v", sessionID, err)
			}
		}
		touchSession(sessionsRepo, c, sessionID)

		c.Next()
	}
}

func touchSession(sessionsRepo *repository.SessionsRepo, c *gin.Context, sessionID string) {
	if err := sessionsRepo.TouchSession(c, sessionID); err != nil {
		log.Printf("failed to touch session %s: %v", sessionID, err)
	}
}

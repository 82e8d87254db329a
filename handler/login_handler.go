package handler

import (
	"log"
	"time"

	"notewell/dto"
	"notewell/model"
	"notewell/repository"
	"notewell/services"
	"notewell/usecase"
	"notewell/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

const sessionLifetime = 7 * 24 * time.Hour

func LoginHandler(c *gin.Context, usersService *usecase.UsersService, sessionsRepo *repository.SessionsRepo) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := usersService.Authenticate(c, req.Email, req.Password)
	if err != nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if user.TwoFactorEnabled {
		if req.TOTPCode == "" {
			utils.Unauthorized(c, "Two-factor code required")
			return
		}
		if !totp.Validate(req.TOTPCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "2fa")
			utils.Unauthorized(c, "Invalid two-factor code")
			return
		}
		utils.TrackAuthAttempt("success", "2fa")
	}

	now := time.Now()
	session := &model.Session{
		SessionID:      utils.GenerateID(),
		UserID:         user.UserID,
		DisplayName:    utils.GenerateSessionName(c.Request.UserAgent()),
		DeviceInfo:     c.Request.UserAgent(),
		IPAddress:      c.ClientIP(),
		IsActive:       true,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(sessionLifetime),
	}
	if err := sessionsRepo.CreateSession(c, session); err != nil {
		utils.InternalError(c, "Failed to create session")
		return
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.SetSession(c, session); err != nil {
			log.Printf("failed to cache session %s: %v", session.SessionID, err)
		}
	}

	accessToken, err := services.GenerateAccessToken(user.UserID, session.SessionID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(user.UserID, session.SessionID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	utils.Success(c, dto.LoginResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.SessionID,
	})
}

// RefreshTokenHandler exchanges a valid refresh token for a fresh pair.
// The old refresh token is blacklisted so it cannot be replayed.
func RefreshTokenHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if services.IsTokenBlacklisted(req.RefreshToken) {
		utils.Unauthorized(c, "Token has been invalidated")
		return
	}

	claims, err := services.ParseToken(req.RefreshToken)
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		utils.Unauthorized(c, "Invalid token type")
		return
	}

	userID, _ := claims["user_id"].(string)
	sessionID, _ := claims["session_id"].(string)
	if userID == "" {
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	accessToken, err := services.GenerateAccessToken(userID, sessionID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(userID, sessionID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := services.BlacklistTokens("", req.RefreshToken); err != nil {
		log.Printf("failed to blacklist rotated refresh token: %v", err)
	}
	utils.TrackAuthAttempt("success", "refresh")

	utils.Success(c, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

package dto

import (
	"time"

	"notewell/model"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	TOTPCode string `json:"totp_code"`
}

type UpdateProfileRequest struct {
	Name        *string                `json:"name"`
	Bio         *string                `json:"bio"`
	Avatar      *string                `json:"avatar"`
	Preferences *model.UserPreferences `json:"preferences"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,password"`
}

type ChangeEmailRequest struct {
	Password string `json:"password" binding:"required"`
	NewEmail string `json:"new_email" binding:"required,email"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

type TwoFactorVerifyRequest struct {
	Code string `json:"code" binding:"required"`
}

type UserResponse struct {
	UserID           string                `json:"user_id"`
	Name             string                `json:"name"`
	Email            string                `json:"email"`
	Bio              string                `json:"bio,omitempty"`
	Avatar           string                `json:"avatar,omitempty"`
	Preferences      model.UserPreferences `json:"preferences"`
	TwoFactorEnabled bool                  `json:"two_factor_enabled"`
	CreatedAt        time.Time             `json:"created_at"`
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	SessionID    string       `json:"session_id"`
}

type SessionResponse struct {
	SessionID      string    `json:"session_id"`
	DisplayName    string    `json:"display_name"`
	DeviceInfo     string    `json:"device_info"`
	IPAddress      string    `json:"ip_address"`
	Current        bool      `json:"current"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		UserID:           user.UserID,
		Name:             user.Name,
		Email:            user.Email,
		Bio:              user.Bio,
		Avatar:           user.Avatar,
		Preferences:      user.Preferences,
		TwoFactorEnabled: user.TwoFactorEnabled,
		CreatedAt:        user.CreatedAt,
	}
}

func ToSessionResponse(session *model.Session, currentSessionID string) SessionResponse {
	return SessionResponse{
		SessionID:      session.SessionID,
		DisplayName:    session.DisplayName,
		DeviceInfo:     session.DeviceInfo,
		IPAddress:      session.IPAddress,
		Current:        session.SessionID == currentSessionID,
		CreatedAt:      session.CreatedAt,
		LastActivityAt: session.LastActivityAt,
		ExpiresAt:      session.ExpiresAt,
	}
}

func ToSessionResponses(sessions []*model.Session, currentSessionID string) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = ToSessionResponse(session, currentSessionID)
	}
	return responses
}

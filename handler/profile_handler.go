package handler

import (
	"notewell/dto"
	"notewell/usecase"
	"notewell/utils"

	"github.com/gin-gonic/gin"
)

func GetProfileHandler(c *gin.Context, usersService *usecase.UsersService) {
	user, err := usersService.GetProfile(c, c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}

func UpdateProfileHandler(c *gin.Context, usersService *usecase.UsersService) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := usersService.UpdateProfile(c, c.GetString("user_id"), usecase.UpdateProfileInput{
		Name:        req.Name,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
		Preferences: req.Preferences,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}

func ChangePasswordHandler(c *gin.Context, usersService *usecase.UsersService) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	err := usersService.ChangePassword(c, c.GetString("user_id"),
		req.CurrentPassword, req.NewPassword)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Password changed successfully"})
}

func ChangeEmailHandler(c *gin.Context, usersService *usecase.UsersService) {
	var req dto.ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	err := usersService.ChangeEmail(c, c.GetString("user_id"), req.Password, req.NewEmail)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Email changed successfully"})
}

func DeleteAccountHandler(c *gin.Context, usersService *usecase.UsersService) {
	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := usersService.DeleteAccount(c, c.GetString("user_id"), req.Password); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Account deleted"})
}

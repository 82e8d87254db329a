package handler

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"notewell/dto"
	"notewell/repository"
	"notewell/usecase"
	"notewell/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
	"go.mongodb.org/mongo-driver/bson"
)

// Generate2FASecretHandler mints a TOTP secret and a QR code for the
// authenticator app. Nothing is stored until the code is verified.
func Generate2FASecretHandler(c *gin.Context, usersService *usecase.UsersService) {
	user, err := usersService.GetProfile(c, c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if user.TwoFactorEnabled {
		utils.BadRequest(c, "Two-factor authentication is already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Notewell",
		AccountName: user.Email,
	})
	if err != nil {
		utils.InternalError(c, "Failed to generate secret")
		return
	}

	img, err := key.Image(200, 200)
	if err != nil {
		utils.InternalError(c, "Failed to generate QR code")
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		utils.InternalError(c, "Failed to encode QR code")
		return
	}

	utils.Success(c, gin.H{
		"secret":  key.Secret(),
		"qr_code": "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

// Enable2FAHandler verifies the code against the pending secret and
// turns two-factor on.
func Enable2FAHandler(c *gin.Context, usersService *usecase.UsersService, usersRepo *repository.UsersRepo) {
	var req struct {
		Secret string `json:"secret" binding:"required"`
		Code   string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")
	user, err := usersService.GetProfile(c, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if user.TwoFactorEnabled {
		utils.BadRequest(c, "Two-factor authentication is already enabled")
		return
	}

	if !totp.Validate(req.Code, req.Secret) {
		utils.Unauthorized(c, "Invalid two-factor code")
		return
	}

	err = usersRepo.UpdateUser(c, userID, bson.M{
		"two_factor_secret":  req.Secret,
		"two_factor_enabled": true,
	})
	if err != nil {
		utils.InternalError(c, "Failed to enable two-factor authentication")
		return
	}

	utils.Success(c, gin.H{"message": "Two-factor authentication enabled"})
}

// Disable2FAHandler turns two-factor off after verifying a current code.
func Disable2FAHandler(c *gin.Context, usersService *usecase.UsersService, usersRepo *repository.UsersRepo) {
	var req dto.TwoFactorVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")
	user, err := usersService.GetProfile(c, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "Two-factor authentication is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.Unauthorized(c, "Invalid two-factor code")
		return
	}

	err = usersRepo.UpdateUser(c, userID, bson.M{
		"two_factor_secret":  "",
		"two_factor_enabled": false,
	})
	if err != nil {
		utils.InternalError(c, "Failed to disable two-factor authentication")
		return
	}

	utils.Success(c, gin.H{"message": "Two-factor authentication disabled"})
}

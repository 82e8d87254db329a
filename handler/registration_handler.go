package handler

import (
	"notewell/dto"
	"notewell/usecase"
	"notewell/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, usersService *usecase.UsersService) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := usersService.Register(c, usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, dto.ToUserResponse(user))
}

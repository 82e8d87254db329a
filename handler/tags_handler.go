package handler

import (
	"notewell/dto"
	"notewell/usecase"
	"notewell/utils"

	"github.com/gin-gonic/gin"
)

func CreateTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := tagsService.CreateTag(c, c.GetString("user_id"), req.Name, req.Color)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, dto.ToTagResponse(tag))
}

func ListTagsHandler(c *gin.Context, tagsService *usecase.TagsService) {
	tags, err := tagsService.ListTags(c, c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToTagResponses(tags))
}

func UpdateTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := tagsService.UpdateTag(c, c.Param("id"), c.GetString("user_id"), req.Name, req.Color)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToTagResponse(tag))
}

func DeleteTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	if err := tagsService.DeleteTag(c, c.Param("id"), c.GetString("user_id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Tag deleted"})
}

package handler

import (
	"time"

	"notewell/dto"
	"notewell/model"
	"notewell/usecase"
	"notewell/utils"

	"github.com/gin-gonic/gin"
)

func ShareWithUserHandler(c *gin.Context, sharesService *usecase.SharesService) {
	var req dto.ShareWithUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	share, err := sharesService.ShareWithUser(c, c.GetString("user_id"), usecase.ShareWithUserInput{
		NoteID:     req.NoteID,
		Email:      req.Email,
		Permission: model.SharePermission(req.Permission),
		ExpiresAt:  req.ExpiresAt,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, dto.ToShareResponse(share))
}

func CreateShareLinkHandler(c *gin.Context, sharesService *usecase.SharesService) {
	var req dto.CreateShareLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	link, err := sharesService.CreateShareLink(c, c.GetString("user_id"), req.NoteID,
		model.SharePermission(req.Permission), req.ExpiresAt)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, dto.ShareLinkResponse{
		Share: dto.ToShareResponse(link.Share),
		URL:   link.URL,
	})
}

// GetPublicShareHandler is the unauthenticated fetch by share token.
func GetPublicShareHandler(c *gin.Context, sharesService *usecase.SharesService) {
	detail, err := sharesService.GetSharedByToken(c, c.Param("token"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToSharedNoteResponse(detail))
}

func ListSentSharesHandler(c *gin.Context, sharesService *usecase.SharesService) {
	shares, err := sharesService.ListSentShares(c, c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToShareResponses(shares))
}

func ListReceivedSharesHandler(c *gin.Context, sharesService *usecase.SharesService) {
	details, err := sharesService.ListReceivedShares(c, c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToSharedNoteResponses(details))
}

func UpdateShareHandler(c *gin.Context, sharesService *usecase.SharesService) {
	var req dto.UpdateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	var permission *model.SharePermission
	if req.Permission != nil {
		p := model.SharePermission(*req.Permission)
		permission = &p
	}
	var expiresAt *time.Time
	if req.ExpiresAt != nil {
		expiresAt = req.ExpiresAt
	}

	share, err := sharesService.UpdateShare(c, c.Param("id"), c.GetString("user_id"),
		permission, expiresAt, req.ClearExpiry)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToShareResponse(share))
}

func RevokeShareHandler(c *gin.Context, sharesService *usecase.SharesService) {
	if err := sharesService.RevokeShare(c, c.Param("id"), c.GetString("user_id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Share revoked"})
}

package handler

import (
	"notewell/dto"
	"notewell/usecase"
	"notewell/utils"

	"github.com/gin-gonic/gin"
)

func CreateFolderHandler(c *gin.Context, foldersService *usecase.FoldersService) {
	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	folder, err := foldersService.CreateFolder(c, c.GetString("user_id"), usecase.CreateFolderInput{
		Name:     req.Name,
		ParentID: req.ParentID,
		Icon:     req.Icon,
		Color:    req.Color,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, dto.ToFolderResponse(folder))
}

func ListFoldersHandler(c *gin.Context, foldersService *usecase.FoldersService) {
	folders, err := foldersService.ListFolders(c, c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToFolderResponses(folders))
}

func GetFolderTreeHandler(c *gin.Context, foldersService *usecase.FoldersService) {
	tree, err := foldersService.GetFolderTree(c, c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToFolderTree(tree))
}

func UpdateFolderHandler(c *gin.Context, foldersService *usecase.FoldersService) {
	var req dto.UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	folder, err := foldersService.UpdateFolder(c, c.Param("id"), c.GetString("user_id"),
		req.Name, req.ParentID, req.Icon, req.Color)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToFolderResponse(folder))
}

// DeleteFolderHandler deletes a folder; notes inside move to the
// ?reassign_to target, or out of any folder when it is absent.
func DeleteFolderHandler(c *gin.Context, foldersService *usecase.FoldersService) {
	err := foldersService.DeleteFolder(c, c.Param("id"), c.GetString("user_id"),
		c.Query("reassign_to"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Folder deleted"})
}

func ReorderFoldersHandler(c *gin.Context, foldersService *usecase.FoldersService) {
	var req dto.ReorderFoldersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	updates := make([]usecase.FolderOrderUpdate, len(req.Folders))
	for i, entry := range req.Folders {
		updates[i] = usecase.FolderOrderUpdate{FolderID: entry.FolderID, Order: entry.Order}
	}

	applied, err := foldersService.ReorderFolders(c, c.GetString("user_id"), updates)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"updated": applied})
}

package handler

import (
	"strconv"

	"notewell/dto"
	"notewell/model"
	"notewell/repository"
	"notewell/usecase"
	"notewell/utils"

	"github.com/gin-gonic/gin"
)

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	detail, err := notesService.CreateNote(c, c.GetString("user_id"), usecase.CreateNoteInput{
		Title:       req.Title,
		Content:     req.Content,
		ContentType: model.ContentType(req.ContentType),
		Color:       req.Color,
		Tags:        req.Tags,
		FolderID:    req.FolderID,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, dto.ToNoteDetailResponse(detail))
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	detail, err := notesService.GetNote(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteDetailResponse(detail))
}

// ListNotesHandler serves the filtered, sorted, paginated note listing.
// Malformed pagination degrades to defaults rather than erroring.
func ListNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	query := repository.NoteQuery{
		UserID:       c.GetString("user_id"),
		Search:       c.Query("q"),
		TagID:        c.Query("tag"),
		Color:        c.Query("color"),
		FavoriteOnly: c.Query("favorite") == "true",
		View:         repository.NoteView(c.Query("view")),
		SortBy:       c.Query("sort_by"),
		SortOrder:    c.Query("sort_order"),
		Page:         page,
		PageSize:     pageSize,
	}

	switch folder := c.Query("folder"); folder {
	case "":
	case "none":
		query.FolderNone = true
	default:
		query.FolderID = folder
	}

	result, err := notesService.ListNotes(c, query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.NewNotesPageResponse(result))
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	input := usecase.UpdateNoteInput{
		Title:    req.Title,
		Content:  req.Content,
		Color:    req.Color,
		Tags:     req.Tags,
		FolderID: req.FolderID,
		Order:    req.Order,
	}
	if req.ContentType != nil {
		contentType := model.ContentType(*req.ContentType)
		input.ContentType = &contentType
	}

	detail, err := notesService.UpdateNote(c, c.Param("id"), c.GetString("user_id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteDetailResponse(detail))
}

// DeleteNoteHandler trashes a note, or with ?permanent=true deletes it
// outright.
func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if c.Query("permanent") == "true" {
		if err := notesService.HardDelete(c, noteID, userID); err != nil {
			utils.RespondError(c, err)
			return
		}
		utils.Success(c, gin.H{"message": "Note permanently deleted"})
		return
	}

	if err := notesService.SoftDelete(c, noteID, userID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Note moved to trash"})
}

func RestoreNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	note, err := notesService.Restore(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func ToggleArchiveHandler(c *gin.Context, notesService *usecase.NotesService) {
	note, err := notesService.ToggleArchive(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func TogglePinHandler(c *gin.Context, notesService *usecase.NotesService) {
	note, err := notesService.TogglePin(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func ToggleFavoriteHandler(c *gin.Context, notesService *usecase.NotesService) {
	note, err := notesService.ToggleFavorite(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func DuplicateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	note, err := notesService.Duplicate(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, dto.ToNoteResponse(note))
}

func RecordNoteViewHandler(c *gin.Context, notesService *usecase.NotesService) {
	if err := notesService.RecordView(c, c.Param("id"), c.GetString("user_id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "View recorded"})
}

func EmptyTrashHandler(c *gin.Context, notesService *usecase.NotesService) {
	deleted, err := notesService.EmptyTrash(c, c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"deleted": deleted})
}

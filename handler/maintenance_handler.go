package handler

import (
	"crypto/subtle"
	"os"
	"strconv"

	"notewell/usecase"
	"notewell/utils"

	"github.com/gin-gonic/gin"
)

// PurgeTrashHandler is the externally triggered maintenance sweep. It
// is not a user operation: the caller must present the maintenance
// token, and the sweep runs across all owners.
func PurgeTrashHandler(c *gin.Context, notesService *usecase.NotesService) {
	token := os.Getenv("MAINTENANCE_TOKEN")
	if token == "" {
		utils.NotFound(c, "Not found")
		return
	}
	presented := c.GetHeader("X-Maintenance-Token")
	if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
		utils.Forbidden(c, "Invalid maintenance token")
		return
	}

	cutoffDays, _ := strconv.Atoi(c.DefaultQuery("cutoff_days", "30"))

	deleted, err := notesService.PurgeExpiredTrash(c, cutoffDays)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"deleted": deleted})
}

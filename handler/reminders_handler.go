package handler

import (
	"time"

	"notewell/dto"
	"notewell/model"
	"notewell/usecase"
	"notewell/utils"

	"github.com/gin-gonic/gin"
)

func CreateReminderHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	reminder, err := remindersService.CreateReminder(c, c.GetString("user_id"), usecase.CreateReminderInput{
		Title:      req.Title,
		NoteID:     req.NoteID,
		DueAt:      req.DueAt,
		Recurrence: model.RecurrencePattern(req.Recurrence),
		Channels:   req.Channels,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, dto.ToReminderResponse(reminder))
}

func ListRemindersHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	reminders, err := remindersService.ListReminders(c, c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToReminderResponses(reminders))
}

func ListUpcomingRemindersHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	reminders, err := remindersService.ListUpcoming(c, c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToReminderResponses(reminders))
}

func UpdateReminderHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	var recurrence *model.RecurrencePattern
	if req.Recurrence != nil {
		r := model.RecurrencePattern(*req.Recurrence)
		recurrence = &r
	}

	reminder, err := remindersService.UpdateReminder(c, c.Param("id"), c.GetString("user_id"),
		req.Title, req.DueAt, recurrence, req.Channels)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToReminderResponse(reminder))
}

func CompleteReminderHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	reminder, next, err := remindersService.CompleteReminder(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	response := dto.CompleteReminderResponse{Reminder: dto.ToReminderResponse(reminder)}
	if next != nil {
		successor := dto.ToReminderResponse(next)
		response.Next = &successor
	}

	utils.Success(c, response)
}

func SnoozeReminderHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	var req dto.SnoozeReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	reminder, err := remindersService.SnoozeReminder(c, c.Param("id"), c.GetString("user_id"),
		time.Duration(req.Minutes)*time.Minute)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToReminderResponse(reminder))
}

func DeleteReminderHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	if err := remindersService.DeleteReminder(c, c.Param("id"), c.GetString("user_id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Reminder deleted"})
}

package handler

import (
	"dailysync/model"
	"dailysync/usecase"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type EventHandler struct {
	service *usecase.EventService
}

func NewEventHandler(service *usecase.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) GetUserEvents(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	events, err := h.service.GetUserEvents(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, events)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title          string              `json:"title" binding:"required"`
		Description    string              `json:"description"`
		Date           string              `json:"date" binding:"required"`
		StartTime      string              `json:"startTime"`
		EndTime        string              `json:"endTime"`
		Category       model.EventCategory `json:"category"`
		Recurring      bool                `json:"recurring"`
		RecurrenceRule string              `json:"recurrenceRule"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	event := &model.Event{
		Title:          req.Title,
		Description:    req.Description,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Category:       req.Category,
		Recurring:      req.Recurring,
		RecurrenceRule: req.RecurrenceRule,
	}

	id, err := h.service.CreateEvent(c.Request.Context(), userID, event)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, gin.H{"id": id})
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	fields := bson.M{}
	for key, field := range map[string]string{
		"title":          "title",
		"description":    "description",
		"date":           "date",
		"startTime":      "start_time",
		"endTime":        "end_time",
		"category":       "category",
		"recurring":      "recurring",
		"recurrenceRule": "recurrence_rule",
	} {
		if value, exists := req[key]; exists {
			fields[field] = value
		}
	}
	if len(fields) == 0 {
		utils.BadRequest(c, "No updatable fields in request")
		return
	}

	if err := h.service.UpdateEvent(c.Request.Context(), userID, c.Param("id"), fields); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Event updated"})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Event deleted"})
}

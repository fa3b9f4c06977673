package handler

import (
	"errors"
	"io"
	"time"

	"dailysync/model"
	"dailysync/usecase"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type HabitHandler struct {
	service *usecase.HabitService
}

func NewHabitHandler(service *usecase.HabitService) *HabitHandler {
	return &HabitHandler{service: service}
}

func (h *HabitHandler) GetUserHabits(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	habits, err := h.service.GetUserHabits(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, habits)
}

func (h *HabitHandler) CreateHabit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name      string          `json:"name" binding:"required"`
		Icon      model.HabitIcon `json:"icon"`
		Category  string          `json:"category"`
		Frequency model.Frequency `json:"frequency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	habit := &model.Habit{
		Name:      req.Name,
		Icon:      req.Icon,
		Category:  req.Category,
		Frequency: req.Frequency,
	}

	id, err := h.service.CreateHabit(c.Request.Context(), userID, habit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, gin.H{"id": id})
}

// ToggleCompletion marks or unmarks one day. The day defaults to today and
// must be YYYY-MM-DD when given.
func (h *HabitHandler) ToggleCompletion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Date string `json:"date"`
	}
	// an empty body means "toggle today"
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	day := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			utils.BadRequest(c, "Date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	if err := h.service.ToggleCompletion(c.Request.Context(), userID, c.Param("id"), day); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Habit completion toggled"})
}

func (h *HabitHandler) UpdateHabit(c *gin.Context) {
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
		"name":      "name",
		"icon":      "icon",
		"category":  "category",
		"frequency": "frequency",
		"streak":    "streak", // rejected by the service; surfaced as a 400
	} {
		if value, exists := req[key]; exists {
			fields[field] = value
		}
	}
	if len(fields) == 0 {
		utils.BadRequest(c, "No updatable fields in request")
		return
	}

	if err := h.service.UpdateHabit(c.Request.Context(), userID, c.Param("id"), fields); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Habit updated"})
}

func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteHabit(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Habit deleted"})
}

package handler

import (
	"dailysync/model"
	"dailysync/usecase"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type RoutineHandler struct {
	service *usecase.RoutineService
}

func NewRoutineHandler(service *usecase.RoutineService) *RoutineHandler {
	return &RoutineHandler{service: service}
}

func (h *RoutineHandler) GetUserRoutines(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	routines, err := h.service.GetUserRoutines(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, routines)
}

func (h *RoutineHandler) CreateRoutine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name       string            `json:"name" binding:"required"`
		Type       model.RoutineType `json:"type"`
		Activities []model.Activity  `json:"activities"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	routine := &model.Routine{
		Name:       req.Name,
		Type:       req.Type,
		Activities: req.Activities,
	}

	id, err := h.service.CreateRoutine(c.Request.Context(), userID, routine)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, gin.H{"id": id})
}

// CreateFromTemplate builds a stock morning or evening routine.
func (h *RoutineHandler) CreateFromTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Type model.RoutineType `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	id, err := h.service.CreateFromTemplate(c.Request.Context(), userID, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, gin.H{"id": id})
}

func (h *RoutineHandler) UpdateRoutine(c *gin.Context) {
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
		"name": "name",
		"type": "type",
	} {
		if value, exists := req[key]; exists {
			fields[field] = value
		}
	}
	if len(fields) == 0 {
		utils.BadRequest(c, "No updatable fields in request")
		return
	}

	if err := h.service.UpdateRoutine(c.Request.Context(), userID, c.Param("id"), fields); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Routine updated"})
}

func (h *RoutineHandler) SetActive(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.SetActive(c.Request.Context(), userID, c.Param("id"), *req.Active); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Routine updated"})
}

func (h *RoutineHandler) AddActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title    string          `json:"title" binding:"required"`
		Duration int             `json:"duration"`
		Icon     model.HabitIcon `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	activity := model.Activity{
		Title:    req.Title,
		Duration: req.Duration,
		Icon:     req.Icon,
	}

	if err := h.service.AddActivity(c.Request.Context(), userID, c.Param("id"), activity); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, gin.H{"message": "Activity added"})
}

func (h *RoutineHandler) ToggleActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.ToggleActivity(c.Request.Context(), userID, c.Param("id"), c.Param("activityId")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Activity toggled"})
}

func (h *RoutineHandler) RemoveActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.RemoveActivity(c.Request.Context(), userID, c.Param("id"), c.Param("activityId")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Activity removed"})
}

func (h *RoutineHandler) DeleteRoutine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRoutine(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Routine deleted"})
}

package handler

import (
	"dailysync/model"
	"dailysync/usecase"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type GoalHandler struct {
	service *usecase.GoalService
}

func NewGoalHandler(service *usecase.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

func (h *GoalHandler) GetUserGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goals, err := h.service.GetUserGoals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, goals)
}

func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title       string             `json:"title" binding:"required"`
		Description string             `json:"description"`
		Category    model.GoalCategory `json:"category"`
		TargetDate  string             `json:"targetDate"`
		Milestones  []model.Milestone  `json:"milestones"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	goal := &model.Goal{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetDate:  req.TargetDate,
		Milestones:  req.Milestones,
	}

	id, err := h.service.CreateGoal(c.Request.Context(), userID, goal)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, gin.H{"id": id})
}

func (h *GoalHandler) UpdateGoal(c *gin.Context) {
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
		"title":       "title",
		"description": "description",
		"category":    "category",
		"targetDate":  "target_date",
		"progress":    "progress", // rejected by the service; surfaced as a 400
	} {
		if value, exists := req[key]; exists {
			fields[field] = value
		}
	}
	if len(fields) == 0 {
		utils.BadRequest(c, "No updatable fields in request")
		return
	}

	if err := h.service.UpdateGoal(c.Request.Context(), userID, c.Param("id"), fields); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Goal updated"})
}

func (h *GoalHandler) AddMilestone(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.AddMilestone(c.Request.Context(), userID, c.Param("id"), req.Title); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, gin.H{"message": "Milestone added"})
}

func (h *GoalHandler) ToggleMilestone(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.ToggleMilestone(c.Request.Context(), userID, c.Param("id"), c.Param("milestoneId")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Milestone toggled"})
}

func (h *GoalHandler) DeleteMilestone(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteMilestone(c.Request.Context(), userID, c.Param("id"), c.Param("milestoneId")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Milestone deleted"})
}

func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteGoal(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Goal deleted"})
}

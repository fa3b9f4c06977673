package handler

import (
	"dailysync/model"
	"dailysync/usecase"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service *usecase.ProfileService
}

func NewProfileHandler(service *usecase.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, profile)
}

// SaveProfile replaces the whole profile document, matching the
// single-object shape the client keeps locally.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		DisplayName string `json:"displayName"`
		Email       string `json:"email" binding:"omitempty,email"`
		Theme       string `json:"theme"`
		AccentColor string `json:"accentColor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	profile := &model.Profile{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Theme:       req.Theme,
		AccentColor: req.AccentColor,
	}

	if err := h.service.SaveProfile(c.Request.Context(), userID, profile); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, profile)
}

package handler

import (
	"dailysync/model"
	"dailysync/usecase"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type NoteHandler struct {
	service *usecase.NoteService
}

func NewNoteHandler(service *usecase.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

func (h *NoteHandler) GetUserNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notes, err := h.service.GetUserNotes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, notes)
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title   string          `json:"title" binding:"required"`
		Content string          `json:"content" binding:"required"`
		Color   model.NoteColor `json:"color"`
		Folder  string          `json:"folder"`
		Pinned  bool            `json:"pinned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	note := &model.Note{
		Title:   req.Title,
		Content: req.Content,
		Color:   req.Color,
		Folder:  req.Folder,
		Pinned:  req.Pinned,
	}

	id, err := h.service.CreateNote(c.Request.Context(), userID, note)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, gin.H{"id": id})
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
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
		"title":   "title",
		"content": "content",
		"color":   "color",
		"folder":  "folder",
		"pinned":  "pinned",
	} {
		if value, exists := req[key]; exists {
			fields[field] = value
		}
	}
	if len(fields) == 0 {
		utils.BadRequest(c, "No updatable fields in request")
		return
	}

	if err := h.service.UpdateNote(c.Request.Context(), userID, c.Param("id"), fields); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Note updated"})
}

func (h *NoteHandler) TogglePin(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.TogglePin(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Note pin toggled"})
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteNote(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Note deleted"})
}

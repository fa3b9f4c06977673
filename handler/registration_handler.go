package handler

import (
	"errors"
	"time"

	"dailysync/model"
	"dailysync/repository"
	"dailysync/services"
	"dailysync/subscription"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users    *repository.UserRepo
	sessions *repository.SessionRepo
	hub      *subscription.Hub
}

func NewAuthHandler(users *repository.UserRepo, sessions *repository.SessionRepo, hub *subscription.Hub) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, hub: hub}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3,max=30"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if !utils.ValidatePassword(req.Password) {
		utils.TrackAuthAttempt("failure", "weak_password")
		utils.BadRequest(c, "Password must be at least 6 characters and include a number and a special character")
		return
	}

	existing, err := h.users.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		utils.TrackError("auth", "user_lookup")
		utils.InternalError(c, "Failed to check existing users")
		return
	}
	if existing != nil {
		utils.TrackAuthAttempt("failure", "email_taken")
		utils.Conflict(c, "Email already registered")
		return
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		utils.TrackError("auth", "password_hash")
		utils.InternalError(c, "Failed to create user")
		return
	}

	user := &model.User{
		UserID:       utils.GenerateID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := h.users.AddUser(c.Request.Context(), user); err != nil {
		utils.TrackError("auth", "user_insert")
		utils.InternalError(c, "Failed to create user")
		return
	}

	utils.TrackAuthAttempt("success", "registration")
	utils.Created(c, gin.H{
		"user": gin.H{
			"id":       user.UserID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

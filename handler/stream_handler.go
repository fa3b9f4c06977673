package handler

import (
	"io"
	"net/http"
	"slices"

	"dailysync/model"
	"dailysync/subscription"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
)

// StreamHandler serves live collection snapshots over server-sent events.
// Each event carries the full serialized collection, never a diff, so
// clients can replace their copy wholesale on every message.
type StreamHandler struct {
	hub *subscription.Hub
}

func NewStreamHandler(hub *subscription.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// GetSnapshot returns the current snapshot without subscribing.
func (h *StreamHandler) GetSnapshot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	collection := c.Param("collection")
	if !slices.Contains(model.EntityCollections, collection) {
		utils.BadRequest(c, "Unknown collection")
		return
	}

	snapshot, err := h.hub.Snapshot(c.Request.Context(), userID, collection)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", snapshot)
}

// StreamCollection subscribes the caller to a collection's snapshot feed.
// The first event is delivered immediately.
func (h *StreamHandler) StreamCollection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	collection := c.Param("collection")
	if !slices.Contains(model.EntityCollections, collection) {
		utils.BadRequest(c, "Unknown collection")
		return
	}

	controller, err := h.hub.Controller(c.Request.Context(), userID, collection)
	if err != nil {
		respondError(c, err)
		return
	}

	updates, cancel := controller.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, open := <-updates:
			if !open {
				return false
			}
			c.SSEvent("snapshot", string(snapshot))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

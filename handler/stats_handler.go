package handler

import (
	"dailysync/usecase"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service *usecase.SummaryService
}

func NewStatsHandler(service *usecase.SummaryService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetDashboardSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := h.service.GetDashboardSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, summary)
}

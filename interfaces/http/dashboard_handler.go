package http

import (
	"github.com/gin-gonic/gin"

	"vidtube/domain/apperror"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"
)

type IDashboardHandler interface {
	Stats(c *gin.Context)
	Videos(c *gin.Context)
}

type DashboardHandler struct {
	dashboardUsecase usecase.IDashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.IDashboardUsecase) IDashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	stats, err := h.dashboardUsecase.GetChannelStats(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats, "channel stats fetched successfully")
}

func (h *DashboardHandler) Videos(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	videos, err := h.dashboardUsecase.GetChannelVideos(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, videos, "channel videos fetched successfully")
}

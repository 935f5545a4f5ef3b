package http

import (
	"github.com/gin-gonic/gin"

	"vidtube/domain/apperror"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"
)

type ISubscriptionHandler interface {
	Toggle(c *gin.Context)
	ListSubscribers(c *gin.Context)
	ListSubscribedChannels(c *gin.Context)
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	subscribed, err := h.subscriptionUsecase.Toggle(c.Request.Context(), c.Param("channelId"), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"subscribed": subscribed}, "subscription toggled")
}

func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.subscriptionUsecase.ListSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, subscribers, "subscribers fetched successfully")
}

func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	channels, err := h.subscriptionUsecase.ListSubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, channels, "subscribed channels fetched successfully")
}

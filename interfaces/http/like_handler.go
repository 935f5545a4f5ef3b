package http

import (
	"github.com/gin-gonic/gin"

	"vidtube/domain/apperror"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"
)

type ILikeHandler interface {
	ToggleVideoLike(c *gin.Context)
	ToggleCommentLike(c *gin.Context)
	ToggleTweetLike(c *gin.Context)
	ListLikedVideos(c *gin.Context)
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	liked, err := h.likeUsecase.ToggleVideoLike(c.Request.Context(), c.Param("videoId"), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"isLiked": liked}, "video like toggled")
}

func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	liked, err := h.likeUsecase.ToggleCommentLike(c.Request.Context(), c.Param("commentId"), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"isLiked": liked}, "comment like toggled")
}

func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	liked, err := h.likeUsecase.ToggleTweetLike(c.Request.Context(), c.Param("tweetId"), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"isLiked": liked}, "tweet like toggled")
}

func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	videos, err := h.likeUsecase.ListLikedVideos(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, videos, "liked videos fetched successfully")
}

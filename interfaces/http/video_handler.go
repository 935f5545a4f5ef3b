package http

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"
)

type IVideoHandler interface {
	List(c *gin.Context)
	Publish(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	TogglePublish(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (h *VideoHandler) List(c *gin.Context) {
	var query dto.VideoListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, apperror.BadRequest("invalid query parameters"))
		return
	}
	videos, err := h.videoUsecase.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, videos, "videos fetched successfully")
}

func (h *VideoHandler) Publish(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperror.BadRequest("invalid video form"))
		return
	}

	videoPath, err := formFile(c, "videoFile")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeTemp(videoPath)
	thumbnailPath, err := formFile(c, "thumbnail")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeTemp(thumbnailPath)

	video, err := h.videoUsecase.Publish(c.Request.Context(), principal.UserID, req, videoPath, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, video, "video published successfully")
}

func (h *VideoHandler) Get(c *gin.Context) {
	viewerID := bson.ObjectID{}
	if principal, ok := middleware.CurrentUser(c); ok {
		viewerID = principal.UserID
	}
	detail, err := h.videoUsecase.GetDetail(c.Request.Context(), c.Param("videoId"), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, detail, "video fetched successfully")
}

func (h *VideoHandler) Update(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	var req dto.UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperror.BadRequest("invalid video form"))
		return
	}
	thumbnailPath, err := formFile(c, "thumbnail")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeTemp(thumbnailPath)

	video, err := h.videoUsecase.Update(c.Request.Context(), c.Param("videoId"), principal.UserID, req, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, video, "video updated successfully")
}

func (h *VideoHandler) Delete(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	if err := h.videoUsecase.Delete(c.Request.Context(), c.Param("videoId"), principal.UserID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	video, err := h.videoUsecase.TogglePublish(c.Request.Context(), c.Param("videoId"), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, video, "publish status toggled successfully")
}

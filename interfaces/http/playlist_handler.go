package http

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/apperror"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"
)

type IPlaylistHandler interface {
	Create(c *gin.Context)
	ListByUser(c *gin.Context)
	Get(c *gin.Context)
	AddVideo(c *gin.Context)
	RemoveVideo(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

type playlistBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *PlaylistHandler) Create(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	var body playlistBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperror.BadRequest("invalid payload"))
		return
	}
	playlist, err := h.playlistUsecase.Create(c.Request.Context(), principal.UserID, body.Name, body.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, playlist, "playlist created successfully")
}

func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	viewerID := bson.ObjectID{}
	if principal, ok := middleware.CurrentUser(c); ok {
		viewerID = principal.UserID
	}
	playlists, err := h.playlistUsecase.GetUserPlaylists(c.Request.Context(), c.Param("userId"), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, playlists, "playlists fetched successfully")
}

func (h *PlaylistHandler) Get(c *gin.Context) {
	viewerID := bson.ObjectID{}
	if principal, ok := middleware.CurrentUser(c); ok {
		viewerID = principal.UserID
	}
	playlist, err := h.playlistUsecase.GetByID(c.Request.Context(), c.Param("playlistId"), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, playlist, "playlist fetched successfully")
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	playlist, err := h.playlistUsecase.AddVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, playlist, "video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	playlist, err := h.playlistUsecase.RemoveVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, playlist, "video removed from playlist")
}

func (h *PlaylistHandler) Update(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	var body playlistBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperror.BadRequest("invalid payload"))
		return
	}
	playlist, err := h.playlistUsecase.Update(c.Request.Context(), c.Param("playlistId"), principal.UserID, body.Name, body.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, playlist, "playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	if err := h.playlistUsecase.Delete(c.Request.Context(), c.Param("playlistId"), principal.UserID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "playlist deleted successfully")
}

package http

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"
)

type ICommentHandler interface {
	List(c *gin.Context)
	Add(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

type commentBody struct {
	Content string `json:"content"`
}

func (h *CommentHandler) List(c *gin.Context) {
	viewerID := bson.ObjectID{}
	if principal, ok := middleware.CurrentUser(c); ok {
		viewerID = principal.UserID
	}
	var query dto.CommentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, apperror.BadRequest("invalid query parameters"))
		return
	}
	page, err := h.commentUsecase.List(c.Request.Context(), c.Param("videoId"), viewerID, query)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, page, "comments fetched successfully")
}

func (h *CommentHandler) Add(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	var body commentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperror.BadRequest("invalid payload"))
		return
	}
	comment, err := h.commentUsecase.Add(c.Request.Context(), c.Param("videoId"), principal.UserID, body.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, comment, "comment added successfully")
}

func (h *CommentHandler) Update(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	var body commentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperror.BadRequest("invalid payload"))
		return
	}
	comment, err := h.commentUsecase.Update(c.Request.Context(), c.Param("commentId"), principal.UserID, body.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, comment, "comment updated successfully")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	if err := h.commentUsecase.Delete(c.Request.Context(), c.Param("commentId"), principal.UserID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "comment deleted successfully")
}

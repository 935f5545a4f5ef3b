package http

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/apperror"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"
)

type ITweetHandler interface {
	Create(c *gin.Context)
	ListByChannel(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type TweetHandler struct {
	tweetUsecase usecase.ITweetUsecase
}

func NewTweetHandler(tweetUsecase usecase.ITweetUsecase) ITweetHandler {
	return &TweetHandler{tweetUsecase: tweetUsecase}
}

type tweetBody struct {
	Content string `json:"content"`
}

func (h *TweetHandler) Create(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	var body tweetBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperror.BadRequest("invalid payload"))
		return
	}
	tweet, err := h.tweetUsecase.Create(c.Request.Context(), principal.UserID, body.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, tweet, "tweet created successfully")
}

func (h *TweetHandler) ListByChannel(c *gin.Context) {
	viewerID := bson.ObjectID{}
	if principal, ok := middleware.CurrentUser(c); ok {
		viewerID = principal.UserID
	}
	tweets, err := h.tweetUsecase.ListByChannel(c.Request.Context(), c.Param("userId"), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, tweets, "tweets fetched successfully")
}

func (h *TweetHandler) Update(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	var body tweetBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperror.BadRequest("invalid payload"))
		return
	}
	tweet, err := h.tweetUsecase.Update(c.Request.Context(), c.Param("tweetId"), principal.UserID, body.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, tweet, "tweet updated successfully")
}

func (h *TweetHandler) Delete(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	if err := h.tweetUsecase.Delete(c.Request.Context(), c.Param("tweetId"), principal.UserID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "tweet deleted successfully")
}

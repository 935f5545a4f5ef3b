package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"
)

type IUserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Refresh(c *gin.Context)
	ChangePassword(c *gin.Context)
	Me(c *gin.Context)
	UpdateAccount(c *gin.Context)
	UpdateAvatar(c *gin.Context)
	UpdateCoverImage(c *gin.Context)
	WatchHistory(c *gin.Context)
	ChannelProfile(c *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperror.BadRequest("invalid registration form"))
		return
	}

	avatarPath, err := formFile(c, "avatar")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeTemp(avatarPath)
	coverPath, err := formFile(c, "coverImage")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeTemp(coverPath)

	user, err := h.userUsecase.Register(c.Request.Context(), req, avatarPath, coverPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, user, "user registered successfully")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.BadRequest("invalid login payload"))
		return
	}

	result, err := h.userUsecase.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	setAuthCookies(c, result.AccessToken, result.RefreshToken)
	respondOK(c, result, "user logged in successfully")
}

func (h *UserHandler) Logout(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	if err := h.userUsecase.Logout(c.Request.Context(), principal.UserID); err != nil {
		respondError(c, err)
		return
	}
	clearAuthCookies(c)
	respondOK(c, nil, "user logged out successfully")
}

// Refresh accepts the refresh token from the cookie or the JSON body.
func (h *UserHandler) Refresh(c *gin.Context) {
	token, _ := c.Cookie("refreshToken")
	if token == "" {
		var req dto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}

	pair, err := h.userUsecase.Refresh(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	setAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	respondOK(c, pair, "access token refreshed")
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.BadRequest("invalid payload"))
		return
	}
	if err := h.userUsecase.ChangePassword(c.Request.Context(), principal.UserID, req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "password changed successfully")
}

func (h *UserHandler) Me(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	c.JSON(http.StatusOK, dto.NewResponse(http.StatusOK, gin.H{
		"_id":      principal.UserID,
		"username": principal.Username,
		"email":    principal.Email,
		"fullName": principal.FullName,
	}, "current user fetched successfully"))
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.BadRequest("invalid payload"))
		return
	}
	user, err := h.userUsecase.UpdateAccount(c.Request.Context(), principal.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user, "account updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	avatarPath, err := formFile(c, "avatar")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeTemp(avatarPath)

	user, err := h.userUsecase.UpdateAvatar(c.Request.Context(), principal.UserID, avatarPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user, "avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	coverPath, err := formFile(c, "coverImage")
	if err != nil {
		respondError(c, err)
		return
	}
	defer removeTemp(coverPath)

	user, err := h.userUsecase.UpdateCoverImage(c.Request.Context(), principal.UserID, coverPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user, "cover image updated successfully")
}

func (h *UserHandler) WatchHistory(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	history, err := h.userUsecase.GetWatchHistory(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, history, "watch history fetched successfully")
}

func (h *UserHandler) ChannelProfile(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperror.Unauthorized("unauthorized request"))
		return
	}
	profile, err := h.userUsecase.GetChannelProfile(c.Request.Context(), c.Param("username"), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, profile, "channel profile fetched successfully")
}

package http

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/infrastructure/configuration"
	"vidtube/infrastructure/logger"
)

func respondOK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, dto.NewResponse(http.StatusOK, data, message))
}

func respondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, dto.NewResponse(http.StatusCreated, data, message))
}

// respondError maps any error onto the envelope through the apperror
// taxonomy. Unclassified errors come out as a generic 500.
func respondError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.GetLogger().WithField("error", err).Error("request failed")
	}
	c.JSON(appErr.StatusCode, dto.NewErrorResponse(appErr))
}

func setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	secure := configuration.C.Auth.SecureCookies
	c.SetCookie("accessToken", accessToken, 0, "/", "", secure, true)
	c.SetCookie("refreshToken", refreshToken, 0, "/", "", secure, true)
}

func clearAuthCookies(c *gin.Context) {
	secure := configuration.C.Auth.SecureCookies
	c.SetCookie("accessToken", "", -1, "/", "", secure, true)
	c.SetCookie("refreshToken", "", -1, "/", "", secure, true)
}

// saveUpload spools a multipart file into the temp directory and returns the
// local path. Callers remove the file once the media host has it.
func saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := configuration.C.App.TempDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

// formFile returns the local path of a spooled upload, or "" when the field
// is absent.
func formFile(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	return saveUpload(c, file)
}

func removeTemp(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed to remove temp upload")
	}
}

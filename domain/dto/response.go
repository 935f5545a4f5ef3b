package dto

import "vidtube/domain/apperror"

// Response is the envelope every endpoint answers with. The HTTP status code
// is mirrored in the body for non-HTTP-aware clients.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Errors     []string    `json:"errors,omitempty"`
}

func NewResponse(statusCode int, data interface{}, message string) Response {
	return Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

func NewErrorResponse(err *apperror.AppError) Response {
	return Response{
		StatusCode: err.StatusCode,
		Data:       nil,
		Message:    err.Message,
		Success:    false,
		Errors:     err.Errors,
	}
}

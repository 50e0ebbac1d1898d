package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/outfit-genie/pkg/errors"
)

const internalErrorMessage = "Internal server error"

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    apperrors.CodeInternal,
		Message: internalErrorMessage,
		Err:     err,
	}
}

// errorBody renders the failure envelope. detail carries the underlying
// cause and is only filled when exposeDetail is set.
func errorBody(httpErr *HTTPError, exposeDetail bool) gin.H {
	message := httpErr.Message
	if message == "" {
		message = http.StatusText(httpErr.Status)
	}
	errInfo := gin.H{"code": httpErr.Code}
	if exposeDetail && httpErr.Err != nil {
		errInfo["detail"] = httpErr.Err.Error()
	}
	return gin.H{
		"success": false,
		"message": message,
		"error":   errInfo,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

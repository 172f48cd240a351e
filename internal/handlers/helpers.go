package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/logger"
)

// ErrorResponse is the wire shape for all error responses. Message carries
// the underlying failure detail on server errors, for diagnostics only.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// parseUserIDParam parses the numeric :userId path parameter.
func parseUserIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrValidation, "User id must be a number")
	}
	return id, nil
}

// parseFlexibleTime parses an RFC3339 timestamp or a bare YYYY-MM-DD date.
func parseFlexibleTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected RFC3339 or YYYY-MM-DD", value)
	}
	return t, nil
}

// respondWithError writes a consistent JSON error response. If the error is
// an *AppError it uses the error's status code and message, forwarding the
// internal failure detail on 5xx responses. Otherwise it logs the unexpected
// error and returns a generic server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		resp := ErrorResponse{Error: appErr.Message}
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
			if appErr.StatusCode >= http.StatusInternalServerError {
				resp.Message = appErr.Internal.Error()
			}
		}
		c.JSON(appErr.StatusCode, resp)
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Error:   apperrors.ErrInternalServer.Message,
		Message: err.Error(),
	})
}

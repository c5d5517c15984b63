package httpx

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"learnit-service/internal/application/common"
)

// Response is the envelope of every error reply. Success replies are
// echo.Map values that also carry "success".
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func statusFor(kind common.Kind) int {
	switch kind {
	case common.KindValidation, common.KindNotFound:
		return http.StatusBadRequest
	case common.KindNotOwned, common.KindMissingCredential:
		return http.StatusUnauthorized
	case common.KindInvalidCredential:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func sendJSONResponse(c echo.Context, body echo.Map) error {
	body["success"] = true
	return c.JSON(http.StatusOK, body)
}

// sendJSONError renders err without leaking its cause. Internal errors are
// logged with full detail.
func sendJSONError(c echo.Context, log logrus.FieldLogger, err error) error {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		appErr = common.Internal(err)
	}

	if appErr.Kind == common.KindInternal {
		requestLogger(c, log).WithError(appErr.Unwrap()).Error("request failed")
	}

	return c.JSON(statusFor(appErr.Kind), Response{
		Success: false,
		Message: appErr.Message,
	})
}

// errorHandler renders errors that escape handlers, mostly echo's own
// (unknown route, wrong method, oversized body), in the same envelope.
func errorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			_ = sendJSONError(c, log, err)
			return
		}

		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok && m != "" {
			message = m
		}
		if he.Code >= http.StatusInternalServerError {
			requestLogger(c, log).WithError(err).Error("request failed")
			message = common.MsgInternal
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(he.Code)
			return
		}
		_ = c.JSON(he.Code, Response{Success: false, Message: message})
	}
}

func requestLogger(c echo.Context, log logrus.FieldLogger) logrus.FieldLogger {
	return log.WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
}

package handler

import (
	"net/http"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

var logger = log.WithField("component", "handler")

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	entry := logger.WithFields(log.Fields{
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		"method":     c.Request().Method,
		"path":       c.Path(),
	})

	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			entry.WithError(err).Error("request failed")
		} else {
			//入力エラーはシステム障害ではない
			entry.WithField("status", he.Status).Debug(he.Message)
		}
		return c.JSON(he.Status, ErrorResponse{Error: he.Message, Fields: he.Fields})
	}

	//500
	entry.WithError(err).Error("unexpected error")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found."})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

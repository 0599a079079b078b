package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"jailoo/internal/application/usecase/abstraction"
	"jailoo/internal/domain/dto"
	"jailoo/internal/presentation"
)

type GetVideoHandler struct {
	getter    abstraction.Getter
	publicURL string
	bucket    string
}

func NewGetVideoHandler(getter abstraction.Getter, publicURL, bucket string) *GetVideoHandler {
	return &GetVideoHandler{
		getter:    getter,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		bucket:    bucket,
	}
}

// Handle handles GET /media/:object requests by redirecting to the blob's
// storage URL.
func (h *GetVideoHandler) Handle(c echo.Context) error {
	object := c.Param(presentation.ObjectParam)
	if object == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "missing video object name"})
	}

	if _, err := h.getter.GetByVideoFile(c.Request().Context(), object); err != nil {
		return c.JSON(http.StatusNotFound, dto.ErrorBody{Error: err.Error()})
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("%s/%s/%s", h.publicURL, h.bucket, object))
}

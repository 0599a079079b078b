package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jailoo/internal/application/usecase/abstraction"
	"jailoo/internal/domain/dto"
	"jailoo/pkg/logger"
)

type UpdatePostHandler struct {
	updater abstraction.Updater
}

func NewUpdatePostHandler(updater abstraction.Updater) *UpdatePostHandler {
	return &UpdatePostHandler{updater: updater}
}

// Handle handles POST /api/admin/update-post requests. The request body
// carries text/metadata only; video_file is not an accepted field.
func (h *UpdatePostHandler) Handle(c echo.Context) error {
	var req dto.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "invalid json body"})
	}

	post, status, err := h.updater.Update(c.Request().Context(), req)
	if err != nil {
		if status >= http.StatusInternalServerError {
			logger.Error("update post failed", "post_id", req.ID, "error", err)
		}

		return c.JSON(status, dto.ErrorBody{Error: err.Error()})
	}

	return c.JSON(status, post)
}

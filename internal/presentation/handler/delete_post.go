package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jailoo/internal/application/usecase/abstraction"
	"jailoo/internal/domain/dto"
	"jailoo/pkg/logger"
)

type DeletePostHandler struct {
	deleter abstraction.Deleter
}

func NewDeletePostHandler(deleter abstraction.Deleter) *DeletePostHandler {
	return &DeletePostHandler{deleter: deleter}
}

// Handle handles POST /api/admin/delete-post requests.
func (h *DeletePostHandler) Handle(c echo.Context) error {
	var req dto.DeletePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "invalid json body"})
	}

	status, err := h.deleter.Delete(c.Request().Context(), req.ID)
	if err != nil {
		if status >= http.StatusInternalServerError {
			logger.Error("delete post failed", "post_id", req.ID, "error", err)
		}

		return c.JSON(status, dto.ErrorBody{Error: err.Error()})
	}

	return c.JSON(status, map[string]any{"deleted": true, "id": req.ID})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jailoo/internal/application/usecase/abstraction"
	"jailoo/internal/domain/dto"
	"jailoo/internal/presentation"
	"jailoo/pkg/logger"
)

type ReplaceVideoHandler struct {
	replacer abstraction.Replacer
}

func NewReplaceVideoHandler(replacer abstraction.Replacer) *ReplaceVideoHandler {
	return &ReplaceVideoHandler{replacer: replacer}
}

// Handle handles POST /api/admin/replace-video multipart requests: the post
// id and a new file, nothing else.
func (h *ReplaceVideoHandler) Handle(c echo.Context) error {
	id, err := strconv.ParseInt(c.FormValue("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "invalid post id"})
	}

	fileHeader, err := c.FormFile(presentation.FileField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "a video file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "couldn't read uploaded file"})
	}
	defer file.Close()

	resp, status, err := h.replacer.Replace(c.Request().Context(), id, file,
		fileHeader.Size, fileHeader.Header.Get(presentation.TypeKey))
	if err != nil {
		if status >= http.StatusInternalServerError {
			logger.Error("replace video failed", "post_id", id, "error", err)
		}

		return c.JSON(status, dto.ErrorBody{Error: err.Error()})
	}

	return c.JSON(status, resp)
}

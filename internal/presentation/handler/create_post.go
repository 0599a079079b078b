package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jailoo/internal/application/usecase/abstraction"
	"jailoo/internal/domain/dto"
	"jailoo/internal/presentation"
	"jailoo/pkg/logger"
)

type CreatePostHandler struct {
	creator abstraction.Creator
}

func NewCreatePostHandler(creator abstraction.Creator) *CreatePostHandler {
	return &CreatePostHandler{creator: creator}
}

// Handle handles POST /api/admin/create-post multipart requests.
func (h *CreatePostHandler) Handle(c echo.Context) error {
	fileHeader, err := c.FormFile(presentation.FileField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "a video file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "couldn't read uploaded file"})
	}
	defer file.Close()

	in := abstraction.CreatePostInput{
		Title:     c.FormValue("title"),
		Content:   c.FormValue("content"),
		Fact:      c.FormValue("fact"),
		Region:    c.FormValue("region"),
		Season:    c.FormValue("season"),
		MapRegion: c.FormValue("map_region"),
		MapURL:    optionalFormValue(c, "map_url"),
		File:      file,
		FileSize:  fileHeader.Size,
		FileType:  fileHeader.Header.Get(presentation.TypeKey),
	}

	post, status, err := h.creator.Create(c.Request().Context(), in)
	if err != nil {
		if status >= http.StatusInternalServerError {
			logger.Error("create post failed", "error", err)
		}

		return c.JSON(status, dto.ErrorBody{Error: err.Error()})
	}

	return c.JSON(status, post)
}

func optionalFormValue(c echo.Context, name string) *string {
	v := c.FormValue(name)
	if v == "" {
		return nil
	}

	return &v
}

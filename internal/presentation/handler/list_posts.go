package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jailoo/internal/application/usecase/abstraction"
	"jailoo/internal/domain/dto"
	"jailoo/internal/presentation"
)

type ListPostsHandler struct {
	lister abstraction.Lister
}

func NewListPostsHandler(lister abstraction.Lister) *ListPostsHandler {
	return &ListPostsHandler{lister: lister}
}

// Handle handles GET /api/posts?order=asc|desc requests. Unauthenticated:
// the list is the public showcase feed.
func (h *ListPostsHandler) Handle(c echo.Context) error {
	order := c.QueryParam(presentation.OrderParam)
	if order != "" && order != "asc" && order != "desc" {
		return c.JSON(http.StatusBadRequest, dto.ErrorBody{Error: "order must be asc or desc"})
	}

	posts, status, err := h.lister.List(c.Request().Context(), order == "desc")
	if err != nil {
		return c.JSON(status, dto.ErrorBody{Error: err.Error()})
	}

	return c.JSON(status, posts)
}

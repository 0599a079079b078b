package usecase

import (
	"context"
	"errors"
	"net/http"

	"jailoo/internal/domain/dto"
	"jailoo/internal/domain/repository/database"
)

// Lister implements the read path: the full post list, ordered by id.
type Lister struct {
	lister database.Lister
}

func NewLister(lister database.Lister) *Lister {
	return &Lister{
		lister: lister,
	}
}

func (l *Lister) List(ctx context.Context, desc bool) ([]dto.PostResponse, int, error) {
	posts, err := l.lister.GetAll(ctx, desc)
	if err != nil {
		return nil, http.StatusInternalServerError, errors.New("failed to retrieve posts")
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, dto.PostResponseFrom(&posts[i]))
	}

	return responses, http.StatusOK, nil
}

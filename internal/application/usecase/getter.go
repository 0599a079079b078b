package usecase

import (
	"context"
	"errors"

	"jailoo/internal/domain/model"
	"jailoo/internal/domain/repository/database"
)

// Getter resolves a video object name to its post for the media redirect.
type Getter struct {
	retriever database.Retriever
}

func NewGetter(retriever database.Retriever) *Getter {
	return &Getter{
		retriever: retriever,
	}
}

func (g *Getter) GetByVideoFile(ctx context.Context, object string) (*model.Post, error) {
	post, err := g.retriever.GetByVideoFile(ctx, object)
	if err != nil {
		return nil, errors.New("video not found")
	}

	return post, nil
}

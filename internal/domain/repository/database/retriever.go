package database

import (
	"context"

	"jailoo/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	GetByVideoFile(ctx context.Context, object string) (*model.Post, error)
}

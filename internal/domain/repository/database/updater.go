package database

import (
	"context"

	"jailoo/internal/domain/model"
)

type Updater interface {
	// UpdateFields replaces the text/metadata fields of a post, leaving
	// video_file untouched.
	UpdateFields(ctx context.Context, post *model.Post) error
	SetVideoFile(ctx context.Context, id int64, object string) error
}

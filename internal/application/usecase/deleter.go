package usecase

import (
	"context"
	"errors"
	"net/http"

	"jailoo/internal/domain/repository/database"
	"jailoo/internal/domain/repository/minio"
	"jailoo/pkg/logger"
)

// Deleter removes a post row and reaps its video blob. The row goes first:
// an orphaned blob is recoverable noise, a dangling row is a broken page.
type Deleter struct {
	dbRetriever  database.Retriever
	dbRemover    database.Remover
	minioRemover minio.Remover
	bucket       string
}

func NewDeleter(dbRetriever database.Retriever, dbRemover database.Remover,
	minioRemover minio.Remover, bucket string,
) *Deleter {
	return &Deleter{
		dbRetriever:  dbRetriever,
		dbRemover:    dbRemover,
		minioRemover: minioRemover,
		bucket:       bucket,
	}
}

func (d *Deleter) Delete(ctx context.Context, id int64) (int, error) {
	post, err := d.dbRetriever.GetByID(ctx, id)
	if err != nil {
		return http.StatusNotFound, errors.New("post not found")
	}

	if err := d.dbRemover.RemoveByID(ctx, id); err != nil {
		return http.StatusInternalServerError, errors.New("failed to remove post from database")
	}

	if post.VideoFile != nil {
		if err := d.minioRemover.Remove(ctx, d.bucket, *post.VideoFile); err != nil {
			logger.Error("failed to remove video blob of deleted post",
				"post_id", id, "object", *post.VideoFile, "err", err)
		}
	}

	return http.StatusOK, nil
}

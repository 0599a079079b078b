package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"

	"jailoo/internal/domain/dto"
	"jailoo/internal/domain/repository/broker"
	"jailoo/internal/domain/repository/database"
	"jailoo/internal/domain/repository/minio"
	"jailoo/pkg/logger"
)

// Replacer swaps the video of an existing post: store the new blob, point
// the row at it, then drop the old blob. Text fields are never touched.
type Replacer struct {
	publisher     broker.Publisher
	retriever     database.Retriever
	updater       database.Updater
	minioUploader minio.Uploader
	minioRemover  minio.Remover
}

func NewReplacer(publisher broker.Publisher, retriever database.Retriever,
	updater database.Updater, minioUploader minio.Uploader, minioRemover minio.Remover,
) *Replacer {
	return &Replacer{
		publisher:     publisher,
		retriever:     retriever,
		updater:       updater,
		minioUploader: minioUploader,
		minioRemover:  minioRemover,
	}
}

func (r *Replacer) Replace(ctx context.Context, id int64, file io.Reader, fileSize int64,
	fileType string,
) (dto.ReplaceVideoResponse, int, error) {
	post, err := r.retriever.GetByID(ctx, id)
	if err != nil {
		return dto.ReplaceVideoResponse{}, http.StatusNotFound, errors.New("post not found")
	}

	result, err := r.minioUploader.UploadVideo(ctx, file, fileSize, fileType)
	if err != nil {
		return dto.ReplaceVideoResponse{}, http.StatusBadRequest, err
	}

	if err := r.updater.SetVideoFile(ctx, id, result.Object); err != nil {
		if removeErr := r.minioRemover.Remove(ctx, result.Bucket, result.Object); removeErr != nil {
			logger.Error("failed to remove new video after pointer swap failed", "err", removeErr)
		}

		return dto.ReplaceVideoResponse{}, http.StatusInternalServerError,
			errors.New("couldn't update post video")
	}

	if post.VideoFile != nil {
		if err := r.minioRemover.Remove(ctx, result.Bucket, *post.VideoFile); err != nil {
			logger.Error("failed to remove replaced video blob",
				"post_id", id, "object", *post.VideoFile, "err", err)
		}
	}

	if err := r.publisher.Publish(ctx, result.Object); err != nil {
		logger.Error("failed to publish replaced video to processing stream", "err", err)
	}

	return dto.ReplaceVideoResponse{
		File: result.Object,
		Size: result.Size,
		Type: result.Type,
	}, http.StatusOK, nil
}

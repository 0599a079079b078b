package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jailoo/internal/application/usecase/abstraction"
	"jailoo/internal/domain/dto"
	"jailoo/internal/domain/model"
	"jailoo/internal/domain/repository/broker"
	"jailoo/internal/domain/repository/database"
	"jailoo/internal/domain/repository/minio"
	"jailoo/pkg/logger"
)

// Creator stores a post together with its video: blob first, then the row,
// then the processing event. Later failures undo the earlier steps so a
// failed create leaves nothing behind.
type Creator struct {
	publisher     broker.Publisher
	writer        database.Writer
	minioUploader minio.Uploader
	minioRemover  minio.Remover
	dbRemover     database.Remover
}

func NewCreator(publisher broker.Publisher, writer database.Writer,
	minioUploader minio.Uploader, minioRemover minio.Remover, dbRemover database.Remover,
) *Creator {
	return &Creator{
		publisher:     publisher,
		writer:        writer,
		minioUploader: minioUploader,
		minioRemover:  minioRemover,
		dbRemover:     dbRemover,
	}
}

func (c *Creator) Create(ctx context.Context, in abstraction.CreatePostInput) (dto.PostResponse, int, error) {
	if err := validatePostFields(in.Title, in.Content, in.Fact, in.Region, in.Season); err != nil {
		return dto.PostResponse{}, http.StatusBadRequest, err
	}
	if in.File == nil {
		return dto.PostResponse{}, http.StatusBadRequest, errors.New("a video file is required")
	}

	mapRegion := in.MapRegion
	if mapRegion == "" {
		mapRegion = in.Region
	}
	if !model.Region(mapRegion).Valid() {
		return dto.PostResponse{}, http.StatusBadRequest, fmt.Errorf("invalid map_region: %s", mapRegion)
	}

	result, err := c.minioUploader.UploadVideo(ctx, in.File, in.FileSize, in.FileType)
	if err != nil {
		return dto.PostResponse{}, http.StatusBadRequest, err
	}

	id, err := c.writer.NextID(ctx)
	if err != nil {
		c.removeBlob(ctx, result.Bucket, result.Object)

		return dto.PostResponse{}, http.StatusInternalServerError, errors.New("couldn't allocate post id")
	}

	post := &model.Post{
		ID:        id,
		CreatedAt: time.Now(),
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Fact:      strings.TrimSpace(in.Fact),
		Region:    model.Region(in.Region),
		Season:    model.Season(in.Season),
		MapRegion: model.Region(mapRegion),
		MapURL:    normalizeMapURL(in.MapURL),
		VideoFile: &result.Object,
	}

	if err := c.writer.Write(ctx, post); err != nil {
		c.removeBlob(ctx, result.Bucket, result.Object)

		return dto.PostResponse{}, http.StatusInternalServerError, errors.New("couldn't add post to database")
	}

	if err := c.publisher.Publish(ctx, result.Object); err != nil {
		c.removeBlob(ctx, result.Bucket, result.Object)

		if removeErr := c.dbRemover.RemoveByID(ctx, post.ID); removeErr != nil {
			logger.Error("failed to remove post from db after publish failed", "err", removeErr)
		}

		logger.Error("failed to publish video to processing stream", "err", err)

		return dto.PostResponse{}, http.StatusInternalServerError,
			errors.New("failed to queue video for processing")
	}

	return dto.PostResponseFrom(post), http.StatusCreated, nil
}

func (c *Creator) removeBlob(ctx context.Context, bucket, object string) {
	if err := c.minioRemover.Remove(ctx, bucket, object); err != nil {
		logger.Error("failed to remove video from minio after create failed", "err", err)
	}
}

func validatePostFields(title, content, fact, region, season string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("missing required field: title")
	}
	if strings.TrimSpace(content) == "" {
		return errors.New("missing required field: content")
	}
	if strings.TrimSpace(fact) == "" {
		return errors.New("missing required field: fact")
	}
	if !model.Region(region).Valid() {
		return fmt.Errorf("invalid region: %s", region)
	}
	if !model.Season(season).Valid() {
		return fmt.Errorf("invalid season: %s", season)
	}

	return nil
}

func normalizeMapURL(mapURL *string) *string {
	if mapURL == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*mapURL)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"jailoo/internal/domain/entity"
	"jailoo/pkg/logger"
	"jailoo/pkg/utils"
	"jailoo/pkg/video"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         UploaderConfig
}

func NewUploader(minioClient *minio.Client, cfg UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// UploadVideo streams a video into the bucket in 5 MiB chunks and composes
// them into one object named <uuid><ext>. The first chunk is content-sniffed
// and must agree with the declared type; the declared type must be one of
// the accepted video containers; the size cap is enforced while streaming.
func (u *Uploader) UploadVideo(ctx context.Context, body io.Reader, fileSize int64,
	declaredType string,
) (entity.VideoUploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if !video.Accepted(declaredType) {
		return entity.VideoUploadResult{}, fmt.Errorf("unsupported video type: %s", orUnknown(declaredType))
	}
	if fileSize > video.MaxUploadBytes {
		return entity.VideoUploadResult{}, fmt.Errorf("file too large: %s exceeds the %s limit",
			utils.HumanFileSize(fileSize), utils.HumanFileSize(video.MaxUploadBytes))
	}

	bucketName := u.cfg.Bucket
	var chunkNames []string

	detectedMIME, totalBytes, err := u.processVideoChunks(ctx, body, bucketName, &chunkNames, declaredType)
	if err != nil {
		u.cleanupChunks(ctx, bucketName, chunkNames)

		return entity.VideoUploadResult{}, err
	}

	if len(chunkNames) == 0 {
		return entity.VideoUploadResult{}, errors.New("read error: empty file")
	}

	objectName := uuid.New().String() + utils.GetExtensionFromMimeType(detectedMIME)
	if err := u.composeChunks(ctx, bucketName, chunkNames, objectName, detectedMIME); err != nil {
		u.cleanupChunks(ctx, bucketName, chunkNames)

		return entity.VideoUploadResult{}, err
	}

	u.cleanupChunks(ctx, bucketName, chunkNames)

	return entity.VideoUploadResult{
		Object:   objectName,
		Type:     detectedMIME,
		Size:     totalBytes,
		Bucket:   bucketName,
		Location: fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(u.cfg.PublicURL, "/"), bucketName, objectName),
	}, nil
}

func (u *Uploader) processVideoChunks(ctx context.Context, body io.Reader, bucketName string,
	chunkNames *[]string, declaredType string,
) (string, int64, error) {
	var detectedMIME string
	var totalBytes int64
	buf := make([]byte, 5*1024*1024)
	chunkIndex := 0

	for {
		n, err := body.Read(buf)
		if n > 0 { //nolint
			chunk := buf[:n]

			if chunkIndex == 0 {
				detected := mimetype.Detect(chunk)
				if !detected.Is(declaredType) {
					return "", 0, fmt.Errorf("invalid file type: detected %s, declared %s",
						detected.String(), declaredType)
				}
				detectedMIME = declaredType
			}

			if totalBytes+int64(n) > video.MaxUploadBytes {
				return "", 0, fmt.Errorf("file too large: upload exceeds the %s limit",
					utils.HumanFileSize(video.MaxUploadBytes))
			}

			chunkName := fmt.Sprintf("chunk-%s-%d", uuid.New().String(), chunkIndex)
			*chunkNames = append(*chunkNames, chunkName)

			_, err := u.minioClient.PutObject(ctx, bucketName, chunkName, bytes.NewReader(chunk), int64(len(chunk)),
				minio.PutObjectOptions{
					ContentType: detectedMIME,
				})
			if err != nil {
				return "", 0, fmt.Errorf("chunk upload failed: %w", err)
			}

			totalBytes += int64(len(chunk))
			chunkIndex++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Error("read error", "err", err.Error())

			return "", 0, fmt.Errorf("read error: %w", err)
		}
	}

	return detectedMIME, totalBytes, nil
}

func (u *Uploader) composeChunks(ctx context.Context, bucketName string, chunkNames []string,
	finalName, contentType string,
) error {
	sources := make([]minio.CopySrcOptions, len(chunkNames))
	for i, name := range chunkNames {
		sources[i] = minio.CopySrcOptions{Bucket: bucketName, Object: name}
	}

	dst := minio.CopyDestOptions{
		Bucket:          bucketName,
		Object:          finalName,
		ContentType:     contentType,
		ReplaceMetadata: true,
	}
	_, err := u.minioClient.ComposeObject(ctx, dst, sources...)
	if err != nil {
		return fmt.Errorf("compose error: %w", err)
	}

	return nil
}

func (u *Uploader) cleanupChunks(ctx context.Context, bucketName string, chunkNames []string) {
	for _, name := range chunkNames {
		err := u.minioClient.RemoveObject(ctx, bucketName, name, minio.RemoveObjectOptions{})
		if err != nil {
			logger.Error("failed to cleanup chunk", "chunk", name, "err", err)
		}
	}
}

func orUnknown(mimeType string) string {
	if mimeType == "" {
		return "unknown"
	}

	return mimeType
}

package minio

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"jailoo/pkg/logger"
)

type Client struct {
	MinioClient *minio.Client
}

func New(cfg ClientConfig) (*Client, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:          false,
		TrailingHeaders: true,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		MinioClient: client,
	}, nil
}

package minio

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
	minioBucket   = "test-videos"
)

// mp4Payload fabricates bytes that content-sniff as video/mp4.
func mp4Payload(size int) []byte {
	header := []byte("\x00\x00\x00\x18ftypmp42")
	if size <= len(header) {
		return header
	}

	return append(header, bytes.Repeat([]byte{0xab}, size-len(header))...)
}

func setupMinio(t *testing.T) *minio.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     minioUser,
			"MINIO_ROOT_PASSWORD": minioPassword,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start MinIO container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Errorf("Failed to terminate MinIO container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("Failed to get MinIO endpoint: %v", err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioUser, minioPassword, ""),
		Secure: false,
	})
	if err != nil {
		t.Fatalf("Failed to create MinIO client: %v", err)
	}

	if err := client.MakeBucket(ctx, minioBucket, minio.MakeBucketOptions{}); err != nil {
		t.Fatalf("Failed to create MinIO bucket: %v", err)
	}

	return client
}

func newTestUploader(t *testing.T) *Uploader {
	t.Helper()

	return NewUploader(setupMinio(t), UploaderConfig{
		Timeout:   30000,
		Bucket:    minioBucket,
		PublicURL: "http://localhost:9000",
	})
}

func TestUploadVideo(t *testing.T) {
	t.Parallel()
	uploader := newTestUploader(t)

	content := mp4Payload(6 * 1024 * 1024)

	result, err := uploader.UploadVideo(context.Background(),
		bytes.NewReader(content), int64(len(content)), "video/mp4")
	require.NoError(t, err)

	assert.Equal(t, "video/mp4", result.Type)
	assert.Equal(t, int64(len(content)), result.Size)
	assert.Equal(t, minioBucket, result.Bucket)
	assert.True(t, strings.HasSuffix(result.Object, ".mp4"), "object name: %s", result.Object)
	assert.Equal(t, "http://localhost:9000/"+minioBucket+"/"+result.Object, result.Location)

	// The composed object is the only thing left in the bucket.
	stat, err := uploader.minioClient.StatObject(context.Background(),
		minioBucket, result.Object, minio.StatObjectOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), stat.Size)
	assert.Equal(t, "video/mp4", stat.ContentType)

	objects := uploader.minioClient.ListObjects(context.Background(), minioBucket,
		minio.ListObjectsOptions{})
	count := 0
	for obj := range objects {
		require.NoError(t, obj.Err)
		count++
	}
	assert.Equal(t, 1, count)
}

func TestUploadVideoRejections(t *testing.T) {
	t.Parallel()
	uploader := newTestUploader(t)

	content := mp4Payload(1024)

	tests := []struct {
		name         string
		body         []byte
		size         int64
		declaredType string
		wantErr      string
	}{
		{
			name:         "unsupported declared type",
			body:         content,
			size:         int64(len(content)),
			declaredType: "video/x-msvideo",
			wantErr:      "unsupported video type: video/x-msvideo",
		},
		{
			name:         "empty declared type",
			body:         content,
			size:         int64(len(content)),
			declaredType: "",
			wantErr:      "unsupported video type: unknown",
		},
		{
			name:         "declared size over the cap",
			body:         content,
			size:         201 * 1024 * 1024,
			declaredType: "video/mp4",
			wantErr:      "exceeds the 200 MB limit",
		},
		{
			name:         "content does not match declared type",
			body:         []byte("plain text pretending to be a video"),
			size:         35,
			declaredType: "video/mp4",
			wantErr:      "invalid file type",
		},
		{
			name:         "empty file",
			body:         nil,
			size:         0,
			declaredType: "video/mp4",
			wantErr:      "read error: empty file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := uploader.UploadVideo(context.Background(),
				bytes.NewReader(tt.body), tt.size, tt.declaredType)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

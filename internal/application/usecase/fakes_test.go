package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"jailoo/internal/domain/entity"
	"jailoo/internal/domain/model"
)

var errFake = errors.New("fake failure")

type fakeUploader struct {
	result entity.VideoUploadResult
	err    error
	calls  int
}

func (f *fakeUploader) UploadVideo(_ context.Context, _ io.Reader, _ int64, _ string) (entity.VideoUploadResult, error) {
	f.calls++

	return f.result, f.err
}

type fakeBlobRemover struct {
	err     error
	removed [][2]string
}

func (f *fakeBlobRemover) Remove(_ context.Context, bucket, object string) error {
	f.removed = append(f.removed, [2]string{bucket, object})

	return f.err
}

type fakeWriter struct {
	nextID    int64
	nextIDErr error
	writeErr  error
	written   []*model.Post
}

func (f *fakeWriter) NextID(context.Context) (int64, error) {
	return f.nextID, f.nextIDErr
}

func (f *fakeWriter) Write(_ context.Context, post *model.Post) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = append(f.written, post)

	return nil
}

type fakeRetriever struct {
	post *model.Post
	err  error
}

func (f *fakeRetriever) GetByID(context.Context, int64) (*model.Post, error) {
	return f.post, f.err
}

func (f *fakeRetriever) GetByVideoFile(context.Context, string) (*model.Post, error) {
	return f.post, f.err
}

type fakeUpdater struct {
	fieldsErr error
	videoErr  error
	updated   []*model.Post
	setVideo  []string
}

func (f *fakeUpdater) UpdateFields(_ context.Context, post *model.Post) error {
	if f.fieldsErr != nil {
		return f.fieldsErr
	}
	f.updated = append(f.updated, post)

	return nil
}

func (f *fakeUpdater) SetVideoFile(_ context.Context, _ int64, object string) error {
	if f.videoErr != nil {
		return f.videoErr
	}
	f.setVideo = append(f.setVideo, object)

	return nil
}

type fakeRowRemover struct {
	err     error
	removed []int64
}

func (f *fakeRowRemover) RemoveByID(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, id)

	return nil
}

type fakeLister struct {
	posts []model.Post
	err   error
}

func (f *fakeLister) GetAll(context.Context, bool) ([]model.Post, error) {
	return f.posts, f.err
}

type fakePublisher struct {
	err       error
	published []string
}

func (f *fakePublisher) Publish(_ context.Context, object string) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, object)

	return nil
}

func strptr(s string) *string {
	return &s
}

func storedPost(id int64, object string) *model.Post {
	return &model.Post{
		ID:        id,
		CreatedAt: time.Now(),
		Title:     "Ala-Kul trek",
		Content:   "Glacier lake above Karakol.",
		Fact:      "The water shifts color with the light.",
		Region:    "issyk-kul",
		Season:    "summer",
		MapRegion: "issyk-kul",
		VideoFile: strptr(object),
	}
}

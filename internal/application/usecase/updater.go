package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"jailoo/internal/domain/dto"
	"jailoo/internal/domain/model"
	"jailoo/internal/domain/repository/database"
)

// Updater edits the text/metadata fields of a post. The video pointer is
// untouchable from here: replacing a video goes through the Replacer.
type Updater struct {
	retriever database.Retriever
	updater   database.Updater
}

func NewUpdater(retriever database.Retriever, updater database.Updater) *Updater {
	return &Updater{
		retriever: retriever,
		updater:   updater,
	}
}

func (u *Updater) Update(ctx context.Context, req dto.UpdatePostRequest) (dto.PostResponse, int, error) {
	if err := validatePostFields(req.Title, req.Content, req.Fact, req.Region, req.Season); err != nil {
		return dto.PostResponse{}, http.StatusBadRequest, err
	}

	existing, err := u.retriever.GetByID(ctx, req.ID)
	if err != nil {
		return dto.PostResponse{}, http.StatusNotFound, errors.New("post not found")
	}

	mapRegion := req.MapRegion
	if mapRegion == "" {
		mapRegion = req.Region
	}

	post := &model.Post{
		ID:        existing.ID,
		CreatedAt: existing.CreatedAt,
		Title:     strings.TrimSpace(req.Title),
		Content:   strings.TrimSpace(req.Content),
		Fact:      strings.TrimSpace(req.Fact),
		Region:    model.Region(req.Region),
		Season:    model.Season(req.Season),
		MapRegion: model.Region(mapRegion),
		MapURL:    normalizeMapURL(req.MapURL),
		VideoFile: existing.VideoFile,
	}

	if err := u.updater.UpdateFields(ctx, post); err != nil {
		return dto.PostResponse{}, http.StatusInternalServerError, errors.New("couldn't update post")
	}

	return dto.PostResponseFrom(post), http.StatusOK, nil
}

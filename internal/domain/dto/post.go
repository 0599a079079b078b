package dto

import "jailoo/internal/domain/model"

// PostResponse is the fixed projection served to both the public showcase
// and the admin console.
type PostResponse struct {
	ID        int64   `json:"id"`
	CreatedAt int64   `json:"created_at"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Fact      string  `json:"fact"`
	Region    string  `json:"region"`
	Season    string  `json:"season"`
	MapRegion string  `json:"map_region"`
	MapURL    *string `json:"map_url"`
	VideoFile *string `json:"video_file"`
}

func PostResponseFrom(p *model.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		CreatedAt: p.CreatedAt.Unix(),
		Title:     p.Title,
		Content:   p.Content,
		Fact:      p.Fact,
		Region:    string(p.Region),
		Season:    string(p.Season),
		MapRegion: string(p.MapRegion),
		MapURL:    p.MapURL,
		VideoFile: p.VideoFile,
	}
}

// UpdatePostRequest carries the text/metadata edit. It deliberately has no
// video_file field: the pointer is owned by the upload paths.
type UpdatePostRequest struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Fact      string  `json:"fact"`
	Region    string  `json:"region"`
	Season    string  `json:"season"`
	MapRegion string  `json:"map_region"`
	MapURL    *string `json:"map_url"`
}

type DeletePostRequest struct {
	ID int64 `json:"id"`
}

// ReplaceVideoResponse reports the new blob object name after a successful
// video replacement. Clients take the displayed filename from here verbatim.
type ReplaceVideoResponse struct {
	File string `json:"file"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

type ErrorBody struct {
	Error string `json:"error"`
}

package entity

// VideoUploadResult describes a video object successfully stored in MinIO.
type VideoUploadResult struct {
	Object   string `json:"object"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
	Bucket   string `json:"bucket"`
	Location string `json:"location"`
}

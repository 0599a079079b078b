package client

import (
	"fmt"
	"io"
	"strings"

	"jailoo/pkg/utils"
	"jailoo/pkg/video"
)

// File is the video chosen for an upload: its declared media type, its byte
// size, and the content stream itself.
type File struct {
	Name    string
	Type    string
	Size    int64
	Content io.Reader
}

// CreateForm carries the text fields of a create-post submission.
type CreateForm struct {
	Title     string
	Content   string
	Fact      string
	Region    string
	Season    string
	MapRegion string
	MapURL    string
}

// ValidateVideoFile checks the declared media type and size of a file
// against the upload contract. It returns an empty string when the file is
// acceptable and a human-readable message otherwise.
//
// Validation is synchronous and pure: the same file always yields the same
// message.
func ValidateVideoFile(f File) string {
	if !video.Accepted(f.Type) {
		declared := f.Type
		if declared == "" {
			declared = "unknown"
		}

		return fmt.Sprintf("Unsupported format: %s. Accepted formats: %s.",
			declared, video.AcceptedExtensions)
	}

	if f.Size > video.MaxUploadBytes {
		return fmt.Sprintf("File is too large: %s. The limit is %s.",
			utils.HumanFileSize(f.Size), utils.HumanFileSize(video.MaxUploadBytes))
	}

	return ""
}

// ValidateCreateForm validates a create-post submission: every text field is
// required after trimming, and a file must be chosen and pass
// ValidateVideoFile. The returned map is empty when the submission may
// proceed.
func ValidateCreateForm(form CreateForm, file *File) ValidationErrors {
	errs := ValidationErrors{}

	requireField(errs, "title", form.Title)
	requireField(errs, "content", form.Content)
	requireField(errs, "region", form.Region)
	requireField(errs, "season", form.Season)
	requireField(errs, "fact", form.Fact)

	if file == nil {
		errs["file"] = "Please choose a video file."
	} else if msg := ValidateVideoFile(*file); msg != "" {
		errs["file"] = msg
	}

	return errs
}

// ValidateReplace validates a replace-video submission: an existing post id
// and a new file, nothing else.
func ValidateReplace(postID int64, file *File) ValidationErrors {
	errs := ValidationErrors{}

	if postID <= 0 {
		errs["id"] = "A post id is required."
	}

	if file == nil {
		errs["file"] = "Please choose a video file."
	} else if msg := ValidateVideoFile(*file); msg != "" {
		errs["file"] = msg
	}

	return errs
}

func requireField(errs ValidationErrors, name, value string) {
	if strings.TrimSpace(value) == "" {
		errs[name] = fmt.Sprintf("The %s field is required.", name)
	}
}

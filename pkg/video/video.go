// Package video holds the upload contract shared by the service and its
// clients: which video containers are accepted and how large an upload
// may be.
package video

// MaxUploadBytes is the hard cap on a single video upload.
const MaxUploadBytes = 200 * 1024 * 1024

// AcceptedMIMETypes is the exact set of video containers the service stores.
var AcceptedMIMETypes = []string{
	"video/mp4",
	"video/webm",
	"video/quicktime",
}

// AcceptedExtensions names the accepted containers the way error messages
// show them to users.
const AcceptedExtensions = "mp4, webm, mov"

func Accepted(mimeType string) bool {
	for _, t := range AcceptedMIMETypes {
		if t == mimeType {
			return true
		}
	}

	return false
}

package client

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// ProgressFunc receives the transfer percentage, an integer in [0,100]. It
// is only called when the total byte count is known, and each call reports a
// value no smaller than the previous one.
type ProgressFunc func(pct int)

// UploadRequest describes one multipart transfer to a mutation endpoint.
type UploadRequest struct {
	URL   string
	Token string

	// Fields are written to the form in order, before the file part.
	Fields [][2]string

	FileName string
	FileType string
	FileSize int64
	File     io.Reader
}

// TransferResult is the raw terminal outcome of a transfer that reached the
// server: the status code and the full response body.
type TransferResult struct {
	StatusCode int
	Body       []byte
}

// Transport is the capability a Session uses to move bytes: one call, one
// transfer, progress along the way, exactly one terminal result. Cancel by
// cancelling the context.
type Transport interface {
	Do(ctx context.Context, req *UploadRequest, onProgress ProgressFunc) (*TransferResult, error)
}

// HTTPTransport streams multipart uploads over net/http. Progress is
// counted on the file part, which dominates the request size.
type HTTPTransport struct {
	Client *http.Client
}

func (t *HTTPTransport) httpClient() *http.Client {
	if t.Client != nil {
		return t.Client
	}

	return http.DefaultClient
}

func (t *HTTPTransport) Do(ctx context.Context, req *UploadRequest, onProgress ProgressFunc) (*TransferResult, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writeMultipart(mw, req, onProgress)
		mw.Close()
		pw.CloseWithError(err)
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL, pr)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+req.Token)

	resp, err := t.httpClient().Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &TransferResult{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

func writeMultipart(mw *multipart.Writer, req *UploadRequest, onProgress ProgressFunc) error {
	for _, field := range req.Fields {
		if err := mw.WriteField(field[0], field[1]); err != nil {
			return err
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="file"; filename="`+escapeQuotes(req.FileName)+`"`)
	header.Set("Content-Type", req.FileType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return err
	}

	counted := &progressReader{
		r:          req.File,
		total:      req.FileSize,
		onProgress: onProgress,
	}
	_, err = io.Copy(part, counted)

	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// progressReader reports the integer percentage of bytes read whenever it
// changes. With an unknown total it stays silent and the last reported
// value stands.
type progressReader struct {
	r          io.Reader
	total      int64
	loaded     int64
	lastPct    int
	onProgress ProgressFunc
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.loaded += int64(n)
		if p.total > 0 && p.onProgress != nil {
			pct := int((float64(p.loaded)/float64(p.total))*100 + 0.5)
			if pct > 100 {
				pct = 100
			}
			if pct != p.lastPct {
				p.lastPct = pct
				p.onProgress(pct)
			}
		}
	}

	return n, err
}

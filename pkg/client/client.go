// Package client talks to the jailoo post service: the authenticated
// mutation protocol (create, update, delete, replace-video), the public
// read path, and the upload session state machine driving the two binary
// transfers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Post is the projection the service serves to every view.
type Post struct {
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

// UpdateForm carries a text/metadata edit. There is deliberately no video
// field here: replacing a video goes through ReplaceVideo.
type UpdateForm struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Fact      string  `json:"fact"`
	Region    string  `json:"region"`
	Season    string  `json:"season"`
	MapRegion string  `json:"map_region"`
	MapURL    *string `json:"map_url"`
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// Client is the admin console's connection to the post service. All four
// mutating operations fetch a fresh bearer token from the TokenSource first
// and fail with ErrNotAuthenticated before any bytes are sent when none is
// available. No operation retries; after a mutation succeeds the caller
// re-fetches the list, there is no local merge.
type Client struct {
	baseURL    string
	tokens     TokenSource
	transport  Transport
	httpClient *http.Client
}

// New builds a client for the service at baseURL. A trailing slash is
// stripped; an empty address is reported as ErrConfigMissing before
// anything else.
func New(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrConfigMissing
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		tokens:     tokens,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = &HTTPTransport{Client: c.httpClient}
	}

	return c, nil
}

func (c *Client) endpoint(op string) string {
	return fmt.Sprintf("%s/api/admin/%s", c.baseURL, op)
}

// CreatePost runs a one-shot upload session for a new post. Callers that
// need progress events or cancellation hold their own session via
// NewSession(OpCreate).
func (c *Client) CreatePost(ctx context.Context, form CreateForm, file *File) (*Outcome, error) {
	return c.NewSession(OpCreate).Start(ctx, UploadInput{Form: form, File: file})
}

// ReplaceVideo runs a one-shot upload session replacing the video of post
// id. On success the new object name is in Outcome.ReplacedFile(); text
// fields are untouched by this operation.
func (c *Client) ReplaceVideo(ctx context.Context, id int64, file *File) (*Outcome, error) {
	return c.NewSession(OpReplace).Start(ctx, UploadInput{PostID: id, File: file})
}

// UpdatePost edits the text/metadata fields of a post and returns the
// updated projection.
func (c *Client) UpdatePost(ctx context.Context, form UpdateForm) (*Post, error) {
	body, err := c.postJSON(ctx, "update-post", form)
	if err != nil {
		return nil, err
	}

	var post Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, &RequestError{Status: http.StatusOK, Message: MsgInvalidJSON}
	}

	return &post, nil
}

// DeletePost removes a post and its video. The operation is destructive and
// unconfirmed here: callers must obtain explicit user confirmation before
// invoking it.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	_, err := c.postJSON(ctx, "delete-post", map[string]int64{"id": id})

	return err
}

// ListPosts fetches the full post list ordered by id; order is "asc" or
// "desc". This is the read path: unauthenticated, and always a full
// snapshot.
func (c *Client) ListPosts(ctx context.Context, order string) ([]Post, error) {
	url := fmt.Sprintf("%s/api/posts", c.baseURL)
	if order != "" {
		url += "?order=" + order
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ReadError{Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ReadError{Message: MsgNetworkError}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ReadError{Message: MsgNetworkError}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ReadError{Message: errorMessageFrom(body, "list-posts", resp.StatusCode)}
	}

	var posts []Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, &ReadError{Message: MsgInvalidJSON}
	}

	return posts, nil
}

// postJSON sends an authenticated JSON mutation and returns the response
// body after the uniform status/error-body handling.
func (c *Client) postJSON(ctx context.Context, op string, payload any) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil || token == "" {
		return nil, ErrNotAuthenticated
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(op), bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Message: MsgNetworkError}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Message: MsgNetworkError}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{
			Status:  resp.StatusCode,
			Message: errorMessageFrom(body, op, resp.StatusCode),
		}
	}

	if len(bytes.TrimSpace(body)) > 0 && !json.Valid(bytes.TrimSpace(body)) {
		return nil, &RequestError{Status: resp.StatusCode, Message: MsgInvalidJSON}
	}

	return body, nil
}

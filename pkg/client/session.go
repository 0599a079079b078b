package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
)

// OpKind selects which mutation endpoint an upload session targets.
type OpKind string

const (
	OpCreate  OpKind = "create-post"
	OpReplace OpKind = "replace-video"
)

// State of an upload session. Terminal outcomes are reported as events and
// through the Outcome; the session itself returns to StateIdle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateUploading
)

// EventKind labels the notifications a session delivers: any number of
// progress events followed by exactly one terminal event.
type EventKind int

const (
	EventProgress EventKind = iota
	EventSucceeded
	EventRejected
	EventNetworkFailed
	EventCancelled
)

type Event struct {
	Kind    EventKind
	Pct     int
	Message string
	Body    json.RawMessage
}

// Outcome is the terminal result of one transfer.
type Outcome struct {
	Terminal EventKind
	Message  string
	Body     json.RawMessage
}

func (o *Outcome) Succeeded() bool {
	return o.Terminal == EventSucceeded
}

// ReplacedFile returns the new video object name from a replace-video
// response body. The value always comes from the server; it is never
// derived locally.
func (o *Outcome) ReplacedFile() string {
	var resp struct {
		File string `json:"file"`
	}
	if err := json.Unmarshal(o.Body, &resp); err != nil {
		return ""
	}

	return resp.File
}

// UploadInput is the submission a session carries: the create form or the
// target post id, plus the chosen file.
type UploadInput struct {
	// Form holds the create-post fields. Ignored for replace-video.
	Form CreateForm
	// PostID targets replace-video. Ignored for create.
	PostID int64

	File *File
}

// Session drives one binary transfer at a time through
// Idle → Validating → Uploading → terminal, and back to Idle. A session is
// reusable after each terminal outcome but rejects overlapping starts:
// callers that want concurrent create and replace transfers hold one
// session per slot.
type Session struct {
	kind   OpKind
	client *Client

	// OnEvent, when set, receives progress events while uploading and the
	// terminal event. Set it before Start; it is called synchronously.
	OnEvent func(Event)

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
}

// NewSession returns an upload session bound to one operation kind.
func (c *Client) NewSession(kind OpKind) *Session {
	return &Session{
		kind:   kind,
		client: c,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Cancel aborts the active transfer, if any. Safe to call at any time:
// without an active transfer it is a no-op.
func (s *Session) Cancel() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Start validates the submission and, when it passes, runs the transfer to
// its terminal outcome. It blocks until the transfer ends; run it on its own
// goroutine when the caller needs to stay responsive.
//
// Validation failures, a missing session token, and an overlapping Start are
// returned as errors before any bytes are sent. Terminal transfer outcomes,
// including rejection and cancellation, are returned in the Outcome.
func (s *Session) Start(ctx context.Context, in UploadInput) (*Outcome, error) {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()

		return nil, ErrUploadInFlight
	}
	s.state = StateValidating
	s.mu.Unlock()

	if errs := s.validate(in); len(errs) > 0 {
		s.reset()

		return nil, errs
	}

	token, err := s.client.tokens.Token(ctx)
	if err != nil || token == "" {
		s.reset()

		return nil, ErrNotAuthenticated
	}

	req := s.buildRequest(in, token)

	tctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.state = StateUploading
	s.cancel = cancel
	s.mu.Unlock()

	result, terr := s.client.transport.Do(tctx, req, func(pct int) {
		s.emit(Event{Kind: EventProgress, Pct: pct})
	})

	cancelled := tctx.Err() == context.Canceled
	cancel()
	s.reset()

	var terminal Event
	switch {
	case terr != nil && cancelled:
		terminal = Event{Kind: EventCancelled, Message: MsgUploadAborted}
	case terr != nil:
		terminal = Event{Kind: EventNetworkFailed, Message: MsgNetworkError}
	default:
		terminal = terminalFromResult(s.kind, result)
	}

	s.emit(terminal)

	return &Outcome{
		Terminal: terminal.Kind,
		Message:  terminal.Message,
		Body:     terminal.Body,
	}, nil
}

func (s *Session) validate(in UploadInput) ValidationErrors {
	if s.kind == OpReplace {
		return ValidateReplace(in.PostID, in.File)
	}

	return ValidateCreateForm(in.Form, in.File)
}

func (s *Session) buildRequest(in UploadInput, token string) *UploadRequest {
	var fields [][2]string
	if s.kind == OpReplace {
		fields = [][2]string{{"id", strconv.FormatInt(in.PostID, 10)}}
	} else {
		fields = [][2]string{
			{"title", in.Form.Title},
			{"content", in.Form.Content},
			{"region", in.Form.Region},
			{"season", in.Form.Season},
			{"fact", in.Form.Fact},
			{"map_url", in.Form.MapURL},
			{"map_region", in.Form.MapRegion},
		}
	}

	return &UploadRequest{
		URL:      s.client.endpoint(string(s.kind)),
		Token:    token,
		Fields:   fields,
		FileName: in.File.Name,
		FileType: in.File.Type,
		FileSize: in.File.Size,
		File:     in.File.Content,
	}
}

func (s *Session) reset() {
	s.mu.Lock()
	s.state = StateIdle
	s.cancel = nil
	s.mu.Unlock()
}

func (s *Session) emit(ev Event) {
	if s.OnEvent != nil {
		s.OnEvent(ev)
	}
}

func terminalFromResult(kind OpKind, result *TransferResult) Event {
	if result.StatusCode >= 200 && result.StatusCode < 300 {
		body := bytes.TrimSpace(result.Body)
		if len(body) == 0 {
			// An empty body on success is treated as null.
			return Event{Kind: EventSucceeded}
		}
		if json.Valid(body) {
			return Event{Kind: EventSucceeded, Body: json.RawMessage(body)}
		}

		return Event{Kind: EventRejected, Message: MsgInvalidJSON}
	}

	return Event{
		Kind:    EventRejected,
		Message: errorMessageFrom(result.Body, string(kind), result.StatusCode),
	}
}

// errorMessageFrom prefers the body's error field and falls back to a
// synthesized message carrying the status code.
func errorMessageFrom(body []byte, op string, status int) string {
	var eb struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
		return eb.Error
	}

	return fmt.Sprintf("%s failed (status %d)", op, status)
}

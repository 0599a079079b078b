package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("empty address", func(t *testing.T) {
		t.Parallel()
		_, err := New("", StaticTokenSource("t"))
		require.ErrorIs(t, err, ErrConfigMissing)

		_, err = New("   ", StaticTokenSource("t"))
		require.ErrorIs(t, err, ErrConfigMissing)
	})

	t.Run("trailing slash stripped", func(t *testing.T) {
		t.Parallel()
		c, err := New("http://example.test/", StaticTokenSource("t"))
		require.NoError(t, err)
		assert.Equal(t, "http://example.test/api/admin/create-post", c.endpoint("create-post"))
	})
}

func TestCreatePostEndToEnd(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")

		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "Song-Kul in July", r.FormValue("title"))
		assert.Equal(t, "naryn", r.FormValue("region"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "clip.mp4", header.Filename)
		assert.Equal(t, "video/mp4", header.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c, err := New(srv.URL, StaticTokenSource("secret-token"))
	require.NoError(t, err)

	outcome, err := c.CreatePost(context.Background(), validForm(), validFile())
	require.NoError(t, err)

	assert.True(t, outcome.Succeeded())
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Contains(t, gotContentType, "multipart/form-data")
}

func TestCreatePostServerError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "error body surfaces verbatim",
			status:  http.StatusForbidden,
			body:    `{"error": "role check failed"}`,
			wantMsg: "role check failed",
		},
		{
			name:    "empty body synthesizes status message",
			status:  http.StatusInternalServerError,
			body:    "",
			wantMsg: "create-post failed (status 500)",
		},
		{
			name:    "non-JSON body synthesizes status message",
			status:  http.StatusBadGateway,
			body:    "<html>bad gateway</html>",
			wantMsg: "create-post failed (status 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := New(srv.URL, StaticTokenSource("t"))
			require.NoError(t, err)

			outcome, err := c.CreatePost(context.Background(), validForm(), validFile())
			require.NoError(t, err)

			assert.Equal(t, EventRejected, outcome.Terminal)
			assert.Equal(t, tt.wantMsg, outcome.Message)
		})
	}
}

func TestCreatePostNoFileSendsNothing(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c, err := New(srv.URL, StaticTokenSource("t"))
	require.NoError(t, err)

	_, err = c.CreatePost(context.Background(), validForm(), nil)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Please choose a video file.", verrs["file"])
	assert.Zero(t, calls.Load())
}

func TestReplaceVideoEndToEnd(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "42", r.FormValue("id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"file":"clip2.mp4","size":4194304,"type":"video/mp4"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, StaticTokenSource("t"))
	require.NoError(t, err)

	outcome, err := c.ReplaceVideo(context.Background(), 42, validFile())
	require.NoError(t, err)

	require.True(t, outcome.Succeeded())
	assert.Equal(t, "clip2.mp4", outcome.ReplacedFile())
}

func TestUpdatePost(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/update-post", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))

		var form UpdateForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, int64(5), form.ID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":5,"title":"Updated","region":"talas","season":"spring"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, StaticTokenSource("t"))
	require.NoError(t, err)

	post, err := c.UpdatePost(context.Background(), UpdateForm{
		ID: 5, Title: "Updated", Content: "c", Fact: "f", Region: "talas", Season: "spring",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), post.ID)
	assert.Equal(t, "Updated", post.Title)
}

func TestUpdatePostNotAuthenticated(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c, err := New(srv.URL, StaticTokenSource(""))
	require.NoError(t, err)

	_, err = c.UpdatePost(context.Background(), UpdateForm{ID: 5})
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, calls.Load())
}

func TestDeletePost(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/admin/delete-post", r.URL.Path)
			var body map[string]int64
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, int64(9), body["id"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"deleted":true,"id":9}`))
		}))
		defer srv.Close()

		c, err := New(srv.URL, StaticTokenSource("t"))
		require.NoError(t, err)
		require.NoError(t, c.DeletePost(context.Background(), 9))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "post not found"}`))
		}))
		defer srv.Close()

		c, err := New(srv.URL, StaticTokenSource("t"))
		require.NoError(t, err)

		err = c.DeletePost(context.Background(), 9)
		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusNotFound, reqErr.Status)
		assert.Equal(t, "post not found", reqErr.Message)
	})
}

func TestListPosts(t *testing.T) {
	t.Parallel()

	t.Run("orders pass through", func(t *testing.T) {
		t.Parallel()

		var gotOrder string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/posts", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			gotOrder = r.URL.Query().Get("order")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":2,"title":"Second"},{"id":1,"title":"First"}]`))
		}))
		defer srv.Close()

		c, err := New(srv.URL, StaticTokenSource(""))
		require.NoError(t, err)

		posts, err := c.ListPosts(context.Background(), "desc")
		require.NoError(t, err)

		assert.Equal(t, "desc", gotOrder)
		require.Len(t, posts, 2)
		assert.Equal(t, int64(2), posts[0].ID)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		c, err := New(srv.URL, StaticTokenSource(""))
		require.NoError(t, err)

		_, err = c.ListPosts(context.Background(), "")
		var readErr *ReadError
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, MsgInvalidJSON, readErr.Message)
	})

	t.Run("network failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		c, err := New(srv.URL, StaticTokenSource(""))
		require.NoError(t, err)

		_, err = c.ListPosts(context.Background(), "asc")
		var readErr *ReadError
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, MsgNetworkError, readErr.Message)
	})
}

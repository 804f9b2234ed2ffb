package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkadys/soundclub/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeTokens implements TokenSource in memory.
type fakeTokens struct {
	token       string
	tokenErr    error
	invalidated int
}

func (f *fakeTokens) Token(ctx context.Context) (string, error) {
	return f.token, f.tokenErr
}

func (f *fakeTokens) Invalidate(ctx context.Context) error {
	f.invalidated++
	f.token = ""
	return nil
}

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/api", tokens, testLogger())
	require.NoError(t, err)
	return c
}

func TestClient_AttachesBearerWhenTokenPresent(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})
	c := newTestClient(t, handler, &fakeTokens{token: "tok-123"})

	_, err := c.ListTags(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoAuthorizationHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	})
	c := newTestClient(t, handler, &fakeTokens{})

	_, err := c.ListTags(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
	require.False(t, hadHeader)
}

func TestClient_UnauthorizedWithTokenInvalidatesSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"token expired"}`))
	})
	tokens := &fakeTokens{token: "stale"}
	c := newTestClient(t, handler, tokens)

	_, err := c.ListTags(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	require.True(t, apiErr.Unauthorized())
	require.Equal(t, "token expired", apiErr.Message)
	require.Equal(t, 1, tokens.invalidated)
}

func TestClient_UnauthorizedWithoutTokenKeepsSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"auth required"}`))
	})
	tokens := &fakeTokens{}
	c := newTestClient(t, handler, tokens)

	_, err := c.ListTags(context.Background())
	require.Error(t, err)
	require.Zero(t, tokens.invalidated)
}

func TestClient_OtherErrorsPassThroughUntouched(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"库存不足"}`))
	})
	tokens := &fakeTokens{token: "tok"}
	c := newTestClient(t, handler, tokens)

	err := c.CartAdd(context.Background(), "SKU-1", 2)
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "库存不足", apiErr.Message)
	require.Equal(t, "库存不足", ServerMessage(err))
	require.Zero(t, tokens.invalidated)
}

func TestClient_UploadImageSendsMultipartFileField(t *testing.T) {
	var field, filename, content string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for name, headers := range r.MultipartForm.File {
			field = name
			filename = headers[0].Filename
			f, err := headers[0].Open()
			require.NoError(t, err)
			data, err := io.ReadAll(f)
			require.NoError(t, err)
			content = string(data)
		}
		_, _ = w.Write([]byte(`{"id":7,"file":"/media/posts/images/pic.png"}`))
	})
	c := newTestClient(t, handler, &fakeTokens{token: "tok"})

	img, err := c.UploadImage(context.Background(), "pic.png", []byte("png-bytes"))
	require.NoError(t, err)
	require.EqualValues(t, 7, img.ID)
	require.Equal(t, "file", field)
	require.Equal(t, "pic.png", filename)
	require.Equal(t, "png-bytes", content)
}

func TestClient_UploadAvatarSendsAvatarField(t *testing.T) {
	var field string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for name := range r.MultipartForm.File {
			field = name
		}
		_, _ = w.Write([]byte(`{"message":"ok","user":{"id":1,"username":"alice"}}`))
	})
	c := newTestClient(t, handler, &fakeTokens{token: "tok"})

	profile, err := c.UploadAvatar(context.Background(), "me.png", []byte("png"))
	require.NoError(t, err)
	require.Equal(t, "avatar", field)
	require.Equal(t, "alice", profile.Username)
}

func TestClient_NilTokenSourceSendsAnonymousRequests(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/api", nil, testLogger())
	require.NoError(t, err)

	_, err = c.ListArtists(context.Background(), nil)
	require.NoError(t, err)
}

func TestClient_BuildURLKeepsBasePath(t *testing.T) {
	var gotPath, gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})
	c := newTestClient(t, handler, &fakeTokens{})

	_, _, err := c.ListPosts(context.Background(), map[string][]string{"page": {"2"}})
	require.NoError(t, err)
	require.Equal(t, "/api/forum/posts/", gotPath)
	require.Equal(t, "page=2", gotQuery)
}

func TestNewClient_RejectsEmptyBaseURL(t *testing.T) {
	_, err := NewClient("   ", nil, testLogger())
	require.Error(t, err)
}

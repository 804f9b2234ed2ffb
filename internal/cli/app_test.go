package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkadys/soundclub/internal/config"
	"github.com/arkadys/soundclub/internal/logging"
)

func stubInputs(t *testing.T, lines []string, password string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func newTestApp(t *testing.T, handler http.Handler) *App {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		ServerBaseURL: srv.URL + "/api",
		SessionDBPath: filepath.Join(t.TempDir(), "session.db"),
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	app, err := NewApp(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.bridge.Close() })
	return app
}

func TestLogin_InstallsSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login/" {
			http.NotFound(w, r)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		require.Equal(t, "alice", body["username"])
		require.Equal(t, "s3cret", body["password"])

		_, _ = w.Write([]byte(`{"message":"ok","access":"tok-access","refresh":"tok-refresh",
			"user":{"id":1,"username":"alice","email":"alice@example.com"}}`))
	})
	app := newTestApp(t, handler)

	restore := stubInputs(t, []string{"alice"}, "s3cret")
	defer restore()

	app.login(context.Background())

	require.True(t, app.isLoggedIn())
	require.Equal(t, "alice", app.user.Username())
}

func TestLogin_FailureStaysLoggedOut(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid credentials"}`, http.StatusBadRequest)
	})
	app := newTestApp(t, handler)

	restore := stubInputs(t, []string{"alice"}, "wrong")
	defer restore()

	app.login(context.Background())

	require.False(t, app.isLoggedIn())
}

func TestRegister_SendsCredentials(t *testing.T) {
	var got map[string]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/register/" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"id":7,"username":"bob"}`))
	})
	app := newTestApp(t, handler)

	restore := stubInputs(t, []string{"bob", "bob@example.com"}, "hunter2")
	defer restore()

	app.register(context.Background())

	require.Equal(t, "bob", got["username"])
	require.Equal(t, "bob@example.com", got["email"])
	require.Equal(t, "hunter2", got["password"])
	require.False(t, app.isLoggedIn())
}

func TestLogout_ClearsSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok","access":"tok","refresh":"ref",
			"user":{"id":1,"username":"alice","email":"a@example.com"}}`))
	})
	app := newTestApp(t, handler)

	restore := stubInputs(t, []string{"alice"}, "s3cret")
	defer restore()

	app.login(context.Background())
	require.True(t, app.isLoggedIn())

	app.logout(context.Background())
	require.False(t, app.isLoggedIn())
}

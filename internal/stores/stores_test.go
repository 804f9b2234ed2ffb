package stores

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkadys/soundclub/internal/api"
	"github.com/arkadys/soundclub/internal/logging"
	"github.com/arkadys/soundclub/internal/models"
	"github.com/arkadys/soundclub/internal/session"

	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newBridge(t *testing.T) *session.Bridge {
	t.Helper()
	bridge, err := session.Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bridge.Close() })
	return bridge
}

// newEnv wires a transport against a test backend, sharing one session bridge
// between the transport and the user container, the way the application
// assembles them.
func newEnv(t *testing.T, handler http.Handler) (*api.Client, *session.Bridge) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	bridge := newBridge(t)
	client, err := api.NewClient(srv.URL+"/api", bridge, testLogger())
	require.NoError(t, err)
	return client, bridge
}

func newUser(t *testing.T, client *api.Client, bridge *session.Bridge) *User {
	t.Helper()
	user, err := NewUser(context.Background(), client, bridge, testLogger())
	require.NoError(t, err)
	return user
}

func loggedIn(t *testing.T, client *api.Client, bridge *session.Bridge) *User {
	t.Helper()
	user := newUser(t, client, bridge)
	profile := models.Profile{ID: 1, Username: "alice", Email: "alice@example.com"}
	require.NoError(t, user.Login(context.Background(), profile, "tok-test"))
	return user
}

func TestNotifier_SubscribeNotifyCancel(t *testing.T) {
	var n notifier
	calls := 0
	cancel := n.Subscribe(func() { calls++ })

	n.notify()
	n.notify()
	require.Equal(t, 2, calls)

	cancel()
	n.notify()
	require.Equal(t, 2, calls)
}

func TestNotifier_MultipleSubscribers(t *testing.T) {
	var n notifier
	a, b := 0, 0
	n.Subscribe(func() { a++ })
	n.Subscribe(func() { b++ })

	n.notify()
	require.Equal(t, 1, a)
	require.Equal(t, 1, b)
}

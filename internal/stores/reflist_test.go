package stores

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

type refBackend struct {
	bodies   map[string]string
	failPath string
}

func (b *refBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == b.failPath {
			http.Error(w, `{"error":"unavailable"}`, http.StatusInternalServerError)
			return
		}
		body, ok := b.bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	})
}

func TestRefList_FetchReplacesWholesale(t *testing.T) {
	backend := &refBackend{bodies: map[string]string{
		"/api/artists/": `[{"id":1,"name":"Mono"},{"id":2,"name":"Toe"}]`,
	}}
	client, _ := newEnv(t, backend.handler())
	artists := NewArtists(client, testLogger())

	require.NoError(t, artists.Fetch(context.Background(), nil))
	require.Len(t, artists.Items(), 2)

	backend.bodies["/api/artists/"] = `[{"id":3,"name":"Envy"}]`
	require.NoError(t, artists.Fetch(context.Background(), nil))
	require.Len(t, artists.Items(), 1)
	require.Equal(t, "Envy", artists.Items()[0].Name)
}

func TestRefList_FetchFailureKeepsPriorList(t *testing.T) {
	backend := &refBackend{bodies: map[string]string{
		"/api/notices/": `[{"id":1,"title":"maintenance"}]`,
	}}
	client, _ := newEnv(t, backend.handler())
	notices := NewNotices(client, testLogger())

	require.NoError(t, notices.Fetch(context.Background(), nil))
	require.Len(t, notices.Items(), 1)

	backend.failPath = "/api/notices/"
	require.Error(t, notices.Fetch(context.Background(), nil))
	require.Len(t, notices.Items(), 1)
	require.Equal(t, "maintenance", notices.Items()[0].Title)
}

func TestRefList_FetchUnwrapsEnvelope(t *testing.T) {
	backend := &refBackend{bodies: map[string]string{
		"/api/music/": `{"count":1,"next":null,"previous":null,"results":[{"id":7,"title":"Yearning"}]}`,
	}}
	client, _ := newEnv(t, backend.handler())
	tracks := NewTracks(client, testLogger())

	require.NoError(t, tracks.Fetch(context.Background(), nil))
	require.Len(t, tracks.Items(), 1)
	require.Equal(t, "Yearning", tracks.Items()[0].Title)
}

func TestRefList_FetchPassesQuery(t *testing.T) {
	var gotQuery url.Values
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	})
	client, _ := newEnv(t, handler)
	videos := NewVideos(client, testLogger())

	query := url.Values{"video_type": {"mv"}}
	require.NoError(t, videos.Fetch(context.Background(), query))
	require.Equal(t, "mv", gotQuery.Get("video_type"))
}

func TestRefList_NotifiesOnFetch(t *testing.T) {
	backend := &refBackend{bodies: map[string]string{
		"/api/albums/": `[{"id":1,"name":"For Long Tomorrow"}]`,
	}}
	client, _ := newEnv(t, backend.handler())
	albums := NewAlbums(client, testLogger())

	fired := 0
	cancel := albums.Subscribe(func() { fired++ })
	defer cancel()

	require.NoError(t, albums.Fetch(context.Background(), nil))
	require.Equal(t, 1, fired)
}

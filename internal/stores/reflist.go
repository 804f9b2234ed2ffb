package stores

import (
	"context"
	"net/url"

	"github.com/arkadys/soundclub/internal/api"
	"github.com/arkadys/soundclub/internal/logging"
	"github.com/arkadys/soundclub/internal/models"
)

// RefList is the uniform shape of the read-mostly reference containers
// (artists, albums, tracks, notices, videos): one list, one fetch that
// replaces it wholesale. A failed fetch keeps the previous list.
type RefList[T any] struct {
	notifier
	fetch func(ctx context.Context, query url.Values) ([]T, error)
	log   logging.Logger

	items []T
}

func newRefList[T any](name string, fetch func(ctx context.Context, query url.Values) ([]T, error), log logging.Logger) *RefList[T] {
	return &RefList[T]{fetch: fetch, log: log.With("store", name)}
}

func (r *RefList[T]) Items() []T { return r.items }

// Fetch reloads the list.
func (r *RefList[T]) Fetch(ctx context.Context, query url.Values) error {
	items, err := r.fetch(ctx, query)
	if err != nil {
		r.log.Error(ctx, "reference list fetch failed", "error", err)
		return err
	}
	r.items = items
	r.notify()
	return nil
}

func NewArtists(client *api.Client, log logging.Logger) *RefList[models.Artist] {
	return newRefList("artists", client.ListArtists, log)
}

func NewAlbums(client *api.Client, log logging.Logger) *RefList[models.Album] {
	return newRefList("albums", client.ListAlbums, log)
}

func NewTracks(client *api.Client, log logging.Logger) *RefList[models.Track] {
	return newRefList("music", client.ListTracks, log)
}

func NewNotices(client *api.Client, log logging.Logger) *RefList[models.Notice] {
	return newRefList("notices", client.ListNotices, log)
}

func NewVideos(client *api.Client, log logging.Logger) *RefList[models.Video] {
	return newRefList("videos", client.ListVideos, log)
}

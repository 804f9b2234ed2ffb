package api

import (
	"context"
	"net/url"

	"github.com/arkadys/soundclub/internal/models"
)

func (c *Client) ListArtists(ctx context.Context, query url.Values) ([]models.Artist, error) {
	artists, _, err := list[models.Artist](ctx, c, "/artists/", query)
	return artists, err
}

func (c *Client) ListAlbums(ctx context.Context, query url.Values) ([]models.Album, error) {
	albums, _, err := list[models.Album](ctx, c, "/albums/", query)
	return albums, err
}

func (c *Client) ListTracks(ctx context.Context, query url.Values) ([]models.Track, error) {
	tracks, _, err := list[models.Track](ctx, c, "/music/", query)
	return tracks, err
}

func (c *Client) ListNotices(ctx context.Context, query url.Values) ([]models.Notice, error) {
	notices, _, err := list[models.Notice](ctx, c, "/notices/", query)
	return notices, err
}

func (c *Client) ListVideos(ctx context.Context, query url.Values) ([]models.Video, error) {
	videos, _, err := list[models.Video](ctx, c, "/videos/", query)
	return videos, err
}

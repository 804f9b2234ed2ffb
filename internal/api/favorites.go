package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/arkadys/soundclub/internal/models"
)

// favoritesPageSize asks for the whole favorites list in one page; the
// original client never paginates favorites.
const favoritesPageSize = "1000"

func (c *Client) TogglePostFavorite(ctx context.Context, postID int64) (*models.FavoriteStatus, error) {
	var status models.FavoriteStatus
	path := fmt.Sprintf("/posts/%d/favorite/", postID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) CheckPostFavorite(ctx context.Context, postID int64) (*models.FavoriteStatus, error) {
	var status models.FavoriteStatus
	path := fmt.Sprintf("/posts/%d/check-favorite/", postID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) ListPostFavorites(ctx context.Context) ([]models.PostFavorite, error) {
	query := url.Values{"page_size": []string{favoritesPageSize}}
	favorites, _, err := list[models.PostFavorite](ctx, c, "/post-favorites/", query)
	return favorites, err
}

func (c *Client) RemovePostFavorite(ctx context.Context, favoriteID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/post-favorites/%d/", favoriteID), nil, nil, nil)
}

func (c *Client) ToggleProductFavorite(ctx context.Context, productID int64) (*models.FavoriteStatus, error) {
	var status models.FavoriteStatus
	path := fmt.Sprintf("/products/%d/favorite/", productID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) CheckProductFavorite(ctx context.Context, productID int64) (*models.FavoriteStatus, error) {
	var status models.FavoriteStatus
	path := fmt.Sprintf("/products/%d/check-favorite/", productID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) ListProductFavorites(ctx context.Context) ([]models.ProductFavorite, error) {
	query := url.Values{"page_size": []string{favoritesPageSize}}
	favorites, _, err := list[models.ProductFavorite](ctx, c, "/product-favorites/", query)
	return favorites, err
}

func (c *Client) RemoveProductFavorite(ctx context.Context, favoriteID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/product-favorites/%d/", favoriteID), nil, nil, nil)
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/arkadys/soundclub/internal/models"
)

// ListSPUs fetches one catalog page. Supported query keys: page, page_size,
// search, category.
func (c *Client) ListSPUs(ctx context.Context, query url.Values) ([]models.SPU, *Page[models.SPU], error) {
	return list[models.SPU](ctx, c, "/spu/", query)
}

func (c *Client) GetSPU(ctx context.Context, id int64) (*models.SPU, error) {
	var spu models.SPU
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/spu/%d/", id), nil, nil, &spu); err != nil {
		return nil, err
	}
	return &spu, nil
}

// ListSKUs fetches the purchasable variants of an SPU, stock included.
func (c *Client) ListSKUs(ctx context.Context, spuID int64) ([]models.SKU, error) {
	skus, _, err := list[models.SKU](ctx, c, fmt.Sprintf("/spu/%d/skus/", spuID), nil)
	return skus, err
}

func (c *Client) ListReviews(ctx context.Context, spuID int64) ([]models.Review, error) {
	reviews, _, err := list[models.Review](ctx, c, fmt.Sprintf("/spu/%d/reviews/", spuID), nil)
	return reviews, err
}

func (c *Client) CreateReview(ctx context.Context, spuID int64, content string, rating int) (*models.Review, error) {
	body := map[string]any{"spu": spuID, "content": content, "rating": rating}
	var review models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews/", nil, body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d/", id), nil, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, _, err := list[models.Category](ctx, c, "/categories/", nil)
	return categories, err
}

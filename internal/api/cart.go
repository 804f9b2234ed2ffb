package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/arkadys/soundclub/internal/models"
)

// CartItems fetches the full cart. The endpoint answers with either a bare
// array or a pagination envelope depending on server configuration; both are
// normalized to a plain slice here.
func (c *Client) CartItems(ctx context.Context) ([]models.CartItem, error) {
	items, _, err := list[models.CartItem](ctx, c, "/cart/", nil)
	return items, err
}

// CartAdd puts quantity units of a SKU into the cart. Stock checking and line
// pricing happen server-side.
func (c *Client) CartAdd(ctx context.Context, skuCode string, quantity int) error {
	body := map[string]any{"sku_code": skuCode, "quantity": quantity}
	return c.do(ctx, http.MethodPost, "/cart-add/", nil, body, nil)
}

func (c *Client) CartUpdate(ctx context.Context, itemID int64, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/cart-update/%d/", itemID), nil, body, nil)
}

func (c *Client) CartRemove(ctx context.Context, itemID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart-remove/%d/", itemID), nil, nil, nil)
}

func (c *Client) CartBatchRemove(ctx context.Context, itemIDs []int64) error {
	body := map[string][]int64{"cart_item_ids": itemIDs}
	return c.do(ctx, http.MethodPost, "/cart-batch-remove/", nil, body, nil)
}

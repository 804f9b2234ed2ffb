package stores

import (
	"context"
	"fmt"
	"strconv"

	"github.com/arkadys/soundclub/internal/api"
	"github.com/arkadys/soundclub/internal/logging"
	"github.com/arkadys/soundclub/internal/models"
)

// Cart owns the cart item list. The server is the sole authority on line
// totals and stock, so every successful mutation re-fetches the whole cart
// instead of patching locally.
type Cart struct {
	notifier
	client *api.Client
	user   *User
	log    logging.Logger

	items   []models.CartItem
	loading bool
}

// NewCart builds the cart container. user is read (never written) to gate
// actions on login state.
func NewCart(client *api.Client, user *User, log logging.Logger) *Cart {
	return &Cart{client: client, user: user, log: log.With("store", "cart")}
}

// Items returns the current item list.
func (c *Cart) Items() []models.CartItem { return c.items }

// Loading reports whether a fetch is in flight. Advisory for UI only.
func (c *Cart) Loading() bool { return c.loading }

// TotalItems sums the quantities of all items.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums the server-computed line totals, rendered with two decimal
// digits. Unparsable line totals count as zero rather than poisoning the sum.
func (c *Cart) TotalPrice() string {
	total := 0.0
	for _, item := range c.items {
		price, err := strconv.ParseFloat(item.TotalPrice, 64)
		if err != nil {
			c.log.Warn(context.Background(), "unparsable line total", "item", item.ID, "total_price", item.TotalPrice)
			continue
		}
		total += price
	}
	return fmt.Sprintf("%.2f", total)
}

// Fetch reloads the cart from the server. Logged out, the cart is simply
// cleared without a request. A failed request keeps the previous items.
func (c *Cart) Fetch(ctx context.Context) error {
	if !c.user.IsLoggedIn() {
		c.items = nil
		c.notify()
		return nil
	}

	c.loading = true
	c.notify()
	defer func() {
		c.loading = false
		c.notify()
	}()

	items, err := c.client.CartItems(ctx)
	if err != nil {
		c.log.Error(ctx, "cart fetch failed", "error", err)
		return err
	}

	c.items = items
	c.log.Debug(ctx, "cart refreshed", "items", len(items))
	return nil
}

// Add puts quantity units of a SKU into the cart, then re-fetches.
func (c *Cart) Add(ctx context.Context, skuCode string, quantity int) error {
	if !c.user.IsLoggedIn() {
		return ErrNotLoggedIn
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if err := c.client.CartAdd(ctx, skuCode, quantity); err != nil {
		c.log.Error(ctx, "cart add failed", "sku", skuCode, "error", err)
		return err
	}
	return c.Fetch(ctx)
}

// UpdateQuantity sets an item's quantity. Quantities below 1 are rejected
// locally, without a request.
func (c *Cart) UpdateQuantity(ctx context.Context, itemID int64, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if err := c.client.CartUpdate(ctx, itemID, quantity); err != nil {
		c.log.Error(ctx, "cart update failed", "item", itemID, "error", err)
		return err
	}
	return c.Fetch(ctx)
}

// Remove deletes one item, then re-fetches.
func (c *Cart) Remove(ctx context.Context, itemID int64) error {
	if err := c.client.CartRemove(ctx, itemID); err != nil {
		c.log.Error(ctx, "cart remove failed", "item", itemID, "error", err)
		return err
	}
	return c.Fetch(ctx)
}

// BatchRemove deletes several items in one call. An empty id set is a no-op.
func (c *Cart) BatchRemove(ctx context.Context, itemIDs []int64) error {
	if len(itemIDs) == 0 {
		return nil
	}

	if err := c.client.CartBatchRemove(ctx, itemIDs); err != nil {
		c.log.Error(ctx, "cart batch remove failed", "items", len(itemIDs), "error", err)
		return err
	}
	return c.Fetch(ctx)
}

package stores

import (
	"context"
	"net/url"
	"strconv"

	"github.com/arkadys/soundclub/internal/api"
	"github.com/arkadys/soundclub/internal/logging"
	"github.com/arkadys/soundclub/internal/models"
)

// DefaultProductPageSize matches the catalog page size the views render.
const DefaultProductPageSize = 20

// Products owns one page of the catalog plus its pagination bookkeeping.
type Products struct {
	notifier
	client *api.Client
	user   *User
	cart   *Cart
	log    logging.Logger

	items       []models.SPU
	searchQuery string
	currentPage int
	totalPages  int
	totalCount  int
	pageSize    int
	loading     bool
}

// NewProducts builds the catalog container. Cart mutations are delegated to
// the shared cart container so there is a single cart code path.
func NewProducts(client *api.Client, user *User, cart *Cart, log logging.Logger) *Products {
	return &Products{
		client:      client,
		user:        user,
		cart:        cart,
		log:         log.With("store", "products"),
		currentPage: 1,
		totalPages:  1,
		pageSize:    DefaultProductPageSize,
	}
}

func (p *Products) Items() []models.SPU { return p.items }
func (p *Products) SearchQuery() string { return p.searchQuery }
func (p *Products) CurrentPage() int    { return p.currentPage }
func (p *Products) TotalPages() int     { return p.totalPages }
func (p *Products) TotalCount() int     { return p.totalCount }
func (p *Products) PageSize() int       { return p.pageSize }
func (p *Products) Loading() bool       { return p.loading }

// Fetch loads one catalog page. Empty search/category are omitted from the
// query entirely rather than sent as empty values. currentPage only advances
// on success.
func (p *Products) Fetch(ctx context.Context, page int, search, category string) error {
	if page < 1 {
		page = 1
	}

	p.loading = true
	p.notify()
	defer func() {
		p.loading = false
		p.notify()
	}()

	query := url.Values{
		"page":      []string{strconv.Itoa(page)},
		"page_size": []string{strconv.Itoa(p.pageSize)},
	}
	if search != "" {
		query.Set("search", search)
	}
	if category != "" {
		query.Set("category", category)
	}

	items, envelope, err := p.client.ListSPUs(ctx, query)
	if err != nil {
		p.log.Error(ctx, "catalog fetch failed", "page", page, "error", err)
		return err
	}

	p.items = items
	p.currentPage = page
	if envelope != nil {
		p.totalCount = envelope.Count
	} else {
		p.totalCount = len(items)
	}
	p.totalPages = ceilDiv(p.totalCount, p.pageSize)
	p.log.Debug(ctx, "catalog page loaded", "page", page, "items", len(items), "total", p.totalCount)
	return nil
}

// Search remembers the query and fetches its first page.
func (p *Products) Search(ctx context.Context, query string) error {
	p.searchQuery = query
	return p.Fetch(ctx, 1, query, "")
}

// ToggleFavorite flips the favorite relation of the given product and patches
// its is_favorited flag in place with the server's answer. This is the one
// action that does not re-fetch.
func (p *Products) ToggleFavorite(ctx context.Context, productID int64) error {
	if !p.user.IsLoggedIn() {
		return ErrNotLoggedIn
	}

	status, err := p.client.ToggleProductFavorite(ctx, productID)
	if err != nil {
		p.log.Error(ctx, "favorite toggle failed", "product", productID, "error", err)
		return err
	}

	for i := range p.items {
		if p.items[i].ID == productID {
			p.items[i].IsFavorited = status.IsFavorited
			break
		}
	}
	p.notify()
	return nil
}

// SKUs fetches the purchasable variants of a product; the result is returned
// to the caller, not held in the container.
func (p *Products) SKUs(ctx context.Context, spuID int64) ([]models.SKU, error) {
	skus, err := p.client.ListSKUs(ctx, spuID)
	if err != nil {
		p.log.Error(ctx, "sku fetch failed", "spu", spuID, "error", err)
		return nil, err
	}
	return skus, nil
}

// AddToCart delegates to the cart container, sharing its gating, mutation and
// re-fetch semantics.
func (p *Products) AddToCart(ctx context.Context, skuCode string, quantity int) error {
	return p.cart.Add(ctx, skuCode, quantity)
}

func ceilDiv(count, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

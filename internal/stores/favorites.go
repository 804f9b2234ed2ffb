package stores

import (
	"context"

	"github.com/arkadys/soundclub/internal/api"
	"github.com/arkadys/soundclub/internal/logging"
	"github.com/arkadys/soundclub/internal/models"
)

// Favorites holds the user's favorite-post and favorite-product lists. These
// lists are fetched independently of the is_favorited flags embedded in posts
// and products and are not kept in sync with them automatically.
type Favorites struct {
	notifier
	client *api.Client
	user   *User
	log    logging.Logger

	posts    []models.PostFavorite
	products []models.ProductFavorite
}

func NewFavorites(client *api.Client, user *User, log logging.Logger) *Favorites {
	return &Favorites{client: client, user: user, log: log.With("store", "favorites")}
}

func (f *Favorites) Posts() []models.PostFavorite       { return f.posts }
func (f *Favorites) Products() []models.ProductFavorite { return f.products }

// FetchPosts reloads the favorite-post list. Requires login; a failed request
// keeps the previous list.
func (f *Favorites) FetchPosts(ctx context.Context) error {
	if !f.user.IsLoggedIn() {
		return ErrNotLoggedIn
	}

	favorites, err := f.client.ListPostFavorites(ctx)
	if err != nil {
		f.log.Error(ctx, "post favorites fetch failed", "error", err)
		return err
	}
	f.posts = favorites
	f.notify()
	return nil
}

// RemovePost deletes one favorite relation and splices it out locally.
func (f *Favorites) RemovePost(ctx context.Context, favoriteID int64) error {
	if err := f.client.RemovePostFavorite(ctx, favoriteID); err != nil {
		f.log.Error(ctx, "post favorite remove failed", "favorite", favoriteID, "error", err)
		return err
	}

	kept := f.posts[:0]
	for _, favorite := range f.posts {
		if favorite.ID != favoriteID {
			kept = append(kept, favorite)
		}
	}
	f.posts = kept
	f.notify()
	return nil
}

// FetchProducts reloads the favorite-product list.
func (f *Favorites) FetchProducts(ctx context.Context) error {
	if !f.user.IsLoggedIn() {
		return ErrNotLoggedIn
	}

	favorites, err := f.client.ListProductFavorites(ctx)
	if err != nil {
		f.log.Error(ctx, "product favorites fetch failed", "error", err)
		return err
	}
	f.products = favorites
	f.notify()
	return nil
}

// RemoveProduct deletes one favorite relation and splices it out locally.
func (f *Favorites) RemoveProduct(ctx context.Context, favoriteID int64) error {
	if err := f.client.RemoveProductFavorite(ctx, favoriteID); err != nil {
		f.log.Error(ctx, "product favorite remove failed", "favorite", favoriteID, "error", err)
		return err
	}

	kept := f.products[:0]
	for _, favorite := range f.products {
		if favorite.ID != favoriteID {
			kept = append(kept, favorite)
		}
	}
	f.products = kept
	f.notify()
	return nil
}

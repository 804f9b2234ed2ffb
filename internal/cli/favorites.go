package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/arkadys/soundclub/internal/api"
)

func (a *App) listFavoritePosts(ctx context.Context) {
	if err := a.favorites.FetchPosts(ctx); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	for _, favorite := range a.favorites.Posts() {
		var post struct {
			ID    int64  `json:"id"`
			Title string `json:"title"`
		}
		_ = json.Unmarshal(favorite.Post, &post)
		fmt.Printf("%4d  post %d: %s\n", favorite.ID, post.ID, post.Title)
	}
}

func (a *App) listFavoriteProducts(ctx context.Context) {
	if err := a.favorites.FetchProducts(ctx); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	for _, favorite := range a.favorites.Products() {
		fmt.Printf("%4d  product %d: %s\n", favorite.ID, favorite.Product.ID, favorite.Product.Name)
	}
}

func (a *App) toggleFavorite(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: fav <product-id>")
		return
	}
	productID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: fav <product-id>")
		return
	}

	if err := a.products.ToggleFavorite(ctx, productID); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	fmt.Println("Toggled")
}

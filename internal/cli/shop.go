package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/arkadys/soundclub/internal/api"
)

func (a *App) listProducts(ctx context.Context, args []string) {
	page := 1
	if len(args) > 0 {
		if parsed, err := strconv.Atoi(args[0]); err == nil && parsed > 0 {
			page = parsed
		}
	}

	if err := a.products.Fetch(ctx, page, a.products.SearchQuery(), ""); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}

	for _, spu := range a.products.Items() {
		fav := " "
		if spu.IsFavorited {
			fav = "*"
		}
		fmt.Printf("%s %4d  %-40s %s (%.1f, %d reviews)\n",
			fav, spu.ID, spu.Name, spu.Brand, spu.AverageRating, spu.ReviewCount)
	}
	fmt.Printf("page %d/%d, %d products\n",
		a.products.CurrentPage(), a.products.TotalPages(), a.products.TotalCount())
}

func (a *App) searchProducts(ctx context.Context, args []string) {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	if err := a.products.Search(ctx, query); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	a.listProducts(ctx, nil)
}

func (a *App) showProduct(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: product <product-id>")
		return
	}
	spuID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: product <product-id>")
		return
	}

	spu, err := a.client.GetSPU(ctx, spuID)
	if err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	fmt.Printf("%s (%s %s)\n", spu.Name, spu.Brand, spu.Series)
	if spu.Description != "" {
		fmt.Println(spu.Description)
	}
	fmt.Printf("rating %.1f over %d reviews\n", spu.AverageRating, spu.ReviewCount)

	reviews, err := a.client.ListReviews(ctx, spuID)
	if err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	for _, review := range reviews {
		fmt.Printf("  [%d/5] %s: %s\n", review.Rating, review.Username, review.Content)
	}
}

func (a *App) listSKUs(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: skus <product-id>")
		return
	}
	spuID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: skus <product-id>")
		return
	}

	skus, err := a.products.SKUs(ctx, spuID)
	if err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	for _, sku := range skus {
		fmt.Printf("%-20s %-30s %8s  stock %d\n", sku.SKUCode, sku.Title, sku.Price, sku.Stock)
	}
}

func (a *App) showCart(ctx context.Context) {
	if err := a.cart.Fetch(ctx); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return
	}

	for _, item := range a.cart.Items() {
		title := ""
		if item.SKU != nil {
			title = item.SKU.Title
		}
		fmt.Printf("%4d  %-30s x%d  %s\n", item.ID, title, item.Quantity, item.TotalPrice)
	}
	fmt.Printf("%d items, total %s\n", a.cart.TotalItems(), a.cart.TotalPrice())
}

func (a *App) cartAdd(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: cart-add <sku-code> [quantity]")
		return
	}
	quantity := 1
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Println("Usage: cart-add <sku-code> [quantity]")
			return
		}
		quantity = parsed
	}

	if err := a.cart.Add(ctx, args[0], quantity); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	fmt.Println("Added")
}

func (a *App) cartQuantity(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: cart-qty <item-id> <quantity>")
		return
	}
	itemID, err1 := strconv.ParseInt(args[0], 10, 64)
	quantity, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println("Usage: cart-qty <item-id> <quantity>")
		return
	}

	if err := a.cart.UpdateQuantity(ctx, itemID, quantity); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	fmt.Println("Updated")
}

func (a *App) cartRemove(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: cart-rm <item-id> [item-id...]")
		return
	}

	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Println("Usage: cart-rm <item-id> [item-id...]")
			return
		}
		ids = append(ids, id)
	}

	var err error
	if len(ids) == 1 {
		err = a.cart.Remove(ctx, ids[0])
	} else {
		err = a.cart.BatchRemove(ctx, ids)
	}
	if err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	fmt.Println("Removed")
}

func (a *App) addReview(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: review <product-id> <rating 1-5>")
		return
	}
	spuID, err1 := strconv.ParseInt(args[0], 10, 64)
	rating, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || rating < 1 || rating > 5 {
		fmt.Println("Usage: review <product-id> <rating 1-5>")
		return
	}

	content, err := GetMultiline(a.reader, "Enter review", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if _, err := a.client.CreateReview(ctx, spuID, content, rating); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	fmt.Println("Review published")
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Username())
}

// Root runs the interactive command loop until EOF or an explicit exit.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to SoundClub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("sc %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Account:  whoami, bio, avatar, logout, delete-account")
				fmt.Println("Shop:     products, product, search, skus, cart, cart-add, cart-qty, cart-rm, review")
				fmt.Println("Forum:    posts, post, reply, reply-rm, tags")
				fmt.Println("Media:    artists, albums, music, notices, videos")
				fmt.Println("Likes:    fav-posts, fav-products, fav")
				fmt.Println("Other:    exit")
			} else {
				fmt.Println("Available commands: register, login, products, search, posts, tags, artists, albums, music, notices, videos, exit")
			}

		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami()
		case "bio":
			a.updateBio(ctx)
		case "avatar":
			a.uploadAvatar(ctx)
		case "delete-account":
			a.deleteAccount(ctx)

		case "products":
			a.listProducts(ctx, args)
		case "product":
			a.showProduct(ctx, args)
		case "search":
			a.searchProducts(ctx, args)
		case "skus":
			a.listSKUs(ctx, args)
		case "cart":
			a.showCart(ctx)
		case "cart-add":
			a.cartAdd(ctx, args)
		case "cart-qty":
			a.cartQuantity(ctx, args)
		case "cart-rm":
			a.cartRemove(ctx, args)
		case "review":
			a.addReview(ctx, args)

		case "posts":
			a.listPosts(ctx, args)
		case "post":
			a.createPost(ctx)
		case "reply":
			a.createReply(ctx, args)
		case "reply-rm":
			a.deleteReply(ctx, args)
		case "tags":
			a.listTags(ctx)

		case "artists":
			a.listRef(ctx, "artists")
		case "albums":
			a.listRef(ctx, "albums")
		case "music":
			a.listRef(ctx, "music")
		case "notices":
			a.listRef(ctx, "notices")
		case "videos":
			a.listRef(ctx, "videos")

		case "fav-posts":
			a.listFavoritePosts(ctx)
		case "fav-products":
			a.listFavoriteProducts(ctx)
		case "fav":
			a.toggleFavorite(ctx, args)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}

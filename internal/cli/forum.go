package cli

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"

	"github.com/arkadys/soundclub/internal/api"
	"github.com/arkadys/soundclub/internal/models"
)

func (a *App) listPosts(ctx context.Context, args []string) {
	query := url.Values{}
	if len(args) > 0 {
		if _, err := strconv.Atoi(args[0]); err == nil {
			query.Set("page", args[0])
		}
	}

	if err := a.posts.Fetch(ctx, query); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}

	for _, post := range a.posts.Items() {
		fmt.Printf("%4d  %-50s by %s (%d replies)\n",
			post.ID, post.Title, post.Author.Name, len(post.Replies))
	}
	p := a.posts.Pagination()
	fmt.Printf("page %d/%d, %d posts\n", p.CurrentPage, p.TotalPages, p.Count)
}

func (a *App) createPost(ctx context.Context) {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	post, err := a.posts.Create(ctx, models.PostDraft{Title: title, Content: content})
	if err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	fmt.Printf("Published post %d\n", post.ID)
}

func (a *App) createReply(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: reply <post-id>")
		return
	}
	postID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: reply <post-id>")
		return
	}

	content, err := GetMultiline(a.reader, "Enter reply", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if _, err := a.posts.CreateReply(ctx, postID, content, nil); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	fmt.Println("Replied")
}

func (a *App) deleteReply(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: reply-rm <reply-id>")
		return
	}
	replyID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: reply-rm <reply-id>")
		return
	}

	if err := a.posts.DeleteReply(ctx, replyID); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	fmt.Println("Deleted")
}

func (a *App) listTags(ctx context.Context) {
	if err := a.posts.FetchTags(ctx); err != nil {
		log.Println(api.ServerMessage(err))
		return
	}
	for _, tag := range a.posts.Tags() {
		fmt.Printf("%4d  %s\n", tag.ID, tag.Name)
	}
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/arkadys/soundclub/internal/models"
)

// ListPosts fetches one page of forum posts. The page is nil when the server
// answered with a bare array.
func (c *Client) ListPosts(ctx context.Context, query url.Values) ([]models.Post, *Page[models.Post], error) {
	return list[models.Post](ctx, c, "/forum/posts/", query)
}

// CreatePost publishes a new post and returns the server's copy of it.
func (c *Client) CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPost, "/forum/posts/", nil, draft, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost replaces a post and returns the updated entity.
func (c *Client) UpdatePost(ctx context.Context, id int64, draft models.PostDraft) (*models.Post, error) {
	var post models.Post
	path := fmt.Sprintf("/forum/posts/%d/", id)
	if err := c.do(ctx, http.MethodPut, path, nil, draft, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/forum/posts/%d/", id), nil, nil, nil)
}

func (c *Client) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags, _, err := list[models.Tag](ctx, c, "/forum/tags/", nil)
	return tags, err
}

// UploadImage uploads a single post image; the returned id is referenced from
// a later CreatePost call via ImageIDs.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (*models.Image, error) {
	var img models.Image
	if err := c.upload(ctx, "/forum/images/", "file", filename, data, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

// ListReplies fetches the replies of one post.
func (c *Client) ListReplies(ctx context.Context, postID int64) ([]models.Reply, error) {
	query := url.Values{"post": []string{strconv.FormatInt(postID, 10)}}
	replies, _, err := list[models.Reply](ctx, c, "/forum/replies/", query)
	return replies, err
}

// CreateReply posts a reply; parentID is non-nil for a nested reply.
func (c *Client) CreateReply(ctx context.Context, postID int64, content string, parentID *int64) (*models.Reply, error) {
	body := map[string]any{"post": postID, "content": content}
	if parentID != nil {
		body["parent"] = *parentID
	}
	var reply models.Reply
	if err := c.do(ctx, http.MethodPost, "/forum/replies/", nil, body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) DeleteReply(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/forum/replies/%d/", id), nil, nil, nil)
}

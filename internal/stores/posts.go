package stores

import (
	"context"
	"net/url"
	"strconv"

	"github.com/arkadys/soundclub/internal/api"
	"github.com/arkadys/soundclub/internal/logging"
	"github.com/arkadys/soundclub/internal/models"
)

// Pagination mirrors the last successfully fetched post page.
type Pagination struct {
	Count       int
	Next        *string
	Previous    *string
	CurrentPage int
	TotalPages  int
}

// ImageFile is one file of a batch upload.
type ImageFile struct {
	Name string
	Data []byte
}

// Posts owns the forum state: the post list with embedded replies, the
// available tags, and pagination.
type Posts struct {
	notifier
	client *api.Client
	log    logging.Logger

	posts      []models.Post
	tags       []models.Tag
	pagination Pagination
}

func NewPosts(client *api.Client, log logging.Logger) *Posts {
	return &Posts{
		client:     client,
		log:        log.With("store", "posts"),
		pagination: Pagination{CurrentPage: 1, TotalPages: 1},
	}
}

func (s *Posts) Items() []models.Post   { return s.posts }
func (s *Posts) Tags() []models.Tag     { return s.tags }
func (s *Posts) Pagination() Pagination { return s.pagination }

// Fetch loads one page of posts. When the server answers with a pagination
// envelope, the total page count is derived from the page size actually in
// effect: an explicit page_size query wins; otherwise a full (non-last) page
// tells us the size, and on the last page the current page number is the
// total.
func (s *Posts) Fetch(ctx context.Context, query url.Values) error {
	posts, envelope, err := s.client.ListPosts(ctx, query)
	if err != nil {
		s.log.Error(ctx, "post fetch failed", "error", err)
		return err
	}

	page := 1
	if raw := query.Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	s.posts = posts
	if envelope == nil {
		s.pagination = Pagination{Count: len(posts), CurrentPage: 1, TotalPages: 1}
		s.notify()
		return nil
	}

	s.pagination = Pagination{
		Count:       envelope.Count,
		Next:        envelope.Next,
		Previous:    envelope.Previous,
		CurrentPage: page,
		TotalPages:  totalPages(envelope, query, page, len(posts)),
	}
	s.notify()
	return nil
}

func totalPages[T any](envelope *api.Page[T], query url.Values, page, got int) int {
	if raw := query.Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			return ceilDiv(envelope.Count, size)
		}
	}
	if envelope.Next == nil {
		// No further pages, so this page is the last one.
		if page < 1 {
			return 1
		}
		return page
	}
	if got > 0 {
		// Non-last pages are full, so their length is the page size.
		return ceilDiv(envelope.Count, got)
	}
	return 1
}

// FetchTags reloads the available tags; prior tags survive a failure.
func (s *Posts) FetchTags(ctx context.Context) error {
	tags, err := s.client.ListTags(ctx)
	if err != nil {
		s.log.Error(ctx, "tag fetch failed", "error", err)
		return err
	}
	s.tags = tags
	s.notify()
	return nil
}

// Create publishes a post and prepends the server's copy to the list, on the
// assumption that the server sorts newest-first.
func (s *Posts) Create(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	post, err := s.client.CreatePost(ctx, draft)
	if err != nil {
		s.log.Error(ctx, "post create failed", "error", err)
		return nil, err
	}

	s.posts = append([]models.Post{*post}, s.posts...)
	s.notify()
	return post, nil
}

// Update replaces the matching post in place. A post not held locally is left
// alone; the server-side update still happened.
func (s *Posts) Update(ctx context.Context, id int64, draft models.PostDraft) error {
	post, err := s.client.UpdatePost(ctx, id, draft)
	if err != nil {
		s.log.Error(ctx, "post update failed", "post", id, "error", err)
		return err
	}

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i] = *post
			break
		}
	}
	s.notify()
	return nil
}

// Delete removes the post locally only after the server confirms deletion.
func (s *Posts) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeletePost(ctx, id); err != nil {
		s.log.Error(ctx, "post delete failed", "post", id, "error", err)
		return err
	}

	kept := s.posts[:0]
	for _, post := range s.posts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	s.posts = kept
	s.notify()
	return nil
}

// UploadImage uploads one image and returns its server-assigned id.
func (s *Posts) UploadImage(ctx context.Context, filename string, data []byte) (int64, error) {
	img, err := s.client.UploadImage(ctx, filename, data)
	if err != nil {
		s.log.Error(ctx, "image upload failed", "file", filename, "error", err)
		return 0, err
	}
	return img.ID, nil
}

// UploadImages uploads the files one at a time, collecting ids in call order.
// The first failure aborts the batch: later files are not uploaded and no
// partial id list is returned.
func (s *Posts) UploadImages(ctx context.Context, files []ImageFile) ([]int64, error) {
	ids := make([]int64, 0, len(files))
	for _, file := range files {
		id, err := s.UploadImage(ctx, file.Name, file.Data)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CreateReply posts a reply and appends it to the owning post's reply list,
// when that post is held locally.
func (s *Posts) CreateReply(ctx context.Context, postID int64, content string, parentID *int64) (*models.Reply, error) {
	reply, err := s.client.CreateReply(ctx, postID, content, parentID)
	if err != nil {
		s.log.Error(ctx, "reply create failed", "post", postID, "error", err)
		return nil, err
	}

	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Replies = append(s.posts[i].Replies, *reply)
			break
		}
	}
	s.notify()
	return reply, nil
}

// FetchReplies returns one post's replies without touching container state;
// callers embed them where they need them.
func (s *Posts) FetchReplies(ctx context.Context, postID int64) ([]models.Reply, error) {
	replies, err := s.client.ListReplies(ctx, postID)
	if err != nil {
		s.log.Error(ctx, "reply fetch failed", "post", postID, "error", err)
		return nil, err
	}
	return replies, nil
}

// DeleteReply removes the reply from every post's reply list after the server
// confirms deletion. Only one post can own the reply, but the sweep is
// deliberately exhaustive so stale embeddings never linger.
func (s *Posts) DeleteReply(ctx context.Context, replyID int64) error {
	if err := s.client.DeleteReply(ctx, replyID); err != nil {
		s.log.Error(ctx, "reply delete failed", "reply", replyID, "error", err)
		return err
	}

	for i := range s.posts {
		if len(s.posts[i].Replies) == 0 {
			continue
		}
		kept := s.posts[i].Replies[:0]
		for _, reply := range s.posts[i].Replies {
			if reply.ID != replyID {
				kept = append(kept, reply)
			}
		}
		s.posts[i].Replies = kept
	}
	s.notify()
	return nil
}

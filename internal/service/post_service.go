// Package service holds the business rules between the HTTP handlers and the repositories.
package service

import (
	"context"
	"time"

	"postboard/internal/cache"
	"postboard/internal/events"
	"postboard/internal/featureflags"
	"postboard/internal/models"
	"postboard/internal/observability"
	"postboard/internal/repository"
	"postboard/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

type PostService struct {
	posts     repository.PostRepository
	users     repository.UserRepository
	tx        repository.Transactor
	flags     *featureflags.Manager
	publisher events.Publisher
	backend   string
	now       func() time.Time
}

// PostServiceOption customizes a PostService.
type PostServiceOption func(*PostService)

// WithEvents publishes lifecycle events through p; backend labels metrics.
func WithEvents(p events.Publisher, backend string) PostServiceOption {
	return func(s *PostService) {
		s.publisher = p
		s.backend = backend
	}
}

// WithFlags gates caching and events on the given flags.
func WithFlags(flags *featureflags.Manager) PostServiceOption {
	return func(s *PostService) { s.flags = flags }
}

// WithClock overrides the clock used to stamp updates.
func WithClock(now func() time.Time) PostServiceOption {
	return func(s *PostService) { s.now = now }
}

func NewPostService(
	posts repository.PostRepository,
	users repository.UserRepository,
	tx repository.Transactor,
	opts ...PostServiceOption,
) *PostService {
	s := &PostService{
		posts:     posts,
		users:     users,
		tx:        tx,
		publisher: events.NopPublisher{},
		backend:   "none",
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func toMedia(in []models.MediaRequest) []models.Media {
	out := make([]models.Media, 0, len(in))
	for _, m := range in {
		out = append(out, models.Media{MediaURL: m.MediaURL, MediaType: m.MediaType})
	}
	return out
}

func postAttr(id uint) attribute.KeyValue {
	return attribute.Int64("post.id", int64(id))
}

func (s *PostService) emit(ctx context.Context, typ events.Type, postID, userID uint) {
	if !s.flags.Enabled(featureflags.PostEvents, userID) {
		return
	}
	events.Emit(ctx, s.publisher, s.backend, events.NewEvent(typ, postID, userID))
}

// load reads one post and maps it; it expects to run inside a transaction.
func (s *PostService) load(ctx context.Context, id uint) (*models.PostView, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := models.NewPostView(post)
	return &view, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id uint) (view *models.PostView, err error) {
	span, ctx := observability.StartServiceSpan(ctx, "PostService", "GetPostByID", postAttr(id))
	defer span.Finish(&err)

	var out models.PostView
	err = readThrough(ctx, s.flags, id, cache.PostKey(id), &out, cache.PostTTL, func() error {
		return s.tx.InTx(ctx, func(ctx context.Context) error {
			loaded, err := s.load(ctx, id)
			if err != nil {
				return err
			}
			out = *loaded
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllPosts returns one page of all posts, newest first.
func (s *PostService) GetAllPosts(ctx context.Context, page, size int) (result *models.PaginatedPostView, err error) {
	span, ctx := observability.StartServiceSpan(ctx, "PostService", "GetAllPosts",
		attribute.Int("page", page), attribute.Int("size", size))
	defer span.Finish(&err)

	return s.list(ctx, PageRequest{Page: page, Size: size}, func(ctx context.Context, p PageRequest) ([]models.Post, int64, error) {
		return s.posts.List(ctx, p.Size, p.Offset())
	})
}

// GetPostsByUserID returns one page of a user's posts, newest first. An
// unknown user yields an empty page.
func (s *PostService) GetPostsByUserID(ctx context.Context, userID uint, page, size int) (result *models.PaginatedPostView, err error) {
	span, ctx := observability.StartServiceSpan(ctx, "PostService", "GetPostsByUserID",
		attribute.Int64("user.id", int64(userID)), attribute.Int("page", page), attribute.Int("size", size))
	defer span.Finish(&err)

	return s.list(ctx, PageRequest{Page: page, Size: size}, func(ctx context.Context, p PageRequest) ([]models.Post, int64, error) {
		return s.posts.ListByUser(ctx, userID, p.Size, p.Offset())
	})
}

func (s *PostService) list(
	ctx context.Context,
	req PageRequest,
	query func(context.Context, PageRequest) ([]models.Post, int64, error),
) (*models.PaginatedPostView, error) {
	p, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	var result *models.PaginatedPostView
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		posts, total, err := query(ctx, p)
		if err != nil {
			return err
		}
		views := make([]models.PostView, 0, len(posts))
		for i := range posts {
			views = append(views, models.NewPostView(&posts[i]))
		}
		result = NewPaginatedPostView(views, p, total)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreatePost stores a post with its content and media for an existing user.
func (s *PostService) CreatePost(ctx context.Context, req models.PostRequest) (view *models.PostView, err error) {
	span, ctx := observability.StartServiceSpan(ctx, "PostService", "CreatePost",
		attribute.Int64("user.id", int64(req.UserID)))
	defer span.Finish(&err)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: req.UserID,
		Content: models.Content{
			Title:       req.Content.Title,
			Description: req.Content.Description,
			Media:       toMedia(req.Content.MediaFiles),
		},
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := s.users.Exists(ctx, req.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("User", req.UserID)
		}
		if err := s.posts.Create(ctx, post); err != nil {
			return err
		}
		view, err = s.load(ctx, post.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	observability.PostsCreated.Inc()
	cache.Invalidate(ctx, cache.UserKey(post.UserID))
	s.emit(ctx, events.PostCreated, view.PostID, view.UserID)
	return view, nil
}

// UpdatePost overwrites title and description. Media are replaced only when
// the request carries a mediaFiles list; the author never changes.
func (s *PostService) UpdatePost(ctx context.Context, id uint, req models.PostRequest) (view *models.PostView, err error) {
	span, ctx := observability.StartServiceSpan(ctx, "PostService", "UpdatePost", postAttr(id))
	defer span.Finish(&err)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	update := repository.ContentUpdate{
		Title:        req.Content.Title,
		Description:  req.Content.Description,
		ReplaceMedia: req.Content.MediaFiles != nil,
		Media:        toMedia(req.Content.MediaFiles),
		UpdatedAt:    s.now(),
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.posts.UpdateContent(ctx, id, update); err != nil {
			return err
		}
		view, err = s.load(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	observability.PostsUpdated.Inc()
	cache.Invalidate(ctx, cache.PostKey(id))
	s.emit(ctx, events.PostUpdated, view.PostID, view.UserID)
	return view, nil
}

// DeletePost removes the post together with its content and media.
func (s *PostService) DeletePost(ctx context.Context, id uint) (err error) {
	span, ctx := observability.StartServiceSpan(ctx, "PostService", "DeletePost", postAttr(id))
	defer span.Finish(&err)

	var userID uint
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		post, err := s.posts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		userID = post.UserID
		return s.posts.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	observability.PostsDeleted.Inc()
	cache.Invalidate(ctx, cache.PostKey(id), cache.UserKey(userID))
	s.emit(ctx, events.PostDeleted, id, userID)
	return nil
}

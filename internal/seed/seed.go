package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"postboard/internal/featureflags"
	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/repository"
	"postboard/internal/service"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// MaxDays spreads post creation times over the last MaxDays days; 0 means 90.
	MaxDays int
}

// MaxSeedDays bounds Options.MaxDays.
const MaxSeedDays = 3650

// Result summarizes one seeding run.
type Result struct {
	Users []models.UserView
	Posts []models.PostView
}

// Seeder writes fake data through the post and user services.
type Seeder struct {
	db      *gorm.DB
	users   *service.UserService
	posts   *service.PostService
	factory *Factory
}

// NewSeeder wires services over db. Seeding never publishes events or
// touches the cache.
func NewSeeder(db *gorm.DB, factory *Factory) *Seeder {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	tx := repository.NewTransactor(db)
	flags := featureflags.NewManager("")

	return &Seeder{
		db:      db,
		users:   service.NewUserService(userRepo, postRepo, tx, flags),
		posts:   service.NewPostService(postRepo, userRepo, tx, service.WithFlags(flags)),
		factory: factory,
	}
}

// ClearAll deletes every post, its content and media, and every user.
func (s *Seeder) ClearAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"media", "posts", "content", "users"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
}

// Run creates opts.NumUsers users and spreads opts.NumPosts posts randomly
// across them.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.NumUsers < 0 || opts.NumPosts < 0 {
		return nil, errors.New("seed: counts must be non-negative")
	}
	if opts.NumPosts > 0 && opts.NumUsers == 0 {
		return nil, errors.New("seed: posts need at least one user")
	}
	if opts.MaxDays < 0 || opts.MaxDays > MaxSeedDays {
		return nil, fmt.Errorf("seed: days must be between 0 and %d", MaxSeedDays)
	}
	if opts.MaxDays == 0 {
		opts.MaxDays = 90
	}

	if opts.ShouldClean {
		if err := s.ClearAll(ctx); err != nil {
			return nil, err
		}
		middleware.Logger.Info("Cleared existing data")
	}

	result := &Result{}
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.users.CreateUser(ctx, s.factory.UserRequest(i))
		if err != nil {
			return result, fmt.Errorf("create user %d: %w", i, err)
		}
		result.Users = append(result.Users, *user)
	}

	for i := 0; i < opts.NumPosts; i++ {
		author := result.Users[s.factory.Index(len(result.Users))]
		post, err := s.posts.CreatePost(ctx, s.factory.PostRequest(author.UserID))
		if err != nil {
			return result, fmt.Errorf("create post %d: %w", i, err)
		}
		if err := s.backdate(ctx, post, opts.MaxDays); err != nil {
			return result, err
		}
		result.Posts = append(result.Posts, *post)
	}

	middleware.Logger.Info("Seeding complete",
		slog.Int("users", len(result.Users)),
		slog.Int("posts", len(result.Posts)),
	)
	return result, nil
}

// backdate moves a post's creation time into the past so listings look lived in.
func (s *Seeder) backdate(ctx context.Context, post *models.PostView, maxDays int) error {
	offset := s.factory.Age(maxDays)
	createdAt := time.Now().UTC().Add(-offset)
	err := s.db.WithContext(ctx).Model(&models.Post{}).
		Where("post_id = ?", post.PostID).
		Update("created_at_timestamp", createdAt).Error
	if err != nil {
		return fmt.Errorf("backdate post %d: %w", post.PostID, err)
	}
	post.CreatedAtTimestamp = createdAt
	return nil
}

package service

import (
	"context"

	"postboard/internal/cache"
	"postboard/internal/featureflags"
	"postboard/internal/models"
	"postboard/internal/observability"
	"postboard/internal/repository"
	"postboard/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

type UserService struct {
	users repository.UserRepository
	posts repository.PostRepository
	tx    repository.Transactor
	flags *featureflags.Manager
}

func NewUserService(
	users repository.UserRepository,
	posts repository.PostRepository,
	tx repository.Transactor,
	flags *featureflags.Manager,
) *UserService {
	return &UserService{users: users, posts: posts, tx: tx, flags: flags}
}

// CreateUser registers a user. Duplicate usernames or emails fail with VALIDATION_ERROR.
func (s *UserService) CreateUser(ctx context.Context, req models.UserRequest) (view *models.UserView, err error) {
	span, ctx := observability.StartServiceSpan(ctx, "UserService", "CreateUser")
	defer span.Finish(&err)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user := &models.User{Username: req.Username, Email: req.Email}
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		return s.users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	observability.UsersCreated.Inc()
	out := models.NewUserView(user, nil)
	return &out, nil
}

// GetUserByID returns the user and the ids of their posts.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (view *models.UserView, err error) {
	span, ctx := observability.StartServiceSpan(ctx, "UserService", "GetUserByID",
		attribute.Int64("user.id", int64(id)))
	defer span.Finish(&err)

	var out models.UserView
	err = readThrough(ctx, s.flags, id, cache.UserKey(id), &out, cache.UserTTL, func() error {
		return s.tx.InTx(ctx, func(ctx context.Context) error {
			user, err := s.users.GetByID(ctx, id)
			if err != nil {
				return err
			}
			ids, err := s.posts.IDsByUser(ctx, id)
			if err != nil {
				return err
			}
			out = models.NewUserView(user, ids)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

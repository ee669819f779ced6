package service

import (
	"context"
	"sync"

	"postboard/internal/events"
	"postboard/internal/models"
	"postboard/internal/repository"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	listFn          func(context.Context, int, int) ([]models.Post, int64, error)
	listByUserFn    func(context.Context, uint, int, int) ([]models.Post, int64, error)
	updateContentFn func(context.Context, uint, repository.ContentUpdate) error
	deleteFn        func(context.Context, uint) error
	idsByUserFn     func(context.Context, uint) ([]uint, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]models.Post, int64, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Post, int64, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) UpdateContent(ctx context.Context, id uint, update repository.ContentUpdate) error {
	return s.updateContentFn(ctx, id, update)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	return s.idsByUserFn(ctx, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		},
		listFn:          func(_ context.Context, _, _ int) ([]models.Post, int64, error) { return nil, 0, nil },
		listByUserFn:    func(_ context.Context, _ uint, _, _ int) ([]models.Post, int64, error) { return nil, 0, nil },
		updateContentFn: func(_ context.Context, _ uint, _ repository.ContentUpdate) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		idsByUserFn:     func(_ context.Context, _ uint) ([]uint, error) { return []uint{}, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn  func(context.Context, *models.User) error
	getByIDFn func(context.Context, uint) (*models.User, error)
	existsFn  func(context.Context, uint) (bool, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		},
		existsFn: func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

// countingTx runs fn directly and counts units of work.
type countingTx struct {
	mu    sync.Mutex
	calls int
}

func (t *countingTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	t.calls++
	t.mu.Unlock()
	return fn(ctx)
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

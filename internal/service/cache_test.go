package service

import (
	"context"
	"testing"

	"postboard/internal/cache"
	"postboard/internal/featureflags"
	"postboard/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: the cache client is package-global.
func useCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = cache.Close() })
	return mr
}

func TestPostService_ReadThroughCache(t *testing.T) {
	mr := useCache(t)
	ctx := context.Background()

	loads := 0
	title := "Hi"
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		loads++
		p := storedPost(id, 1)
		p.Content.Title = title
		return p, nil
	}
	svc := NewPostService(repo, noopUserRepo(), &countingTx{}, WithFlags(featureflags.NewManager("post_cache=on")))

	first, err := svc.GetPostByID(ctx, 1)
	require.NoError(t, err)
	second, err := svc.GetPostByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, loads)
	assert.Equal(t, first.Content.Title, second.Content.Title)
	assert.True(t, mr.Exists(cache.PostKey(1)))

	title = "Hi2"
	_, err = svc.UpdatePost(ctx, 1, models.PostRequest{Content: &models.ContentRequest{Title: "Hi2"}})
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.PostKey(1)))

	third, err := svc.GetPostByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Hi2", third.Content.Title)
}

func TestPostService_CacheDisabledByFlag(t *testing.T) {
	mr := useCache(t)

	loads := 0
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		loads++
		return storedPost(id, 1), nil
	}
	svc := NewPostService(repo, noopUserRepo(), &countingTx{}, WithFlags(featureflags.NewManager("post_cache=off")))

	for i := 0; i < 2; i++ {
		_, err := svc.GetPostByID(context.Background(), 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, loads)
	assert.False(t, mr.Exists(cache.PostKey(1)))
}

func TestPostService_CreateAndDeleteInvalidateAuthor(t *testing.T) {
	mr := useCache(t)
	require.NoError(t, mr.Set(cache.UserKey(1), `{"userId":1}`))

	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 1
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) { return storedPost(id, 1), nil }
	svc := NewPostService(repo, noopUserRepo(), &countingTx{})

	_, err := svc.CreatePost(context.Background(), models.PostRequest{UserID: 1, Content: &models.ContentRequest{Title: "t"}})
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.UserKey(1)))

	require.NoError(t, mr.Set(cache.UserKey(1), `{"userId":1}`))
	require.NoError(t, mr.Set(cache.PostKey(1), `{"postId":1}`))
	require.NoError(t, svc.DeletePost(context.Background(), 1))
	assert.False(t, mr.Exists(cache.UserKey(1)))
	assert.False(t, mr.Exists(cache.PostKey(1)))
}

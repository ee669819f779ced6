package repository

import (
	"context"
	"time"

	"postboard/internal/models"
	"postboard/internal/observability"

	"gorm.io/gorm"
)

// ContentUpdate is the new state of a post's content. Media is only
// written when ReplaceMedia is set; the old rows are deleted first.
type ContentUpdate struct {
	Title        string
	Description  *string
	ReplaceMedia bool
	Media        []models.Media
	UpdatedAt    time.Time
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]models.Post, int64, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Post, int64, error)
	UpdateContent(ctx context.Context, id uint, update ContentUpdate) error
	Delete(ctx context.Context, id uint) error
	IDsByUser(ctx context.Context, userID uint) ([]uint, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func orderedMedia(db *gorm.DB) *gorm.DB {
	return db.Order("media.media_id ASC")
}

// withContent preloads the content row and its media.
func withContent(db *gorm.DB) *gorm.DB {
	return db.Preload("Content").Preload("Content.Media", orderedMedia)
}

// Create inserts the content, its media and then the post. post.ID,
// post.ContentRef and the media ids are populated on success.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("insert", "posts")()

	err := atomically(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Omit("Media").Create(&post.Content).Error; err != nil {
			return err
		}

		for i := range post.Content.Media {
			post.Content.Media[i].ContentID = post.Content.ID
		}
		if len(post.Content.Media) > 0 {
			if err := tx.Create(&post.Content.Media).Error; err != nil {
				return err
			}
		}

		post.ContentRef = post.Content.ID
		return tx.Omit("Content").Create(post).Error
	})
	if err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User", post.UserID)
		}
		return translate(err, "Post", post.ID)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	defer observability.TrackQuery("select", "posts")()

	var post models.Post
	if err := withContent(conn(ctx, r.db)).Where("posts.post_id = ?", id).First(&post).Error; err != nil {
		return nil, translate(err, "Post", id)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.Post, int64, error) {
	return r.page(ctx, nil, limit, offset)
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Post, int64, error) {
	return r.page(ctx, &userID, limit, offset)
}

// page returns one page of posts newest first plus the total match count.
func (r *postRepository) page(ctx context.Context, userID *uint, limit, offset int) ([]models.Post, int64, error) {
	defer observability.TrackQuery("select", "posts")()

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Model(&models.Post{})
		if userID != nil {
			db = db.Where("posts.user_id = ?", *userID)
		}
		return db
	}

	var total int64
	if err := scope(conn(ctx, r.db)).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	posts := []models.Post{}
	if total == 0 || int64(offset) >= total {
		return posts, total, nil
	}

	err := withContent(scope(conn(ctx, r.db))).
		Order("posts.created_at_timestamp DESC").
		Order("posts.post_id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

func (r *postRepository) UpdateContent(ctx context.Context, id uint, update ContentUpdate) error {
	defer observability.TrackQuery("update", "posts")()

	err := atomically(ctx, r.db, func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("post_id", "content_id").Where("post_id = ?", id).First(&post).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Content{}).
			Where("content_id = ?", post.ContentRef).
			Updates(map[string]interface{}{
				"title":       update.Title,
				"description": update.Description,
			}).Error; err != nil {
			return err
		}

		if update.ReplaceMedia {
			if err := tx.Where("content_id = ?", post.ContentRef).Delete(&models.Media{}).Error; err != nil {
				return err
			}
			if len(update.Media) > 0 {
				media := make([]models.Media, len(update.Media))
				for i, m := range update.Media {
					media[i] = models.Media{MediaURL: m.MediaURL, MediaType: m.MediaType, ContentID: post.ContentRef}
				}
				if err := tx.Create(&media).Error; err != nil {
					return err
				}
			}
		}

		return tx.Model(&models.Post{}).
			Where("post_id = ?", id).
			Update("updated_at_timestamp", update.UpdatedAt).Error
	})
	return translate(err, "Post", id)
}

// Delete removes the post, its media and its content.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "posts")()

	err := atomically(ctx, r.db, func(tx *gorm.DB) error {
		var contentIDs []uint
		if err := tx.Model(&models.Post{}).Where("post_id = ?", id).Pluck("content_id", &contentIDs).Error; err != nil {
			return err
		}
		if len(contentIDs) == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("post_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("content_id IN ?", contentIDs).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		return tx.Where("content_id IN ?", contentIDs).Delete(&models.Content{}).Error
	})
	return translate(err, "Post", id)
}

func (r *postRepository) IDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	defer observability.TrackQuery("select", "posts")()

	ids := []uint{}
	if err := conn(ctx, r.db).Model(&models.Post{}).
		Where("user_id = ?", userID).
		Order("post_id ASC").
		Pluck("post_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

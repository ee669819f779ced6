package models

import "time"

// Post owns exactly one Content through posts.content_id. UserID never
// changes after creation.
type Post struct {
	ID                 uint       `gorm:"column:post_id;primaryKey"`
	UserID             uint       `gorm:"not null;index"`
	CreatedAtTimestamp time.Time  `gorm:"not null;autoCreateTime;index"`
	UpdatedAtTimestamp *time.Time `gorm:"default:null"`
	ContentRef         uint       `gorm:"column:content_id;not null;uniqueIndex"`
	Content            Content    `gorm:"foreignKey:ContentRef;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}

// Content is the title, description and media of a single post.
type Content struct {
	ID          uint    `gorm:"column:content_id;primaryKey"`
	Title       string  `gorm:"size:255;not null"`
	Description *string `gorm:"size:2000"`
	Media       []Media `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Content) TableName() string {
	return "content"
}

// Media is an attachment reference. MediaType is free-form ("image", "video", ...).
type Media struct {
	ID        uint   `gorm:"column:media_id;primaryKey"`
	MediaURL  string `gorm:"column:media_url;size:2048;not null"`
	MediaType string `gorm:"column:media_type;size:50"`
	ContentID uint   `gorm:"not null;index"`
}

func (Media) TableName() string {
	return "media"
}

package models

import "time"

// MediaRequest is one attachment in a PostRequest.
type MediaRequest struct {
	MediaURL  string `json:"mediaUrl" validate:"required,max=2048"`
	MediaType string `json:"mediaType" validate:"max=50"`
}

// ContentRequest carries the editable part of a post. A nil MediaFiles
// means "not provided" and leaves existing media untouched on update; an
// empty, non-nil slice clears it.
type ContentRequest struct {
	Title       string         `json:"title" validate:"required,max=255"`
	Description *string        `json:"description" validate:"omitempty,max=2000"`
	MediaFiles  []MediaRequest `json:"mediaFiles" validate:"omitempty,dive"`
}

// PostRequest is the body accepted by POST /posts/create and PUT/PATCH /posts/:id.
type PostRequest struct {
	UserID  uint            `json:"userId"`
	Content *ContentRequest `json:"content" validate:"required"`
}

type MediaView struct {
	MediaID   uint   `json:"mediaId"`
	MediaURL  string `json:"mediaUrl"`
	MediaType string `json:"mediaType"`
}

type ContentView struct {
	ContentID   uint        `json:"contentId"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	MediaFiles  []MediaView `json:"mediaFiles"`
}

type PostView struct {
	PostID             uint        `json:"postId"`
	UserID             uint        `json:"userId"`
	CreatedAtTimestamp time.Time   `json:"createdAtTimestamp"`
	UpdatedAtTimestamp *time.Time  `json:"updatedAtTimestamp"`
	Content            ContentView `json:"content"`
}

// PaginatedPostView is one page of posts plus its position in the full result set.
type PaginatedPostView struct {
	Posts         []PostView `json:"posts"`
	CurrentPage   int        `json:"currentPage"`
	PageSize      int        `json:"pageSize"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	HasNext       bool       `json:"hasNext"`
	HasPrevious   bool       `json:"hasPrevious"`
}

// NewPostView maps a post with its loaded content and media. Media are
// emitted in the order given; MediaFiles is never nil.
func NewPostView(p *Post) PostView {
	media := make([]MediaView, 0, len(p.Content.Media))
	for _, m := range p.Content.Media {
		media = append(media, MediaView{
			MediaID:   m.ID,
			MediaURL:  m.MediaURL,
			MediaType: m.MediaType,
		})
	}

	view := PostView{
		PostID:             p.ID,
		UserID:             p.UserID,
		CreatedAtTimestamp: p.CreatedAtTimestamp.UTC(),
		Content: ContentView{
			ContentID:   p.Content.ID,
			Title:       p.Content.Title,
			Description: p.Content.Description,
			MediaFiles:  media,
		},
	}
	if p.UpdatedAtTimestamp != nil {
		updated := p.UpdatedAtTimestamp.UTC()
		view.UpdatedAtTimestamp = &updated
	}
	return view
}

// NewUserView maps a user and the ids of their posts. PostsID is never nil.
func NewUserView(u *User, postIDs []uint) UserView {
	if postIDs == nil {
		postIDs = []uint{}
	}
	return UserView{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		PostsID:  postIDs,
	}
}

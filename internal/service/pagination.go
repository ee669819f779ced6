package service

import (
	"math"

	"postboard/internal/models"
)

const (
	// MaxPageSize caps every paginated post query.
	MaxPageSize = 10
	// DefaultPageSize applies when the caller does not ask for a size.
	DefaultPageSize = 10

	maxPage = math.MaxInt32 / MaxPageSize
)

// PageRequest is a zero-based page number and a page size.
type PageRequest struct {
	Page int
	Size int
}

// Normalize caps Size at MaxPageSize and floors Page at 0. A size below 1
// cannot be served and is rejected.
func (p PageRequest) Normalize() (PageRequest, error) {
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size < 1 {
		return p, models.NewValidationError("page size must be at least 1")
	}
	return p, nil
}

// Offset is the row offset of the page, saturating for absurd page numbers.
func (p PageRequest) Offset() int {
	if p.Page > maxPage {
		return maxPage * p.Size
	}
	return p.Page * p.Size
}

// NewPaginatedPostView fills the page metadata: totalPages is
// ceil(total/size), hasNext is page < totalPages-1, hasPrevious is page > 0.
func NewPaginatedPostView(posts []models.PostView, p PageRequest, total int64) *models.PaginatedPostView {
	if posts == nil {
		posts = []models.PostView{}
	}
	totalPages := 0
	if p.Size > 0 {
		totalPages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}
	return &models.PaginatedPostView{
		Posts:         posts,
		CurrentPage:   p.Page,
		PageSize:      p.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasNext:       p.Page < totalPages-1,
		HasPrevious:   p.Page > 0,
	}
}

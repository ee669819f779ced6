// Package seed creates demo users and posts for development databases.
// Everything goes through the regular services, so seeded data obeys the
// same validation and transaction rules as API traffic.
package seed

import (
	"fmt"
	"strings"
	"time"

	"postboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

var youtubeIDs = []string{"dQw4w9WgXcQ", "9bZkp7q19f0", "3JZ_D3ELwOQ", "L_jWHffIx5E", "kXYiU_JCYtU"}

// Factory builds request bodies filled with fake data.
type Factory struct {
	faker *gofakeit.Faker
}

// NewFactory returns a factory; the same non-zero seed yields the same data.
// Zero picks a random seed.
func NewFactory(seed int64) *Factory {
	return &Factory{faker: gofakeit.New(seed)}
}

// Index picks a position in a slice of length n > 0.
func (f *Factory) Index(n int) int {
	return f.faker.Number(0, n-1)
}

// Age returns a whole-second duration in [0, days) days.
func (f *Factory) Age(days int) time.Duration {
	seconds := f.faker.Number(0, days*24*60*60-1)
	return time.Duration(seconds) * time.Second
}

// UserRequest builds the n-th user. n keeps usernames and emails unique
// within one run.
func (f *Factory) UserRequest(n int) models.UserRequest {
	username := fmt.Sprintf("%s%d", f.faker.Username(), n)
	return models.UserRequest{
		Username: truncate(username, 100),
		Email:    fmt.Sprintf("u%d.%s", n, strings.ToLower(f.faker.Email())),
	}
}

// PostRequest builds a post for userID with up to three media files.
func (f *Factory) PostRequest(userID uint) models.PostRequest {
	content := &models.ContentRequest{
		Title:      truncate(f.faker.Sentence(f.faker.Number(3, 8)), 255),
		MediaFiles: []models.MediaRequest{},
	}
	if f.faker.Number(1, 10) <= 7 {
		description := truncate(f.faker.Paragraph(1, f.faker.Number(1, 4), 10, " "), 2000)
		content.Description = &description
	}
	for i := f.faker.Number(0, 3); i > 0; i-- {
		content.MediaFiles = append(content.MediaFiles, f.media())
	}
	return models.PostRequest{UserID: userID, Content: content}
}

func (f *Factory) media() models.MediaRequest {
	if f.faker.Number(1, 4) == 1 {
		id := f.faker.RandomString(youtubeIDs)
		return models.MediaRequest{
			MediaURL:  "https://www.youtube.com/watch?v=" + id,
			MediaType: "video",
		}
	}
	return models.MediaRequest{
		MediaURL:  fmt.Sprintf("https://picsum.photos/seed/%s/800/800", f.faker.UUID()),
		MediaType: "image",
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost is an article on the shop blog. Slug is derived from the
// title on create and stays stable afterwards.
type BlogPost struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Slug        string     `json:"slug" gorm:"not null;uniqueIndex"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body" gorm:"not null"`
	Tags        TagsList   `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	Published   bool       `json:"published" gorm:"default:false;index"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

type BlogPostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Excerpt string   `json:"excerpt"`
	Body    string   `json:"body" binding:"required"`
	Tags    []string `json:"tags"`
}

type UpdateBlogPostRequest struct {
	Title   *string   `json:"title"`
	Excerpt *string   `json:"excerpt"`
	Body    *string   `json:"body"`
	Tags    *[]string `json:"tags"`
}

// BlogPostListItem is the public listing row (no body).
type BlogPostListItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

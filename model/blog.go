package model

import "time"

type BlogPost struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"short_description"`
	Content          string     `json:"content"`
	CoverImage       string     `json:"cover_image,omitempty"`
	Images           []string   `json:"images,omitempty"`
	Published        bool       `json:"published"`
	PublishAt        *time.Time `json:"publish_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (p BlogPost) RecordID() string { return p.ID }

// IsPublic mirrors Product.IsPublic for posts.
func (p BlogPost) IsPublic(now time.Time) bool {
	return p.Published && (p.PublishAt == nil || !p.PublishAt.After(now))
}

// SortKey orders public listings: scheduled publish time when set, creation
// time otherwise.
func (p BlogPost) SortKey() time.Time {
	if p.PublishAt != nil {
		return *p.PublishAt
	}
	return p.CreatedAt
}

type CreatePostInput struct {
	Title            string     `json:"title" validate:"required"`
	ShortDescription string     `json:"short_description" validate:"required"`
	Content          string     `json:"content" validate:"required"`
	CoverImage       string     `json:"cover_image"`
	Images           []string   `json:"images"`
	Published        bool       `json:"published"`
	PublishAt        *time.Time `json:"publish_at"`
}

type EditPostInput struct {
	Title            *string    `json:"title"`
	ShortDescription *string    `json:"short_description"`
	Content          *string    `json:"content"`
	CoverImage       *string    `json:"cover_image"`
	Images           []string   `json:"images"`
	Published        *bool      `json:"published"`
	PublishAt        *time.Time `json:"publish_at"`
}

package model

import "time"

type Product struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description,omitempty"`
	Price            float64    `json:"price"`
	Category         string     `json:"category"`
	Image            string     `json:"image,omitempty"`
	AdditionalImages []string   `json:"additional_images,omitempty"`
	Visible          bool       `json:"visible"`
	Featured         bool       `json:"featured"`
	PublishAt        *time.Time `json:"publish_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (p Product) RecordID() string { return p.ID }

// IsPublic reports whether the product appears on the storefront: the
// visibility flag must be set and any scheduled publish time reached.
func (p Product) IsPublic(now time.Time) bool {
	return p.Visible && (p.PublishAt == nil || !p.PublishAt.After(now))
}

type CreateProductInput struct {
	Title            string     `json:"title" validate:"required"`
	Description      string     `json:"description" validate:"required"`
	ShortDescription string     `json:"short_description"`
	Price            float64    `json:"price" validate:"gte=0"`
	Category         string     `json:"category" validate:"required"`
	Image            string     `json:"image"`
	AdditionalImages []string   `json:"additional_images"`
	Visible          bool       `json:"visible"`
	Featured         bool       `json:"featured"`
	PublishAt        *time.Time `json:"publish_at"`
}

type EditProductInput struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	ShortDescription *string    `json:"short_description"`
	Price            *float64   `json:"price" validate:"omitempty,gte=0"`
	Category         *string    `json:"category"`
	Image            *string    `json:"image"`
	AdditionalImages []string   `json:"additional_images"`
	Visible          *bool      `json:"visible"`
	Featured         *bool      `json:"featured"`
	PublishAt        *time.Time `json:"publish_at"`
}

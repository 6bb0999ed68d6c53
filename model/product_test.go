package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProductIsPublic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		visible   bool
		publishAt *time.Time
		want      bool
	}{
		{"visible, no schedule", true, nil, true},
		{"hidden, no schedule", false, nil, false},
		{"visible, publish time passed", true, &past, true},
		{"visible, publish time exactly now", true, &now, true},
		{"visible, publish time in future", true, &future, false},
		{"hidden, publish time passed", false, &past, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Visible: tt.visible, PublishAt: tt.publishAt}
			assert.Equal(t, tt.want, p.IsPublic(now))
		})
	}
}

func TestBlogPostIsPublic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)

	assert.True(t, BlogPost{Published: true}.IsPublic(now))
	assert.False(t, BlogPost{Published: false}.IsPublic(now))
	assert.False(t, BlogPost{Published: true, PublishAt: &future}.IsPublic(now))
}

func TestBlogPostSortKey(t *testing.T) {
	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	scheduled := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, created, BlogPost{CreatedAt: created}.SortKey())
	assert.Equal(t, scheduled, BlogPost{CreatedAt: created, PublishAt: &scheduled}.SortKey())
}

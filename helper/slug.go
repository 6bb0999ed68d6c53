package helper

import (
	"bakery_store/database"
	"fmt"

	"github.com/gosimple/slug"
)

// GenerateUniqueProductSlug derives a slug from the title and suffixes a
// counter until it is unique within the catalog.
func GenerateUniqueProductSlug(title, excludeID string) (string, error) {
	products, err := database.Products.All()
	if err != nil {
		return "", err
	}

	taken := make(map[string]bool, len(products))
	for _, p := range products {
		if p.ID != excludeID {
			taken[p.Slug] = true
		}
	}
	return pickFree(slug.Make(title), taken), nil
}

func GenerateUniquePostSlug(title, excludeID string) (string, error) {
	posts, err := database.Posts.All()
	if err != nil {
		return "", err
	}

	taken := make(map[string]bool, len(posts))
	for _, p := range posts {
		if p.ID != excludeID {
			taken[p.Slug] = true
		}
	}
	return pickFree(slug.Make(title), taken), nil
}

func pickFree(base string, taken map[string]bool) string {
	result := base
	i := 1
	for taken[result] {
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}
	return result
}

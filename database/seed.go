package database

import (
	"bakery_store/config"
	"bakery_store/model"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
)

// SeedData creates the default admin account and a starter catalog the first
// time the shop runs against an empty data directory.
func SeedData() {
	seedAdmin()
	seedProducts()
}

func seedAdmin() {
	users, err := Users.All()
	if err != nil || len(users) > 0 {
		return
	}

	email := config.ConfigDefault("ADMIN_EMAIL", "admin@bakery.local")
	password := config.ConfigDefault("ADMIN_PASSWORD", "changeme")

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("failed to hash seed admin password:", err)
		return
	}

	admin := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(bytes),
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := Users.Append(admin); err != nil {
		log.Println("failed to seed admin user:", err)
		return
	}
	log.Println("seeded admin user:", email)
}

func seedProducts() {
	products, err := Products.All()
	if err != nil || len(products) > 0 {
		return
	}

	samples := []struct {
		title    string
		short    string
		price    float64
		category string
		featured bool
	}{
		{"Classic Sourdough Loaf", "Slow-fermented, crackly crust", 45.00, "bread", true},
		{"Chocolate Fudge Cake", "Three layers of dark chocolate", 320.00, "cakes", true},
		{"Butter Croissant", "Laminated with cultured butter", 28.00, "pastries", false},
		{"Lemon Meringue Tart", "Sharp curd, torched meringue", 55.00, "pastries", false},
	}

	now := time.Now().UTC()
	for i, s := range samples {
		p := model.Product{
			ID:               fmt.Sprintf("prod-%d", i+1),
			Slug:             slug.Make(s.title),
			Title:            s.title,
			Description:      s.short,
			ShortDescription: s.short,
			Price:            s.price,
			Category:         s.category,
			Visible:          true,
			Featured:         s.featured,
			CreatedAt:        now,
		}
		if err := Products.Append(p); err != nil {
			log.Println("failed to seed product:", s.title, "error:", err)
		}
	}
	log.Println("seeded sample catalog")
}

package helper

import (
	"bakery_store/database"
	"bakery_store/model"
	"fmt"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GetUserByEmail looks a user up case-insensitively. A missing user is
// (nil, nil); only storage failures return an error.
func GetUserByEmail(email string) (*model.User, error) {
	users, err := database.Users.All()
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(email)
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return &u, nil
		}
	}
	return nil, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserID
	claims["email"] = tokenClaim.Email
	claims["isAdmin"] = tokenClaim.IsAdmin
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(jwtSecret())
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserID
	claims["email"] = tokenClaim.Email
	claims["isAdmin"] = tokenClaim.IsAdmin
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
}

// GetInfoUserFromToken extracts the claim set the middleware stored on the
// request. ok is false for guests.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	token, isToken := c.Locals("user").(*jwt.Token)
	if !isToken || token == nil {
		return model.TokenClaim{}, false
	}
	claims, isClaims := token.Claims.(jwt.MapClaims)
	if !isClaims {
		return model.TokenClaim{}, false
	}

	claim := model.TokenClaim{}
	if v, ok := claims["userId"].(string); ok {
		claim.UserID = v
	}
	if v, ok := claims["email"].(string); ok {
		claim.Email = v
	}
	if v, ok := claims["isAdmin"].(bool); ok {
		claim.IsAdmin = v
	}
	if claim.UserID == "" {
		return model.TokenClaim{}, false
	}
	return claim, true
}

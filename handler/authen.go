package handler

import (
	"bakery_store/constants"
	"bakery_store/database"
	"bakery_store/helper"
	"bakery_store/model"
	"bakery_store/utils"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func setAuthCookies(c *fiber.Ctx, access, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func issueTokens(c *fiber.Ctx, user *model.User) error {
	claim := model.TokenClaim{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}

	token, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, token, refreshToken)
	return c.JSON(fiber.Map{
		"message": "login success",
		"user": fiber.Map{
			"id":      user.ID,
			"email":   user.Email,
			"isAdmin": user.IsAdmin,
		},
	})
}

func Login(c *fiber.Ctx) error {
	var input model.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if input.Email == "" || input.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT,
			errors.New("email and password are required"))
	}

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_EMAIL, errors.New("email not registered"))
	}
	if !helper.CheckPasswordHash(input.Password, user.PasswordHash) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match"))
	}

	return issueTokens(c, user)
}

func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_TAKEN,
			errors.New("email already registered"), "email")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	user := model.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(input.Email),
		PasswordHash: hash,
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Users.Append(user); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return issueTokens(c, &user)
}

func RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies("refresh_token")
	if refresh == "" {
		type refreshRequest struct {
			RefreshToken string `json:"refreshToken"`
		}
		var req refreshRequest
		if err := c.BodyParser(&req); err == nil {
			refresh = req.RefreshToken
		}
	}
	if refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", nil)
	}

	token, err := helper.ParseToken(refresh)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	c.Locals("user", token)
	claim, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", nil)
	}

	// Re-read the user so a revoked account cannot keep refreshing.
	user, err := database.Users.ByID(claim.UserID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unknown user", err)
	}

	return issueTokens(c, &user)
}

func Logout(c *fiber.Ctx) error {
	setAuthCookies(c, "", "")
	return c.JSON(fiber.Map{"message": "logged out"})
}

func Me(c *fiber.Ctx) error {
	claim, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	user, err := database.Users.ByID(claim.UserID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":      user.ID,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
	})
}

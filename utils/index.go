package utils

import (
	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

// ErrorResponseHaveKey reports a validation failure tied to one input field.
func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "error",
		"message":  message,
		"errors":   errMsg,
		"keyError": keyError,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, v := range constantValues {
		if v == value {
			return true
		}
	}
	return false
}

// Paginate slices a list for one page. Limit or page outside their valid
// range means "no paging".
func Paginate[T any](items []T, limit, page *int) []T {
	if limit == nil || *limit <= 0 || page == nil || *page < 1 {
		return items
	}
	start := *limit * (*page - 1)
	if start >= len(items) {
		return []T{}
	}
	end := start + *limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func Ptr[T any](v T) *T {
	return &v
}

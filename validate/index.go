package validate

import (
	"bakery_store/model"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById stashes the id route parameter for the handler.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(key)
		if id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("missing %s parameter", key),
			})
		}

		c.Locals("inputId", id)
		return c.Next()
	}
}

// Delete parses the bulk-delete id list shared by products and posts.
func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("deleteIds", input)
		return c.Next()
	}
}

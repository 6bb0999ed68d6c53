package validate

import (
	"bakery_store/model"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreatePost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePostInput
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

		c.Locals("inputCreatePost", input)
		return c.Next()
	}
}

func EditPost(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(key)
		if id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("missing %s parameter", key),
			})
		}

		var input model.EditPostInput
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

		c.Locals("inputId", id)
		c.Locals("inputEditPost", input)
		return c.Next()
	}
}

package validate

import (
	"bakery_store/model"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func RegisterUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
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

		c.Locals("inputRegister", input)
		return c.Next()
	}
}

func ContactMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ContactInput
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

		c.Locals("inputContact", input)
		return c.Next()
	}
}

package validate

import (
	"bakery_store/model"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func UpdatePaymentSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePaymentSettingsInput
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

		c.Locals("inputSettings", input)
		return c.Next()
	}
}

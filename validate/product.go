package validate

import (
	"bakery_store/model"
	"bakery_store/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProductInput
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

		if input.Price < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				"Price cannot be negative", errors.New("negative price"), "price")
		}

		c.Locals("inputCreateProduct", input)
		return c.Next()
	}
}

func EditProduct(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(key)
		if id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("missing %s parameter", key),
			})
		}

		var input model.EditProductInput
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
		c.Locals("inputEditProduct", input)
		return c.Next()
	}
}

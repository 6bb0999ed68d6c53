package handler

import (
	"bakery_store/constants"
	"bakery_store/model"
	"bakery_store/utils"

	"github.com/gofiber/fiber/v2"
)

// Contact forwards a storefront contact-form message to the bakery inbox.
func Contact(c *fiber.Ctx) error {
	input, ok := c.Locals("inputContact").(model.ContactInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	utils.SendContactMessage(input.Name, input.Email, input.Phone, input.Subject, input.Message)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Thanks for reaching out, we will get back to you soon.",
	})
}

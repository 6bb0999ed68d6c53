package validate

import (
	"bakery_store/constants"
	"bakery_store/model"
	"bakery_store/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckoutInput
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

		for _, item := range input.Items {
			if item.Quantity <= 0 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
					"Item quantities must be positive", errors.New("quantity <= 0"), "items")
			}
		}

		c.Locals("inputCheckout", input)
		return c.Next()
	}
}

func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput
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

		if !utils.IsValidValueOfConstant(input.Status, constants.OrderStatuses) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				constants.INVALID_ORDER_STATUS, fmt.Errorf("unknown status %q", input.Status), "status")
		}

		c.Locals("inputStatus", input)
		return c.Next()
	}
}

func UpdatePaymentStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePaymentStatusInput
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

		if !utils.IsValidValueOfConstant(input.PaymentStatus, constants.PaymentStatuses) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				constants.INVALID_PAYMENT_STATUS, fmt.Errorf("unknown payment status %q", input.PaymentStatus), "payment_status")
		}

		c.Locals("inputPaymentStatus", input)
		return c.Next()
	}
}

func BatchUpdateOrders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BatchUpdateOrdersInput
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

		if input.Status == nil && input.PaymentStatus == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				"Nothing to update", errors.New("status or payment_status required"))
		}
		if input.Status != nil && !utils.IsValidValueOfConstant(*input.Status, constants.OrderStatuses) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				constants.INVALID_ORDER_STATUS, fmt.Errorf("unknown status %q", *input.Status), "status")
		}
		if input.PaymentStatus != nil && !utils.IsValidValueOfConstant(*input.PaymentStatus, constants.PaymentStatuses) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				constants.INVALID_PAYMENT_STATUS, fmt.Errorf("unknown payment status %q", *input.PaymentStatus), "payment_status")
		}

		c.Locals("inputBatch", input)
		return c.Next()
	}
}

func AddOrderNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddOrderNoteInput
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

		c.Locals("inputNote", input)
		return c.Next()
	}
}

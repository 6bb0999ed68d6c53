package handler

import (
	"bakery_store/constants"
	"bakery_store/database"
	"bakery_store/helper"
	"bakery_store/logger"
	"bakery_store/model"
	"bakery_store/utils"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateCustomOrder files a bespoke cake request. No payment happens here;
// the bakery quotes it later from the admin panel.
func CreateCustomOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCustomOrder").(model.CreateCustomOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	order := model.CustomOrder{
		ID:            helper.NewCustomOrderID(),
		CustomerName:  input.Name,
		CustomerEmail: input.Email,
		CustomerPhone: input.Phone,
		Details: model.CustomOrderDetails{
			Size:                input.Size,
			Flavor:              input.Flavor,
			Filling:             input.Filling,
			Frosting:            input.Frosting,
			Message:             input.Message,
			DesignDetails:       input.DesignDetails,
			ReferenceImage:      input.ReferenceImage,
			PickupDate:          input.PickupDate,
			Allergies:           input.Allergies,
			SpecialInstructions: input.SpecialInstructions,
		},
		Status:        constants.ORDER_STATUS_PENDING,
		PaymentStatus: constants.PAYMENT_STATUS_PENDING,
		CreatedAt:     time.Now().UTC(),
	}
	if claim, logged := helper.GetInfoUserFromToken(c); logged {
		order.UserID = claim.UserID
	}

	if err := database.CustomOrders.Append(order); err != nil {
		logger.Error("failed to save custom order", zap.String("order", order.ID), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.SendCustomOrderAlert(order.CustomerName, []string{
		fmt.Sprintf("Order ID: %s", order.ID),
		fmt.Sprintf("Size: %s", order.Details.Size),
		fmt.Sprintf("Flavor: %s", order.Details.Flavor),
		fmt.Sprintf("Pickup date: %s", order.Details.PickupDate),
	})
	PublishOrderEvent("custom_order.created", order.ID, order.CustomerName, 0)

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

// QuoteCustomOrder records the price the bakery quoted for a custom request.
func QuoteCustomOrder(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(string)
	input, ok := c.Locals("inputQuote").(model.QuoteCustomOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	order, err := database.CustomOrders.ByID(orderId)
	if err != nil {
		if err == database.ErrNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now().UTC()
	order.QuotedTotal = &input.Total
	order.UpdatedAt = &now
	if err := database.CustomOrders.Update(orderId, order); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

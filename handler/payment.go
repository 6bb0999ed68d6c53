package handler

import (
	"bakery_store/config"
	"bakery_store/constants"
	"bakery_store/database"
	"bakery_store/helper"
	"bakery_store/logger"
	"bakery_store/model"
	"bakery_store/utils"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"
)

// loadPaymentSettings returns the saved gateway configuration, falling back
// to environment variables when the admin has not saved anything yet.
func loadPaymentSettings() model.PaymentSettings {
	settings, err := database.Settings.ByID(model.SETTINGS_PAYMENT)
	if err == nil && settings.APIKey != "" {
		return settings
	}
	return model.PaymentSettings{
		ID:            model.SETTINGS_PAYMENT,
		Gateway:       config.ConfigDefault("PAYMENT_GATEWAY", ""),
		APIKey:        config.Config("PAYMENT_API_KEY"),
		WebhookSecret: config.Config("PAYMENT_WEBHOOK_SECRET"),
	}
}

// createCheckoutSession opens a Stripe Checkout session for the order and
// returns the hosted payment URL.
func createCheckoutSession(order model.Order) (string, string, error) {
	settings := loadPaymentSettings()
	if settings.Gateway != "stripe" || settings.APIKey == "" {
		return "", "", errors.New(constants.PAYMENT_NOT_CONFIGURED)
	}
	stripe.Key = settings.APIKey

	appURL := config.ConfigDefault("APP_URL", "http://localhost:8002")
	currency := config.ConfigDefault("PAYMENT_CURRENCY", "zar")

	lineItems := []*stripe.CheckoutSessionLineItemParams{}
	for _, item := range order.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(int64(item.Price * 100)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Title),
				},
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:     lineItems,
		SuccessURL:    stripe.String(appURL + "/api/v1/cart/success/" + order.ID),
		CancelURL:     stripe.String(appURL + "/api/v1/cart/cancel/" + order.ID),
		CustomerEmail: stripe.String(order.CustomerEmail),
	}
	params.AddMetadata("order_id", order.ID)

	s, err := session.New(params)
	if err != nil {
		return "", "", err
	}
	return s.ID, s.URL, nil
}

// Checkout turns a submitted cart into a pending order plus a payment
// session. The total is always recomputed server-side from the line items.
func Checkout(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCheckout").(model.CheckoutInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	order := model.Order{
		ID:            helper.NewOrderID(),
		CustomerName:  input.Customer.Name,
		CustomerEmail: input.Customer.Email,
		CustomerPhone: input.Customer.Phone,
		Items:         input.Items,
		Total:         model.ComputeTotal(input.Items),
		Status:        constants.ORDER_STATUS_PENDING,
		PaymentStatus: constants.PAYMENT_STATUS_PENDING,
		CreatedAt:     time.Now().UTC(),
	}
	if claim, logged := helper.GetInfoUserFromToken(c); logged {
		order.UserID = claim.UserID
	}

	sessionID, checkoutURL, err := createCheckoutSession(order)
	if err != nil {
		if err.Error() == constants.PAYMENT_NOT_CONFIGURED {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_NOT_CONFIGURED, err)
		}
		logger.Error("checkout session failed", zap.String("order", order.ID), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CHECKOUT_FAILED, err)
	}
	order.SessionID = sessionID

	if err := database.Orders.Append(order); err != nil {
		logger.Error("failed to save order", zap.String("order", order.ID), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CHECKOUT_FAILED, err)
	}

	PublishOrderEvent("order.created", order.ID, order.CustomerName, order.Total)

	return c.JSON(fiber.Map{
		"success":     true,
		"orderId":     order.ID,
		"checkoutUrl": checkoutURL,
	})
}

// CheckoutSuccess is the return URL after payment: confirm the order, mark
// it paid, and email the customer.
func CheckoutSuccess(c *fiber.Ctx) error {
	orderId := c.Params("orderId")

	order, err := database.Orders.ByID(orderId)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now().UTC()
	order.Status = constants.ORDER_STATUS_CONFIRMED
	order.PaymentStatus = constants.PAYMENT_STATUS_PAID
	order.UpdatedAt = &now
	if err := database.Orders.Update(orderId, order); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	sendOrderConfirmation(order)
	PublishOrderEvent("order.paid", order.ID, order.CustomerName, order.Total)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// CheckoutCancel is the return URL for an abandoned or failed payment.
func CheckoutCancel(c *fiber.Ctx) error {
	orderId := c.Params("orderId")

	order, err := database.Orders.ByID(orderId)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now().UTC()
	order.Status = constants.ORDER_STATUS_CANCELLED
	order.PaymentStatus = constants.PAYMENT_STATUS_CANCELLED
	order.UpdatedAt = &now
	if err := database.Orders.Update(orderId, order); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Your order was cancelled. Please try again.",
		"order":   order,
	})
}

// StripeWebhook is the server-to-server confirmation path. The signature is
// verified against the configured webhook secret before anything is trusted.
func StripeWebhook(c *fiber.Ctx) error {
	settings := loadPaymentSettings()
	if settings.WebhookSecret == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_NOT_CONFIGURED, nil)
	}

	event, err := webhook.ConstructEvent(c.Body(), c.Get("Stripe-Signature"), settings.WebhookSecret)
	if err != nil {
		logger.Warn("webhook signature rejected", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid webhook signature", err)
	}

	if event.Type != "checkout.session.completed" {
		return c.SendStatus(fiber.StatusOK)
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	orderId := sess.Metadata["order_id"]
	order, err := database.Orders.ByID(orderId)
	if err != nil {
		logger.Warn("webhook references unknown order", zap.String("order", orderId))
		return c.SendStatus(fiber.StatusOK)
	}

	if order.PaymentStatus != constants.PAYMENT_STATUS_PAID {
		now := time.Now().UTC()
		order.Status = constants.ORDER_STATUS_CONFIRMED
		order.PaymentStatus = constants.PAYMENT_STATUS_PAID
		order.UpdatedAt = &now
		if err := database.Orders.Update(orderId, order); err != nil {
			logger.Error("webhook could not update order", zap.String("order", orderId), zap.Error(err))
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		sendOrderConfirmation(order)
		PublishOrderEvent("order.paid", order.ID, order.CustomerName, order.Total)
	}

	return c.SendStatus(fiber.StatusOK)
}

func sendOrderConfirmation(order model.Order) {
	lines := make([]utils.OrderLine, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, utils.OrderLine{Quantity: it.Quantity, Title: it.Title, Price: it.Price})
	}
	utils.SendOrderConfirmationEmail(order.CustomerEmail, utils.OrderConfirmationData{
		OrderID:    order.ID,
		Items:      lines,
		Total:      order.Total,
		StatusLink: config.ConfigDefault("APP_URL", "http://localhost:8002") + "/api/v1/order/status/" + order.ID,
	})
}

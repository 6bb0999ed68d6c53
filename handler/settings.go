package handler

import (
	"bakery_store/constants"
	"bakery_store/database"
	"bakery_store/model"
	"bakery_store/utils"

	"github.com/gofiber/fiber/v2"
)

// GetPaymentSettings returns the stored gateway configuration with secrets
// masked.
func GetPaymentSettings(c *fiber.Ctx) error {
	settings := loadPaymentSettings()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"gateway":            settings.Gateway,
		"api_key_set":        settings.APIKey != "",
		"webhook_secret_set": settings.WebhookSecret != "",
	})
}

// UpdatePaymentSettings saves the gateway credentials. Blank fields keep
// their current value so the admin can rotate one key at a time.
func UpdatePaymentSettings(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSettings").(model.UpdatePaymentSettingsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	settings, err := database.Settings.ByID(model.SETTINGS_PAYMENT)
	exists := err == nil
	if !exists {
		settings = model.PaymentSettings{ID: model.SETTINGS_PAYMENT}
	}

	settings.Gateway = input.Gateway
	if input.APIKey != "" {
		settings.APIKey = input.APIKey
	}
	if input.APISecret != "" {
		settings.APISecret = input.APISecret
	}
	if input.WebhookSecret != "" {
		settings.WebhookSecret = input.WebhookSecret
	}

	if exists {
		err = database.Settings.Update(model.SETTINGS_PAYMENT, settings)
	} else {
		err = database.Settings.Append(settings)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"gateway":            settings.Gateway,
		"api_key_set":        settings.APIKey != "",
		"webhook_secret_set": settings.WebhookSecret != "",
	})
}

package validate

import (
	"bakery_store/config"
	"bakery_store/model"
	"bakery_store/utils"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Custom orders need lead time: pickup at least 2 and at most 30 days out.
const (
	minPickupLeadDays = 2
	maxPickupLeadDays = 30
)

// shopLocation is the timezone the bakery counts its days in. Defaults to
// the server's local time when SHOP_TIMEZONE is unset or invalid.
func shopLocation() *time.Location {
	if tz := config.Config("SHOP_TIMEZONE"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

// checkPickupDate enforces the lead-time window counting whole days from
// midnight in now's location, so a request just after midnight still gets
// the full lead time.
func checkPickupDate(pickup, now time.Time) error {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	day := time.Date(pickup.Year(), pickup.Month(), pickup.Day(), 0, 0, 0, 0, loc)

	if day.Before(today.AddDate(0, 0, minPickupLeadDays)) {
		return errors.New("pickup too soon")
	}
	if day.After(today.AddDate(0, 0, maxPickupLeadDays)) {
		return errors.New("pickup too far out")
	}
	return nil
}

func CreateCustomOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCustomOrderInput
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

		pickup, err := time.Parse("2006-01-02", input.PickupDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				"Invalid pickup date", err, "pickup_date")
		}

		if err := checkPickupDate(pickup, time.Now().In(shopLocation())); err != nil {
			msg := "Pickup date must be at least 2 days from now"
			if err.Error() == "pickup too far out" {
				msg = "Pickup date must be within 30 days"
			}
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, msg, err, "pickup_date")
		}

		c.Locals("inputCustomOrder", input)
		return c.Next()
	}
}

func QuoteCustomOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.QuoteCustomOrderInput
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

		c.Locals("inputQuote", input)
		return c.Next()
	}
}

package handler

import (
	"bakery_store/config"
	"bakery_store/constants"
	"bakery_store/database"
	"bakery_store/helper"
	"bakery_store/logger"
	"bakery_store/model"
	"bakery_store/utils"
	"errors"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func orderFilterFromQuery(c *fiber.Ctx) model.OrderFilter {
	return model.OrderFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment"),
		Search:        c.Query("q"),
		Type:          c.Query("type", "all"),
	}
}

// GetOrders lists both order families for the admin dashboard, filtered and
// sorted newest first. ?format=csv turns the same selection into an export.
func GetOrders(c *fiber.Ctx) error {
	filter := orderFilterFromQuery(c)

	standard, err := database.Orders.All()
	if err != nil {
		logger.Error("failed to load orders", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	custom, err := database.CustomOrders.All()
	if err != nil {
		logger.Error("failed to load custom orders", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	standard = helper.FilterOrders(standard, filter)
	custom = helper.FilterCustomOrders(custom, filter)

	if filter.Type == "standard" {
		custom = []model.CustomOrder{}
	} else if filter.Type == "custom" {
		standard = []model.Order{}
	}

	if c.Query("format") == "csv" {
		return respondOrdersCSV(c, standard, custom, filter.Type)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"standard_orders":  standard,
		"custom_orders":    custom,
		"statuses":         constants.OrderStatuses,
		"payment_statuses": constants.PaymentStatuses,
	})
}

// ExportOrders streams the full order book as CSV, no filters applied.
func ExportOrders(c *fiber.Ctx) error {
	standard, err := database.Orders.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	custom, err := database.CustomOrders.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	data, err := utils.GenerateCombinedOrdersCSV(standard, custom)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders_export.csv"`)
	return c.SendString(data)
}

func respondOrdersCSV(c *fiber.Ctx, standard []model.Order, custom []model.CustomOrder, orderType string) error {
	var data, filename string
	var err error

	switch orderType {
	case "custom":
		data, err = utils.GenerateCustomOrdersCSV(custom)
		filename = "custom_orders.csv"
	case "standard":
		data, err = utils.GenerateOrdersCSV(standard)
		filename = "orders.csv"
	default:
		var std, cst string
		std, err = utils.GenerateOrdersCSV(standard)
		if err == nil {
			cst, err = utils.GenerateCustomOrdersCSV(custom)
		}
		data = std + "\nCustom Orders:\n" + cst
		filename = "all_orders.csv"
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.SendString(data)
}

// GetOrderDetail returns one order by id, checking the standard collection
// first and falling back to custom orders.
func GetOrderDetail(c *fiber.Ctx) error {
	orderId, _ := c.Locals("inputId").(string)

	order, err := database.Orders.ByID(orderId)
	if err == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, order)
	}
	if !errors.Is(err, database.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	customOrder, err := database.CustomOrders.ByID(orderId)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customOrder)
}

// UpdateOrderStatus sets a new lifecycle status. Any status can follow any
// other; only membership in the vocabulary is enforced.
func UpdateOrderStatus(c *fiber.Ctx) error {
	orderId, _ := c.Locals("inputId").(string)
	input, _ := c.Locals("inputStatus").(model.UpdateOrderStatusInput)
	now := time.Now().UTC()

	if order, err := database.Orders.ByID(orderId); err == nil {
		order.Status = input.Status
		order.UpdatedAt = &now
		if err := database.Orders.Update(orderId, order); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, order)
	} else if !errors.Is(err, database.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	customOrder, err := database.CustomOrders.ByID(orderId)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	customOrder.Status = input.Status
	customOrder.UpdatedAt = &now
	if err := database.CustomOrders.Update(orderId, customOrder); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customOrder)
}

func UpdatePaymentStatus(c *fiber.Ctx) error {
	orderId, _ := c.Locals("inputId").(string)
	input, _ := c.Locals("inputPaymentStatus").(model.UpdatePaymentStatusInput)
	now := time.Now().UTC()

	if order, err := database.Orders.ByID(orderId); err == nil {
		order.PaymentStatus = input.PaymentStatus
		order.UpdatedAt = &now
		if err := database.Orders.Update(orderId, order); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, order)
	} else if !errors.Is(err, database.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	customOrder, err := database.CustomOrders.ByID(orderId)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	customOrder.PaymentStatus = input.PaymentStatus
	customOrder.UpdatedAt = &now
	if err := database.CustomOrders.Update(orderId, customOrder); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customOrder)
}

// AddOrderNote appends an admin note; notes are never edited or removed.
func AddOrderNote(c *fiber.Ctx) error {
	orderId, _ := c.Locals("inputId").(string)
	input, _ := c.Locals("inputNote").(model.AddOrderNoteInput)

	by := "admin"
	if claim, ok := helper.GetInfoUserFromToken(c); ok {
		by = claim.Email
	}
	note := model.OrderNote{Text: input.Note, Date: time.Now().UTC(), By: by}

	if order, err := database.Orders.ByID(orderId); err == nil {
		order.Notes = append(order.Notes, note)
		if err := database.Orders.Update(orderId, order); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, order)
	} else if !errors.Is(err, database.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	customOrder, err := database.CustomOrders.ByID(orderId)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	customOrder.Notes = append(customOrder.Notes, note)
	if err := database.CustomOrders.Update(orderId, customOrder); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customOrder)
}

// BatchUpdateOrders applies the same status fields to every listed id across
// both collections. Per-record application: ids that fail to match simply
// don't count, nothing rolls back.
func BatchUpdateOrders(c *fiber.Ctx) error {
	input, _ := c.Locals("inputBatch").(model.BatchUpdateOrdersInput)
	now := time.Now().UTC()

	standard, err := database.Orders.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	custom, err := database.CustomOrders.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	standard, stdCount := helper.ApplyBatchUpdate(standard, input.OrderIDs, input.Status, input.PaymentStatus, now)
	custom, cstCount := helper.ApplyBatchUpdateCustom(custom, input.OrderIDs, input.Status, input.PaymentStatus, now)

	updated := 0
	if stdCount > 0 {
		if err := database.Orders.ReplaceAll(standard); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		updated += stdCount
	}
	if cstCount > 0 {
		if err := database.CustomOrders.ReplaceAll(custom); err != nil {
			// The standard batch already landed; report the partial result.
			logger.Error("batch update saved partially", zap.Int("updated", updated), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Batch update applied partially",
				"updated": updated,
			})
		}
		updated += cstCount
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"updated": updated})
}

// GetOrderStatus is the public order tracking endpoint. The response carries
// a pickup QR pointing back at this URL.
func GetOrderStatus(c *fiber.Ctx) error {
	orderId := c.Params("orderId")

	statusLink := config.ConfigDefault("APP_URL", "http://localhost:8002") + "/api/v1/order/status/" + orderId

	if order, err := database.Orders.ByID(orderId); err == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"order":     order,
			"is_custom": false,
			"qr_code":   utils.QRCodeDataURI(statusLink, 400),
		})
	} else if !errors.Is(err, database.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	customOrder, err := database.CustomOrders.ByID(orderId)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":     customOrder,
		"is_custom": true,
		"qr_code":   utils.QRCodeDataURI(statusLink, 400),
	})
}

// GetMyOrders returns the logged-in customer's orders, both families merged
// and sorted newest first.
func GetMyOrders(c *fiber.Ctx) error {
	claim, ok := helper.GetInfoUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	standard, err := database.Orders.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	custom, err := database.CustomOrders.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	type ownedOrder struct {
		Type      string    `json:"type"`
		Order     any       `json:"order"`
		CreatedAt time.Time `json:"-"`
	}

	mine := []ownedOrder{}
	for _, o := range standard {
		if o.UserID == claim.UserID {
			mine = append(mine, ownedOrder{Type: "standard", Order: o, CreatedAt: o.CreatedAt})
		}
	}
	for _, o := range custom {
		if o.UserID == claim.UserID {
			mine = append(mine, ownedOrder{Type: "custom", Order: o, CreatedAt: o.CreatedAt})
		}
	}

	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})

	return utils.SuccessResponse(c, fiber.StatusOK, mine)
}

package handler

import (
	"bakery_store/constants"
	"bakery_store/database"
	"bakery_store/utils"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetAdminStats aggregates the dashboard numbers: catalog and order counts,
// revenue from paid standard orders, and the most recent activity.
func GetAdminStats(c *fiber.Ctx) error {
	products, err := database.Products.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	orders, err := database.Orders.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	customOrders, err := database.CustomOrders.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	posts, err := database.Posts.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	pendingOrders := 0
	revenue := 0.0
	for _, o := range orders {
		if o.Status == constants.ORDER_STATUS_PENDING {
			pendingOrders++
		}
		if o.PaymentStatus == constants.PAYMENT_STATUS_PAID {
			revenue += o.Total
		}
	}
	for _, o := range customOrders {
		if o.Status == constants.ORDER_STATUS_PENDING {
			pendingOrders++
		}
		if o.PaymentStatus == constants.PAYMENT_STATUS_PAID && o.QuotedTotal != nil {
			revenue += *o.QuotedTotal
		}
	}

	now := time.Now().UTC()
	publishedPosts := 0
	for _, p := range posts {
		if p.IsPublic(now) {
			publishedPosts++
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"total_products":      len(products),
		"total_orders":        len(orders),
		"total_custom_orders": len(customOrders),
		"pending_orders":      pendingOrders,
		"total_revenue":       revenue,
		"total_posts":         len(posts),
		"published_posts":     publishedPosts,
		"recent_orders":       firstN(orders, 5),
		"recent_posts":        firstN(posts, 5),
	})
}

func firstN[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

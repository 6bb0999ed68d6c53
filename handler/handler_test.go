package handler_test

import (
	"bakery_store/constants"
	"bakery_store/database"
	"bakery_store/model"
	"bakery_store/router"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAIL", "admin@test.local")
	t.Setenv("ADMIN_PASSWORD", "hunter22")

	database.ConnectDir(t.TempDir())
	database.SeedData()

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, cookies []*http.Cookie) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var envelope struct {
		Status string         `json:"status"`
		Data   map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "success", envelope.Status)
	return envelope.Data
}

func loginAdmin(t *testing.T, app *fiber.App) []*http.Cookie {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/v1/auth/login", fiber.Map{
		"email":    "admin@test.local",
		"password": "hunter22",
	}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestPublicProductListShowsSeededCatalog(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/v1/products/", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Status string          `json:"status"`
		Data   []model.Product `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.NotEmpty(t, envelope.Data)
	for _, p := range envelope.Data {
		assert.True(t, p.Visible)
	}
}

func TestProductDetailHidesInvisibleFromGuests(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, database.Products.Append(model.Product{
		ID: "prod-secret", Slug: "secret-cake", Title: "Secret Cake", Visible: false,
		CreatedAt: time.Now().UTC(),
	}))

	resp := doJSON(t, app, "GET", "/api/v1/products/secret-cake", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/products/nope", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/auth/login", fiber.Map{
		"email":    "admin@test.local",
		"password": "wrong",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/v1/admin/stats", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	cookies := loginAdmin(t, app)
	resp = doJSON(t, app, "GET", "/api/v1/admin/stats", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.EqualValues(t, 4, data["total_products"])
	assert.EqualValues(t, 0, data["total_orders"])
}

func TestCheckoutWithoutGatewayConfigured(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/cart/checkout", fiber.Map{
		"customer": fiber.Map{"name": "Thandi", "email": "thandi@example.com"},
		"items": []fiber.Map{
			{"product_id": "prod-1", "title": "Sourdough", "quantity": 2, "price": 45.0},
		},
	}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// The failed checkout must not leave an order behind.
	orders, err := database.Orders.All()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/cart/checkout", fiber.Map{
		"customer": fiber.Map{"name": "Thandi", "email": "thandi@example.com"},
		"items":    []fiber.Map{},
	}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateCustomOrder(t *testing.T) {
	app := newTestApp(t)
	pickup := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	resp := doJSON(t, app, "POST", "/api/v1/order/custom", fiber.Map{
		"name":           "Ayesha Khan",
		"email":          "ayesha@example.com",
		"size":           "20cm",
		"flavor":         "red velvet",
		"frosting":       "cream cheese",
		"design_details": "gold leaf, two tiers",
		"pickup_date":    pickup,
	}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	orders, err := database.CustomOrders.All()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Contains(t, orders[0].ID, "custom-")
	assert.Equal(t, constants.ORDER_STATUS_PENDING, orders[0].Status)
	assert.Equal(t, pickup, orders[0].Details.PickupDate)
	assert.Nil(t, orders[0].QuotedTotal)
}

func TestCreateCustomOrderRejectsShortNotice(t *testing.T) {
	app := newTestApp(t)
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	resp := doJSON(t, app, "POST", "/api/v1/order/custom", fiber.Map{
		"name":           "Ayesha Khan",
		"email":          "ayesha@example.com",
		"size":           "20cm",
		"flavor":         "red velvet",
		"frosting":       "cream cheese",
		"design_details": "gold leaf",
		"pickup_date":    tomorrow,
	}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestQuoteCustomOrder(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, database.CustomOrders.Append(model.CustomOrder{
		ID: "custom-quoted", CustomerName: "Lerato", CustomerEmail: "lerato@example.com",
		Status: constants.ORDER_STATUS_PENDING, PaymentStatus: constants.PAYMENT_STATUS_PENDING,
		CreatedAt: time.Now().UTC(),
	}))

	cookies := loginAdmin(t, app)
	resp := doJSON(t, app, "POST", "/api/v1/admin/orders/custom-quoted/quote",
		fiber.Map{"total": 650.0}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	order, err := database.CustomOrders.ByID("custom-quoted")
	require.NoError(t, err)
	require.NotNil(t, order.QuotedTotal)
	assert.Equal(t, 650.0, *order.QuotedTotal)
	assert.NotNil(t, order.UpdatedAt)
}

func TestOrderStatusEndpoint(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, database.Orders.Append(model.Order{
		ID: "ord-track", CustomerName: "Thandi", CustomerEmail: "thandi@example.com",
		Status: constants.ORDER_STATUS_READY, PaymentStatus: constants.PAYMENT_STATUS_PAID,
		CreatedAt: time.Now().UTC(),
	}))

	resp := doJSON(t, app, "GET", "/api/v1/order/status/ord-track", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, false, data["is_custom"])
	assert.Contains(t, data["qr_code"], "data:image/png;base64,")

	resp = doJSON(t, app, "GET", "/api/v1/order/status/ord-nope", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateOrderStatusValidatesEnum(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, database.Orders.Append(model.Order{
		ID: "ord-upd", Status: constants.ORDER_STATUS_PENDING,
		PaymentStatus: constants.PAYMENT_STATUS_PENDING, CreatedAt: time.Now().UTC(),
	}))

	cookies := loginAdmin(t, app)

	resp := doJSON(t, app, "PATCH", "/api/v1/admin/orders/ord-upd/status",
		fiber.Map{"status": "teleported"}, cookies)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "PATCH", "/api/v1/admin/orders/ord-upd/status",
		fiber.Map{"status": constants.ORDER_STATUS_READY}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	order, err := database.Orders.ByID("ord-upd")
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_STATUS_READY, order.Status)
}

func TestBatchUpdateSpansBothCollections(t *testing.T) {
	app := newTestApp(t)
	now := time.Now().UTC()
	require.NoError(t, database.Orders.Append(model.Order{
		ID: "ord-b1", Status: constants.ORDER_STATUS_PENDING,
		PaymentStatus: constants.PAYMENT_STATUS_PENDING, CreatedAt: now,
	}))
	require.NoError(t, database.CustomOrders.Append(model.CustomOrder{
		ID: "custom-b1", Status: constants.ORDER_STATUS_PENDING,
		PaymentStatus: constants.PAYMENT_STATUS_PENDING, CreatedAt: now,
	}))

	cookies := loginAdmin(t, app)
	resp := doJSON(t, app, "PUT", "/api/v1/admin/orders/batch", fiber.Map{
		"order_ids": []string{"ord-b1", "custom-b1"},
		"status":    constants.ORDER_STATUS_CONFIRMED,
	}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.EqualValues(t, 2, data["updated"])

	std, err := database.Orders.ByID("ord-b1")
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_STATUS_CONFIRMED, std.Status)

	cst, err := database.CustomOrders.ByID("custom-b1")
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_STATUS_CONFIRMED, cst.Status)
}

func TestOrderLifecycleCreateConfirmFilter(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, database.Orders.Append(model.Order{
		ID: "ord-flow", CustomerName: "Thandi Nkosi", CustomerEmail: "thandi@example.com",
		Items: []model.OrderItem{{ProductID: "prod-1", Title: "Sourdough", Quantity: 2, Price: 45}},
		Total: 90, Status: constants.ORDER_STATUS_PENDING,
		PaymentStatus: constants.PAYMENT_STATUS_PENDING, CreatedAt: time.Now().UTC(),
	}))

	cookies := loginAdmin(t, app)

	resp := doJSON(t, app, "PATCH", "/api/v1/admin/orders/ord-flow/status",
		fiber.Map{"status": constants.ORDER_STATUS_CONFIRMED}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "PATCH", "/api/v1/admin/orders/ord-flow/payment-status",
		fiber.Map{"payment_status": constants.PAYMENT_STATUS_PAID}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/admin/orders/?status=confirmed&q=thandi", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	standard, ok := data["standard_orders"].([]any)
	require.True(t, ok)
	require.Len(t, standard, 1)
	row := standard[0].(map[string]any)
	assert.Equal(t, "ord-flow", row["id"])
	assert.Equal(t, constants.PAYMENT_STATUS_PAID, row["payment_status"])

	// A filter that should not match it.
	resp = doJSON(t, app, "GET", "/api/v1/admin/orders/?status=pending", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = decodeData(t, resp)
	assert.Empty(t, data["standard_orders"])
}

func TestAdminOrdersCSVExport(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, database.Orders.Append(model.Order{
		ID: "ord-csv", CustomerName: "Thandi", Status: constants.ORDER_STATUS_PENDING,
		PaymentStatus: constants.PAYMENT_STATUS_PENDING, CreatedAt: time.Now().UTC(),
	}))

	cookies := loginAdmin(t, app)
	resp := doJSON(t, app, "GET", "/api/v1/admin/orders/?format=csv", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, "Order ID")
	assert.Contains(t, body, "ord-csv")
	assert.Contains(t, body, "Custom Orders:")
}

func TestAdminFullExportSingleTable(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, database.Orders.Append(model.Order{
		ID: "ord-exp", CustomerName: "Thandi", Status: constants.ORDER_STATUS_CONFIRMED,
		PaymentStatus: constants.PAYMENT_STATUS_PAID, Total: 250, CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, database.CustomOrders.Append(model.CustomOrder{
		ID: "custom-exp", CustomerName: "Ayesha", Status: constants.ORDER_STATUS_PENDING,
		PaymentStatus: constants.PAYMENT_STATUS_PENDING,
		Details:       model.CustomOrderDetails{Size: "25cm", Flavor: "chocolate"},
		CreatedAt:     time.Now().UTC(),
	}))

	cookies := loginAdmin(t, app)
	resp := doJSON(t, app, "GET", "/api/v1/admin/orders/export", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "orders_export.csv")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, "Order ID,Type,Date,Customer Name,Email,Status,Total/Details")
	assert.Contains(t, body, "ord-exp,Regular")
	assert.Contains(t, body, "R250.00")
	assert.Contains(t, body, "custom-exp,Custom")
	assert.Contains(t, body, "25cm - chocolate")
	assert.NotContains(t, body, "Custom Orders:")
}

func TestRegisterAndMyOrders(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/auth/register", fiber.Map{
		"email":            "customer@example.com",
		"password":         "sekrit123",
		"confirm_password": "sekrit123",
	}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()

	users, err := database.Users.All()
	require.NoError(t, err)
	require.Len(t, users, 2) // seeded admin plus the new customer

	resp = doJSON(t, app, "GET", "/api/v1/order/mine", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

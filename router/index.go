package router

import (
	"bakery_store/handler"
	"bakery_store/middleware"
	"bakery_store/validate"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/register", validate.RegisterUser(), handler.Register)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	// Storefront
	products := v1.Group("/products", logger.New())
	products.Get("/", middleware.OptionalJWT(), handler.GetProducts)
	products.Get("/featured", middleware.OptionalJWT(), handler.GetFeaturedProducts)
	products.Get("/:slug", middleware.OptionalJWT(), handler.GetProductDetail)

	blog := v1.Group("/blog", logger.New())
	blog.Get("/", middleware.OptionalJWT(), handler.GetPosts)
	blog.Get("/:slug", middleware.OptionalJWT(), handler.GetPostDetail)

	cart := v1.Group("/cart", logger.New())
	cart.Post("/checkout", middleware.OptionalJWT(), validate.Checkout(), handler.Checkout)
	cart.Get("/success/:orderId", handler.CheckoutSuccess)
	cart.Get("/cancel/:orderId", handler.CheckoutCancel)

	order := v1.Group("/order", logger.New())
	order.Post("/custom", middleware.OptionalJWT(), validate.CreateCustomOrder(), handler.CreateCustomOrder)
	order.Get("/status/:orderId", handler.GetOrderStatus)
	order.Get("/mine", middleware.Protected(), handler.GetMyOrders)

	v1.Post("/contact", middleware.RateLimit(5, time.Minute), validate.ContactMessage(), handler.Contact)

	// Server-to-server payment confirmation, no auth.
	app.Post("/webhooks/stripe", handler.StripeWebhook)

	// Admin
	admin := v1.Group("/admin", logger.New(), middleware.Protected(), middleware.AdminOnly())
	admin.Get("/stats", handler.GetAdminStats)

	adminOrders := admin.Group("/orders")
	adminOrders.Get("/", handler.GetOrders)
	adminOrders.Get("/export", handler.ExportOrders)
	adminOrders.Put("/batch", validate.BatchUpdateOrders(), handler.BatchUpdateOrders)
	adminOrders.Get("/:orderId", validate.GetById("orderId"), handler.GetOrderDetail)
	adminOrders.Patch("/:orderId/status", validate.GetById("orderId"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	adminOrders.Patch("/:orderId/payment-status", validate.GetById("orderId"), validate.UpdatePaymentStatus(), handler.UpdatePaymentStatus)
	adminOrders.Post("/:orderId/note", validate.GetById("orderId"), validate.AddOrderNote(), handler.AddOrderNote)
	adminOrders.Post("/:orderId/quote", validate.GetById("orderId"), validate.QuoteCustomOrder(), handler.QuoteCustomOrder)

	adminProducts := admin.Group("/products")
	adminProducts.Get("/", handler.GetProductsAdmin)
	adminProducts.Post("/", validate.CreateProduct(), handler.CreateProduct)
	adminProducts.Put("/:productId", validate.EditProduct("productId"), handler.EditProduct)
	adminProducts.Delete("/", validate.Delete(), handler.DeleteProducts)

	adminBlog := admin.Group("/blog")
	adminBlog.Get("/", handler.GetPostsAdmin)
	adminBlog.Post("/", validate.CreatePost(), handler.CreatePost)
	adminBlog.Put("/:postId", validate.EditPost("postId"), handler.EditPost)
	adminBlog.Delete("/", validate.Delete(), handler.DeletePosts)

	admin.Post("/upload/:category", handler.UploadImage)
	admin.Post("/cloudinary-signature", handler.GenerateSignature)

	admin.Get("/settings/payment", handler.GetPaymentSettings)
	admin.Put("/settings/payment", validate.UpdatePaymentSettings(), handler.UpdatePaymentSettings)

	admin.Get("/orders-feed", websocket.New(handler.OrderFeed))
}

package constants

// Order lifecycle statuses. The strings are persisted in the JSON collections
// and must not change.
const (
	ORDER_STATUS_PENDING     = "pending"
	ORDER_STATUS_CONFIRMED   = "confirmed"
	ORDER_STATUS_IN_PROGRESS = "in_progress"
	ORDER_STATUS_READY       = "ready"
	ORDER_STATUS_COMPLETED   = "completed"
	ORDER_STATUS_CANCELLED   = "cancelled"
)

const (
	PAYMENT_STATUS_PENDING   = "pending"
	PAYMENT_STATUS_PAID      = "paid"
	PAYMENT_STATUS_REFUNDED  = "refunded"
	PAYMENT_STATUS_CANCELLED = "cancelled"
)

var OrderStatuses = []string{
	ORDER_STATUS_PENDING,
	ORDER_STATUS_CONFIRMED,
	ORDER_STATUS_IN_PROGRESS,
	ORDER_STATUS_READY,
	ORDER_STATUS_COMPLETED,
	ORDER_STATUS_CANCELLED,
}

var PaymentStatuses = []string{
	PAYMENT_STATUS_PENDING,
	PAYMENT_STATUS_PAID,
	PAYMENT_STATUS_REFUNDED,
	PAYMENT_STATUS_CANCELLED,
}

// Collection file names under the data directory.
const (
	COLLECTION_ORDERS        = "orders.json"
	COLLECTION_CUSTOM_ORDERS = "custom_orders.json"
	COLLECTION_PRODUCTS      = "products.json"
	COLLECTION_BLOG          = "blog.json"
	COLLECTION_USERS         = "users.json"
	COLLECTION_SETTINGS      = "settings.json"
)

// Response messages.
const (
	ERROR_INTERNAL_ERROR    = "Internal server error"
	MISSING_LOGIN_INPUT     = "Email and password are required"
	INVALID_EMAIL           = "No account found with this email address"
	INVALID_PASSWORD        = "Invalid password"
	EMAIL_TAKEN             = "Email already registered"
	NOT_ADMIN               = "Admin permission required"
	NOT_LOGGED_IN           = "Please log in first"
	ORDER_NOT_FOUND         = "Order not found"
	PRODUCT_NOT_FOUND       = "Product not found"
	POST_NOT_FOUND          = "Post not found"
	INVALID_ORDER_STATUS    = "Invalid order status"
	INVALID_PAYMENT_STATUS  = "Invalid payment status"
	PAYMENT_NOT_CONFIGURED  = "Payment gateway not configured"
	CHECKOUT_FAILED         = "Could not process checkout"
	INVALID_INPUT           = "Invalid input"
	TOO_MANY_REQUESTS       = "Too many requests, slow down"
	UPLOAD_INVALID_CATEGORY = "Unknown upload category"
	UPLOAD_INVALID_FILE     = "File type not allowed"
	UPLOAD_NOT_CONFIGURED   = "Cloudinary is not configured"
)

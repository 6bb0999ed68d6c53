package model

import "time"

type OrderItem struct {
	ProductID string  `json:"product_id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"gte=0"` // unit price at time of order
}

// OrderNote is an admin-visible annotation appended to an order.
type OrderNote struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
	By   string    `json:"by"`
}

type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id,omitempty"` // empty for guest checkout
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	SessionID     string      `json:"session_id,omitempty"` // payment gateway session
	Notes         []OrderNote `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     *time.Time  `json:"updated_at,omitempty"`
}

func (o Order) RecordID() string { return o.ID }

// ComputeTotal is the single source of truth for an order total: the sum of
// quantity times unit price across the line items.
func ComputeTotal(items []OrderItem) float64 {
	total := 0.0
	for _, it := range items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}

type CheckoutCustomer struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

type CheckoutInput struct {
	Customer CheckoutCustomer `json:"customer" validate:"required"`
	Items    []OrderItem      `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

type AddOrderNoteInput struct {
	Note string `json:"note" validate:"required"`
}

type BatchUpdateOrdersInput struct {
	OrderIDs      []string `json:"order_ids" validate:"required,min=1"`
	Status        *string  `json:"status"`
	PaymentStatus *string  `json:"payment_status"`
}

// OrderFilter carries the admin listing query parameters.
type OrderFilter struct {
	Status        string
	PaymentStatus string
	Search        string // matches customer name, email or id, case-insensitive
	Type          string // all | standard | custom
}

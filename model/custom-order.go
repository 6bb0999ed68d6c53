package model

import "time"

// CustomOrderDetails is the free-form description of a custom cake or
// pastry. Nothing here is priced until an admin quotes the order.
type CustomOrderDetails struct {
	Size                string `json:"size"`
	Flavor              string `json:"flavor"`
	Filling             string `json:"filling,omitempty"`
	Frosting            string `json:"frosting"`
	Message             string `json:"message,omitempty"`
	DesignDetails       string `json:"design_details"`
	ReferenceImage      string `json:"reference_image,omitempty"`
	PickupDate          string `json:"pickup_date"` // YYYY-MM-DD
	Allergies           string `json:"allergies,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

type CustomOrder struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	Details       CustomOrderDetails `json:"details"`
	QuotedTotal   *float64           `json:"quoted_total,omitempty"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	Notes         []OrderNote        `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     *time.Time         `json:"updated_at,omitempty"`
}

func (o CustomOrder) RecordID() string { return o.ID }

type CreateCustomOrderInput struct {
	Name                string `json:"name" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone"`
	Size                string `json:"size" validate:"required"`
	Flavor              string `json:"flavor" validate:"required"`
	Filling             string `json:"filling"`
	Frosting            string `json:"frosting" validate:"required"`
	Message             string `json:"message"`
	DesignDetails       string `json:"design_details" validate:"required"`
	ReferenceImage      string `json:"reference_image"`
	PickupDate          string `json:"pickup_date" validate:"required,datetime=2006-01-02"`
	Allergies           string `json:"allergies"`
	SpecialInstructions string `json:"special_instructions"`
}

type QuoteCustomOrderInput struct {
	Total float64 `json:"total" validate:"required,gt=0"`
}

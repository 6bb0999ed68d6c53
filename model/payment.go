package model

// SETTINGS_PAYMENT is the fixed id of the singleton settings record.
const SETTINGS_PAYMENT = "payment"

// PaymentSettings is the admin-editable payment gateway configuration,
// persisted in the settings collection. Environment variables act as the
// fallback when nothing has been saved yet.
type PaymentSettings struct {
	ID            string `json:"id"`
	Gateway       string `json:"gateway"` // currently only "stripe"
	APIKey        string `json:"api_key"`
	APISecret     string `json:"api_secret,omitempty"`
	WebhookSecret string `json:"webhook_secret,omitempty"`
}

func (s PaymentSettings) RecordID() string { return s.ID }

type UpdatePaymentSettingsInput struct {
	Gateway       string `json:"gateway" validate:"required,oneof=stripe"`
	APIKey        string `json:"api_key" validate:"required"`
	APISecret     string `json:"api_secret"`
	WebhookSecret string `json:"webhook_secret"`
}

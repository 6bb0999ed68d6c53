package utils

import (
	"bakery_store/model"
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

var standardOrderHeader = []string{
	"Order ID", "Customer Name", "Email", "Phone", "Status", "Payment",
	"Items", "Total", "Created", "Updated", "Notes",
}

var customOrderHeader = []string{
	"Order ID", "Customer Name", "Email", "Phone", "Status", "Payment",
	"Size", "Flavor", "Filling", "Frosting", "Message", "Pickup Date",
	"Allergies", "Special Instructions", "Created", "Updated", "Notes",
}

// GenerateOrdersCSV serializes standard orders, one row per record, header
// first. Column order is fixed; encoding/csv handles quoting.
func GenerateOrdersCSV(orders []model.Order) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(standardOrderHeader); err != nil {
		return "", err
	}
	for _, o := range orders {
		items := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, fmt.Sprintf("%s (%dx @ %.2f)", it.Title, it.Quantity, it.Price))
		}
		if err := w.Write([]string{
			o.ID,
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.Status,
			o.PaymentStatus,
			strings.Join(items, "; "),
			fmt.Sprintf("%.2f", o.Total),
			formatTime(o.CreatedAt),
			formatTimePtr(o.UpdatedAt),
			joinNotes(o.Notes),
		}); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// GenerateCustomOrdersCSV serializes custom orders with the detail columns.
func GenerateCustomOrdersCSV(orders []model.CustomOrder) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(customOrderHeader); err != nil {
		return "", err
	}
	for _, o := range orders {
		d := o.Details
		if err := w.Write([]string{
			o.ID,
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.Status,
			o.PaymentStatus,
			d.Size,
			d.Flavor,
			d.Filling,
			d.Frosting,
			d.Message,
			d.PickupDate,
			d.Allergies,
			d.SpecialInstructions,
			formatTime(o.CreatedAt),
			formatTimePtr(o.UpdatedAt),
			joinNotes(o.Notes),
		}); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

var combinedOrderHeader = []string{
	"Order ID", "Type", "Date", "Customer Name", "Email", "Status", "Total/Details",
}

// GenerateCombinedOrdersCSV writes both order families into one table,
// tagged by a Type column. The last column carries the money for standard
// orders and a size/flavor summary for custom ones.
func GenerateCombinedOrdersCSV(standard []model.Order, custom []model.CustomOrder) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(combinedOrderHeader); err != nil {
		return "", err
	}
	for _, o := range standard {
		if err := w.Write([]string{
			o.ID,
			"Regular",
			formatTime(o.CreatedAt),
			o.CustomerName,
			o.CustomerEmail,
			o.Status,
			fmt.Sprintf("R%.2f", o.Total),
		}); err != nil {
			return "", err
		}
	}
	for _, o := range custom {
		if err := w.Write([]string{
			o.ID,
			"Custom",
			formatTime(o.CreatedAt),
			o.CustomerName,
			o.CustomerEmail,
			o.Status,
			fmt.Sprintf("%s - %s", o.Details.Size, o.Details.Flavor),
		}); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

func joinNotes(notes []model.OrderNote) string {
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, n.Text)
	}
	return strings.Join(parts, "; ")
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

package helper

import (
	"bakery_store/model"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderID mints a short public order id, e.g. "ord-3fa85f64".
func NewOrderID() string {
	return "ord-" + uuid.NewString()[:8]
}

// NewCustomOrderID uses the "custom-" prefix so the two order families can
// be told apart by id alone.
func NewCustomOrderID() string {
	return "custom-" + uuid.NewString()[:8]
}

func matchesSearch(q, name, email, id string) bool {
	return strings.Contains(strings.ToLower(name), q) ||
		strings.Contains(strings.ToLower(email), q) ||
		strings.Contains(strings.ToLower(id), q)
}

// FilterOrders applies the admin listing filter and sorts newest first.
func FilterOrders(orders []model.Order, f model.OrderFilter) []model.Order {
	q := strings.ToLower(f.Search)
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.PaymentStatus != "" && o.PaymentStatus != f.PaymentStatus {
			continue
		}
		if q != "" && !matchesSearch(q, o.CustomerName, o.CustomerEmail, o.ID) {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// FilterCustomOrders mirrors FilterOrders for the custom collection.
func FilterCustomOrders(orders []model.CustomOrder, f model.OrderFilter) []model.CustomOrder {
	q := strings.ToLower(f.Search)
	out := make([]model.CustomOrder, 0, len(orders))
	for _, o := range orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.PaymentStatus != "" && o.PaymentStatus != f.PaymentStatus {
			continue
		}
		if q != "" && !matchesSearch(q, o.CustomerName, o.CustomerEmail, o.ID) {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ApplyBatchUpdate sets the given status fields on every order whose id is
// in ids, touching nothing else. Returns how many records changed.
func ApplyBatchUpdate(orders []model.Order, ids []string, status, paymentStatus *string, now time.Time) ([]model.Order, int) {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	updated := 0
	for i := range orders {
		if !idSet[orders[i].ID] {
			continue
		}
		if status != nil {
			orders[i].Status = *status
		}
		if paymentStatus != nil {
			orders[i].PaymentStatus = *paymentStatus
		}
		orders[i].UpdatedAt = &now
		updated++
	}
	return orders, updated
}

// ApplyBatchUpdateCustom is the custom-order counterpart of ApplyBatchUpdate.
func ApplyBatchUpdateCustom(orders []model.CustomOrder, ids []string, status, paymentStatus *string, now time.Time) ([]model.CustomOrder, int) {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	updated := 0
	for i := range orders {
		if !idSet[orders[i].ID] {
			continue
		}
		if status != nil {
			orders[i].Status = *status
		}
		if paymentStatus != nil {
			orders[i].PaymentStatus = *paymentStatus
		}
		orders[i].UpdatedAt = &now
		updated++
	}
	return orders, updated
}

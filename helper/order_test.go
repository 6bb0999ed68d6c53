package helper

import (
	"bakery_store/constants"
	"bakery_store/model"
	"bakery_store/utils"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderIDPrefixes(t *testing.T) {
	assert.True(t, strings.HasPrefix(NewOrderID(), "ord-"))
	assert.True(t, strings.HasPrefix(NewCustomOrderID(), "custom-"))
	assert.NotEqual(t, NewOrderID(), NewOrderID())
}

func sampleOrders() []model.Order {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return []model.Order{
		{
			ID: "ord-aaa", CustomerName: "Thandi Nkosi", CustomerEmail: "thandi@example.com",
			Status: constants.ORDER_STATUS_PENDING, PaymentStatus: constants.PAYMENT_STATUS_PENDING,
			CreatedAt: base,
		},
		{
			ID: "ord-bbb", CustomerName: "Pieter van Wyk", CustomerEmail: "pieter@example.com",
			Status: constants.ORDER_STATUS_CONFIRMED, PaymentStatus: constants.PAYMENT_STATUS_PAID,
			CreatedAt: base.Add(time.Hour),
		},
		{
			ID: "ord-ccc", CustomerName: "Ayesha Khan", CustomerEmail: "ayesha@example.com",
			Status: constants.ORDER_STATUS_COMPLETED, PaymentStatus: constants.PAYMENT_STATUS_PAID,
			CreatedAt: base.Add(2 * time.Hour),
		},
	}
}

func TestFilterOrdersByStatus(t *testing.T) {
	got := FilterOrders(sampleOrders(), model.OrderFilter{Status: constants.ORDER_STATUS_CONFIRMED})
	require.Len(t, got, 1)
	assert.Equal(t, "ord-bbb", got[0].ID)
}

func TestFilterOrdersByPaymentStatus(t *testing.T) {
	got := FilterOrders(sampleOrders(), model.OrderFilter{PaymentStatus: constants.PAYMENT_STATUS_PAID})
	require.Len(t, got, 2)
}

func TestFilterOrdersSearchIsCaseInsensitive(t *testing.T) {
	got := FilterOrders(sampleOrders(), model.OrderFilter{Search: "THANDI"})
	require.Len(t, got, 1)
	assert.Equal(t, "ord-aaa", got[0].ID)

	got = FilterOrders(sampleOrders(), model.OrderFilter{Search: "ord-ccc"})
	require.Len(t, got, 1)
	assert.Equal(t, "Ayesha Khan", got[0].CustomerName)

	got = FilterOrders(sampleOrders(), model.OrderFilter{Search: "pieter@example"})
	require.Len(t, got, 1)
	assert.Equal(t, "ord-bbb", got[0].ID)
}

func TestFilterOrdersSortsNewestFirst(t *testing.T) {
	got := FilterOrders(sampleOrders(), model.OrderFilter{})
	require.Len(t, got, 3)
	assert.Equal(t, "ord-ccc", got[0].ID)
	assert.Equal(t, "ord-aaa", got[2].ID)
}

func TestFilterOrdersCombinedFilters(t *testing.T) {
	got := FilterOrders(sampleOrders(), model.OrderFilter{
		Status: constants.ORDER_STATUS_COMPLETED,
		Search: "khan",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "ord-ccc", got[0].ID)

	got = FilterOrders(sampleOrders(), model.OrderFilter{
		Status: constants.ORDER_STATUS_COMPLETED,
		Search: "pieter",
	})
	assert.Empty(t, got)
}

func TestApplyBatchUpdate(t *testing.T) {
	orders := sampleOrders()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	updated, count := ApplyBatchUpdate(orders,
		[]string{"ord-aaa", "ord-ccc", "ord-missing"},
		utils.Ptr(constants.ORDER_STATUS_IN_PROGRESS), nil, now)

	assert.Equal(t, 2, count)
	assert.Equal(t, constants.ORDER_STATUS_IN_PROGRESS, updated[0].Status)
	require.NotNil(t, updated[0].UpdatedAt)
	assert.Equal(t, now, *updated[0].UpdatedAt)

	// Payment status was not in the update and must not move.
	assert.Equal(t, constants.PAYMENT_STATUS_PENDING, updated[0].PaymentStatus)

	// Untouched order keeps everything.
	assert.Equal(t, constants.ORDER_STATUS_CONFIRMED, updated[1].Status)
	assert.Nil(t, updated[1].UpdatedAt)
}

func TestApplyBatchUpdateBothFields(t *testing.T) {
	orders := sampleOrders()
	now := time.Now().UTC()

	updated, count := ApplyBatchUpdate(orders, []string{"ord-aaa"},
		utils.Ptr(constants.ORDER_STATUS_CANCELLED),
		utils.Ptr(constants.PAYMENT_STATUS_CANCELLED), now)

	assert.Equal(t, 1, count)
	assert.Equal(t, constants.ORDER_STATUS_CANCELLED, updated[0].Status)
	assert.Equal(t, constants.PAYMENT_STATUS_CANCELLED, updated[0].PaymentStatus)
}

func TestApplyBatchUpdateCustom(t *testing.T) {
	orders := []model.CustomOrder{
		{ID: "custom-aaa", CustomerName: "Lerato M", Status: constants.ORDER_STATUS_PENDING, PaymentStatus: constants.PAYMENT_STATUS_PENDING},
	}
	now := time.Now().UTC()

	updated, count := ApplyBatchUpdateCustom(orders, []string{"custom-aaa"},
		utils.Ptr(constants.ORDER_STATUS_READY), nil, now)

	assert.Equal(t, 1, count)
	assert.Equal(t, constants.ORDER_STATUS_READY, updated[0].Status)
}

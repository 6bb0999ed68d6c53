package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	items := []OrderItem{
		{ProductID: "prod-1", Title: "Sourdough", Quantity: 2, Price: 10.00},
		{ProductID: "prod-3", Title: "Croissant", Quantity: 1, Price: 5.00},
	}
	assert.Equal(t, 25.00, ComputeTotal(items))
}

func TestComputeTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ComputeTotal(nil))
	assert.Equal(t, 0.0, ComputeTotal([]OrderItem{}))
}

func TestComputeTotalFreeItem(t *testing.T) {
	items := []OrderItem{
		{ProductID: "prod-1", Title: "Sample", Quantity: 3, Price: 0},
	}
	assert.Equal(t, 0.0, ComputeTotal(items))
}

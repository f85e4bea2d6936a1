package ui

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

func TestRupees(t *testing.T) {
	assert.Equal(t, "₹50,000", Rupees(decimal.NewFromInt(50000)))
	assert.Equal(t, "₹1,000", Rupees(decimal.NewFromInt(1000)))
	assert.Equal(t, "₹0", Rupees(decimal.Zero))
	assert.Equal(t, "₹1,234.50", Rupees(decimal.NewFromFloat(1234.5)))
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, "[pending]", StatusBadge(model.StatusPending))
	assert.Equal(t, "[approved]", StatusBadge(model.StatusApproved))
	assert.Equal(t, "[rejected]", StatusBadge(model.StatusRejected))
	assert.Equal(t, "[draft]", StatusBadge(model.Status("draft")))
}

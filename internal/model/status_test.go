package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, "badge-pending", StatusPending.Badge())
	assert.Equal(t, "badge-approved", StatusApproved.Badge())
	assert.Equal(t, "badge-rejected", StatusRejected.Badge())
	// Unknown legacy values fall back to the pending badge.
	assert.Equal(t, "badge-pending", Status("draft").Badge())
}

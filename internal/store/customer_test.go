package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkliftcrm/internal/models"
)

func TestFirstCustomerNamedDuplicateNamesTakeFetchOrder(t *testing.T) {
	// Two customers both named Acme: the lookup is lossy and returns
	// only the one fetched first.
	customers := []models.Customer{
		{ID: 1, Name: "Acme", ContactDetails: "acme-east@example.com"},
		{ID: 2, Name: "Acme", ContactDetails: "acme-west@example.com"},
		{ID: 3, Name: "Borg"},
	}

	found, err := firstCustomerNamed(customers, "Acme")
	require.NoError(t, err)
	assert.Equal(t, 1, found.ID)
	assert.Equal(t, "acme-east@example.com", found.ContactDetails)
}

func TestFirstCustomerNamedUnknownName(t *testing.T) {
	customers := []models.Customer{{ID: 1, Name: "Acme"}}

	_, err := firstCustomerNamed(customers, "Initech")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFirstCustomerNamedEmptyList(t *testing.T) {
	_, err := firstCustomerNamed(nil, "Acme")
	assert.ErrorIs(t, err, ErrNotFound)
}

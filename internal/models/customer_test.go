package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleWithItems(id int, items ...Item) Sale {
	return Sale{
		ID:    id,
		Date:  NewISOTime(time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)),
		Items: items,
	}
}

func TestTotalOwedSumsStoredSaleCosts(t *testing.T) {
	customer := Customer{Name: "Acme"}
	customer.AddSale(Sale{ID: 1, TotalCost: 120.50})
	assert.Equal(t, 120.50, customer.TotalOwed())

	customer.AddSale(Sale{ID: 2, TotalCost: 30})
	assert.Equal(t, 150.50, customer.TotalOwed())
}

func TestTotalOwedIgnoresPaymentStatus(t *testing.T) {
	// The concrete Filter scenario: one sale of two filters at 25.00,
	// marked paid afterwards. Payment flags do not reduce the total.
	part := ServicePart{ID: 1, Name: "Filter", Price: 25.00}
	sale := saleWithItems(1, Item{Product: ServicePartProduct(part), Quantity: 2})
	sale.TotalCost = 50.00

	customer := Customer{ID: 1, Name: "Acme"}
	customer.AddSale(sale)
	require.Equal(t, 50.00, customer.TotalOwed())

	customer.MarkItemPaid("Filter")
	require.True(t, customer.Sales[0].Items[0].IsPaid)
	assert.Equal(t, 50.00, customer.TotalOwed())
}

func TestMarkForkliftPaid(t *testing.T) {
	customer := Customer{Name: "Acme"}
	customer.AddForklift(Forklift{ID: 1, Name: "CX-30", Price: 15000})
	customer.AddForklift(Forklift{ID: 2, Name: "CX-50", Price: 22000})

	customer.MarkForkliftPaid("CX-50")

	assert.False(t, customer.Forklifts[0].IsPaid)
	assert.True(t, customer.Forklifts[1].IsPaid)
}

func TestMarkForkliftPaidUnknownNameIsSilentNoop(t *testing.T) {
	customer := Customer{Name: "Acme"}
	customer.AddForklift(Forklift{ID: 1, Name: "CX-30", Price: 15000})

	customer.MarkForkliftPaid("no such forklift")

	assert.False(t, customer.Forklifts[0].IsPaid)
}

func TestMarkForkliftUnpaidReversesPaid(t *testing.T) {
	customer := Customer{Name: "Acme"}
	customer.AddForklift(Forklift{ID: 1, Name: "CX-30", Price: 15000, IsPaid: true})

	customer.MarkForkliftUnpaid("CX-30")

	assert.False(t, customer.Forklifts[0].IsPaid)
}

func TestMarkServicePartPaidFirstMatchOnly(t *testing.T) {
	customer := Customer{Name: "Acme"}
	customer.AddServicePart(ServicePart{ID: 1, Name: "Filter", Price: 25})
	customer.AddServicePart(ServicePart{ID: 2, Name: "Filter", Price: 27})

	customer.MarkServicePartPaid("Filter")

	// Duplicate names collide; only the first entry flips.
	assert.True(t, customer.ServiceParts[0].IsPaid)
	assert.False(t, customer.ServiceParts[1].IsPaid)
}

func TestMarkItemPaidFirstMatchAcrossSales(t *testing.T) {
	filter := ServicePartProduct(ServicePart{ID: 1, Name: "Filter", Price: 25})

	customer := Customer{Name: "Acme"}
	customer.AddSale(saleWithItems(1,
		Item{Product: ForkliftProduct(Forklift{ID: 1, Name: "CX-30", Price: 15000}), Quantity: 1},
		Item{Product: filter, Quantity: 2},
	))
	customer.AddSale(saleWithItems(2,
		Item{Product: filter, Quantity: 4},
	))

	customer.MarkItemPaid("Filter")

	// Sale-then-item order: the first Filter in sale 1 flips, the one
	// in sale 2 stays untouched.
	require.False(t, customer.Sales[0].Items[0].IsPaid)
	assert.True(t, customer.Sales[0].Items[1].IsPaid)
	assert.False(t, customer.Sales[1].Items[0].IsPaid)
}

func TestMarkItemPaidUnknownNameIsSilentNoop(t *testing.T) {
	customer := Customer{Name: "Acme"}
	customer.AddSale(saleWithItems(1,
		Item{Product: ServicePartProduct(ServicePart{ID: 1, Name: "Filter", Price: 25}), Quantity: 1},
	))

	customer.MarkItemPaid("no such item")

	assert.False(t, customer.Sales[0].Items[0].IsPaid)
}

func TestMarkItemUnpaidSameMatchPolicy(t *testing.T) {
	filter := ServicePartProduct(ServicePart{ID: 1, Name: "Filter", Price: 25})

	customer := Customer{Name: "Acme"}
	customer.AddSale(saleWithItems(1, Item{Product: filter, Quantity: 1, IsPaid: true}))
	customer.AddSale(saleWithItems(2, Item{Product: filter, Quantity: 1, IsPaid: true}))

	customer.MarkItemUnpaid("Filter")

	assert.False(t, customer.Sales[0].Items[0].IsPaid)
	assert.True(t, customer.Sales[1].Items[0].IsPaid)
}

func TestSaleItemsCostIgnoresPaymentStatus(t *testing.T) {
	sale := saleWithItems(1,
		Item{Product: ServicePartProduct(ServicePart{ID: 1, Name: "Filter", Price: 25}), Quantity: 2, IsPaid: true},
		Item{Product: ForkliftProduct(Forklift{ID: 1, Name: "CX-30", Price: 15000}), Quantity: 1},
	)
	assert.Equal(t, 15050.0, sale.ItemsCost())
}

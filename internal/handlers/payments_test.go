package handlers

import (
	"testing"

	"forkliftcrm/internal/models"
)

func paymentTestCustomer() *models.Customer {
	customer := &models.Customer{Name: "Acme"}
	customer.AddForklift(models.Forklift{ID: 1, Name: "CX-30", Price: 15000})
	customer.AddServicePart(models.ServicePart{ID: 1, Name: "Filter", Price: 25})
	customer.AddSale(models.Sale{
		ID: 1,
		Items: []models.Item{
			{Product: models.ServicePartProduct(models.ServicePart{ID: 1, Name: "Filter", Price: 25}), Quantity: 2},
		},
		TotalCost: 50,
	})
	return customer
}

func TestApplyPaymentUnknownTarget(t *testing.T) {
	customer := paymentTestCustomer()
	if err := applyPayment(customer, "warranty", "Filter", true); err == nil {
		t.Fatal("expected error for unknown payment target")
	}
}

func TestApplyPaymentForklift(t *testing.T) {
	customer := paymentTestCustomer()
	if err := applyPayment(customer, paymentTargetForklift, "CX-30", true); err != nil {
		t.Fatalf("applyPayment returned error: %v", err)
	}
	if !customer.Forklifts[0].IsPaid {
		t.Fatal("expected forklift to be marked paid")
	}
}

func TestApplyPaymentServicePartUnpaid(t *testing.T) {
	customer := paymentTestCustomer()
	customer.ServiceParts[0].IsPaid = true

	if err := applyPayment(customer, paymentTargetServicePart, "Filter", false); err != nil {
		t.Fatalf("applyPayment returned error: %v", err)
	}
	if customer.ServiceParts[0].IsPaid {
		t.Fatal("expected service part to be marked unpaid")
	}
}

func TestApplyPaymentItem(t *testing.T) {
	customer := paymentTestCustomer()
	if err := applyPayment(customer, paymentTargetItem, "Filter", true); err != nil {
		t.Fatalf("applyPayment returned error: %v", err)
	}
	if !customer.Sales[0].Items[0].IsPaid {
		t.Fatal("expected sale item to be marked paid")
	}
}

func TestApplyPaymentSilentMissLeavesStateUntouched(t *testing.T) {
	customer := paymentTestCustomer()
	if err := applyPayment(customer, paymentTargetItem, "no such item", true); err != nil {
		t.Fatalf("expected silent no-op, got error: %v", err)
	}
	if customer.Sales[0].Items[0].IsPaid {
		t.Fatal("expected untouched item to stay unpaid")
	}
}

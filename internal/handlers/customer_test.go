package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"forkliftcrm/internal/models"
)

func TestCustomerResponseRendersEmptyCollectionsAsLists(t *testing.T) {
	customer := models.Customer{ID: 1, Name: "Acme"}

	body, err := json.Marshal(customerResponse(&customer))
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}

	jsonBody := string(body)
	for _, field := range []string{"\"forklifts\":[]", "\"serviceParts\":[]", "\"sales\":[]"} {
		if !strings.Contains(jsonBody, field) {
			t.Fatalf("expected %s in response json, got %s", field, jsonBody)
		}
	}
	if strings.Contains(jsonBody, "null") {
		t.Fatalf("expected no null collections in response json, got %s", jsonBody)
	}
}

func TestCustomerResponseIncludesDerivedTotalOwed(t *testing.T) {
	customer := models.Customer{ID: 1, Name: "Acme"}
	customer.AddSale(models.Sale{ID: 1, TotalCost: 50})

	body, err := json.Marshal(customerResponse(&customer))
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}

	if !strings.Contains(string(body), "\"totalOwed\":50") {
		t.Fatalf("expected totalOwed in response json, got %s", body)
	}
}

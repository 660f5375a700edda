package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"forkliftcrm/internal/models"
	"forkliftcrm/internal/store"
)

type paymentRequest struct {
	Target string `json:"target" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Paid   *bool  `json:"paid" binding:"required"`
}

const (
	paymentTargetForklift    = "forklift"
	paymentTargetServicePart = "service_part"
	paymentTargetItem        = "item"
)

// applyPayment routes a mark request to the matching aggregate
// operation. An unknown target is an error; an unmatched name is not:
// the mark operations no-op silently and the caller still gets the
// (unchanged) customer back.
func applyPayment(customer *models.Customer, target, name string, paid bool) error {
	switch target {
	case paymentTargetForklift:
		if paid {
			customer.MarkForkliftPaid(name)
		} else {
			customer.MarkForkliftUnpaid(name)
		}
	case paymentTargetServicePart:
		if paid {
			customer.MarkServicePartPaid(name)
		} else {
			customer.MarkServicePartUnpaid(name)
		}
	case paymentTargetItem:
		if paid {
			customer.MarkItemPaid(name)
		} else {
			customer.MarkItemUnpaid(name)
		}
	default:
		return fmt.Errorf("target must be %s, %s or %s",
			paymentTargetForklift, paymentTargetServicePart, paymentTargetItem)
	}
	return nil
}

func MarkPayment(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /customers/:id/payments"
		defer handlePanic(c, route)

		var req paymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "target, name and paid required")
			return
		}

		withCustomer(c, st, route, func(customer *models.Customer) error {
			return applyPayment(customer, strings.TrimSpace(req.Target), strings.TrimSpace(req.Name), *req.Paid)
		})
	}
}

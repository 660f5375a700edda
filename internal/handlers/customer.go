package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"forkliftcrm/internal/models"
	"forkliftcrm/internal/store"
)

/* =========================
   REQUEST DTOs
========================= */

type createCustomerRequest struct {
	Name           string `json:"name" binding:"required"`
	ContactDetails string `json:"contactDetails"`
}

/* =========================
   RESPONSE SHAPING
========================= */

// customerResponse exposes the aggregate plus the derived total owed,
// which is computed per response and never stored. Nil collections are
// rendered as empty lists, not null.
func customerResponse(customer *models.Customer) gin.H {
	forklifts := customer.Forklifts
	if forklifts == nil {
		forklifts = []models.Forklift{}
	}
	serviceParts := customer.ServiceParts
	if serviceParts == nil {
		serviceParts = []models.ServicePart{}
	}
	sales := customer.Sales
	if sales == nil {
		sales = []models.Sale{}
	}

	return gin.H{
		"id":             customer.ID,
		"name":           customer.Name,
		"contactDetails": customer.ContactDetails,
		"forklifts":      forklifts,
		"serviceParts":   serviceParts,
		"sales":          sales,
		"totalOwed":      customer.TotalOwed(),
	}
}

/* =========================
   CREATE
========================= */

func CreateCustomer(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /customers"
		defer handlePanic(c, route)

		if err := ensureStoreConnection(c.Request.Context(), st); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "store unavailable")
			return
		}

		var req createCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "name required")
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			respondWithError(c, http.StatusBadRequest, route, "name required")
			return
		}

		customer := models.Customer{
			Name:           name,
			ContactDetails: strings.TrimSpace(req.ContactDetails),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := st.CreateCustomer(ctx, &customer); err != nil {
			log.Println("[CUSTOMER] [ERROR] create failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		log.Printf("[CUSTOMER] [INFO] customer %q created with id %d", customer.Name, customer.ID)
		c.JSON(http.StatusCreated, customerResponse(&customer))
	}
}

/* =========================
   LIST / GET
========================= */

func GetCustomers(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /customers"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		customers, err := st.ListCustomers(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "customers could not be fetched")
			return
		}

		responses := make([]gin.H, 0, len(customers))
		for i := range customers {
			responses = append(responses, customerResponse(&customers[i]))
		}
		c.JSON(http.StatusOK, responses)
	}
}

// GetCustomer looks up by id when the path value is numeric, and
// otherwise falls back to the lossy name lookup: with duplicate names,
// the first customer in fetch order is returned. The id form is the
// reliable key.
func GetCustomer(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /customers/:id"
		defer handlePanic(c, route)

		key := strings.TrimSpace(c.Param("id"))
		if key == "" {
			respondWithError(c, http.StatusBadRequest, route, "id or name required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var customer *models.Customer
		var err error
		if id, convErr := strconv.Atoi(key); convErr == nil {
			customer, err = st.LoadCustomer(ctx, id)
		} else {
			customer, err = st.LoadCustomerByName(ctx, key)
		}
		if err == store.ErrNotFound {
			respondWithError(c, http.StatusNotFound, route, "customer not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		c.JSON(http.StatusOK, customerResponse(customer))
	}
}

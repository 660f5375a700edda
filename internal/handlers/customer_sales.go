package handlers

import (
	"context"
	"errors"
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

type ownedProductRequest struct {
	ID     int     `json:"id"`
	Name   string  `json:"name" binding:"required"`
	Price  float64 `json:"price" binding:"required"`
	IsPaid bool    `json:"isPaid"`
}

type saleItemRequest struct {
	Kind     string  `json:"kind" binding:"required"`
	ID       int     `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required"`
	IsPaid   bool    `json:"isPaid"`
}

type createSaleRequest struct {
	Date      string            `json:"date"`
	Items     []saleItemRequest `json:"items"`
	TotalCost float64           `json:"totalCost"`
}

type associateItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity"`
	IsPaid   bool   `json:"isPaid"`
}

/* =========================
   BUILD SALE
========================= */

func buildSaleFromRequest(req createSaleRequest, now time.Time) (models.Sale, error) {
	date := now
	if raw := strings.TrimSpace(req.Date); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.Sale{}, errors.New("date must be RFC 3339")
		}
		date = parsed
	}

	items := make([]models.Item, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return models.Sale{}, errors.New("quantity must be greater than zero")
		}

		product, err := buildProductFromRequest(item)
		if err != nil {
			return models.Sale{}, err
		}

		items = append(items, models.Item{
			Product:  product,
			Quantity: item.Quantity,
			IsPaid:   item.IsPaid,
		})
	}

	// TotalCost is taken as entered; it is allowed to diverge from the
	// items list, which callers inspect via ItemsCost.
	return models.Sale{
		Date:      models.NewISOTime(date),
		Items:     items,
		TotalCost: req.TotalCost,
	}, nil
}

func buildProductFromRequest(item saleItemRequest) (models.Product, error) {
	name := strings.TrimSpace(item.Name)
	if name == "" {
		return models.Product{}, errors.New("product name required")
	}

	switch models.ProductKind(item.Kind) {
	case models.KindForklift:
		return models.ForkliftProduct(models.Forklift{ID: item.ID, Name: name, Price: item.Price}), nil
	case models.KindServicePart:
		return models.ServicePartProduct(models.ServicePart{ID: item.ID, Name: name, Price: item.Price}), nil
	default:
		return models.Product{}, errors.New("kind must be forklift or service_part")
	}
}

/* =========================
   LOAD + SAVE PLUMBING
========================= */

// withCustomer loads the addressed customer, applies mutate, and saves
// the whole document back. One read-then-write round trip per request;
// concurrent writers on the same customer clobber each other, which is
// accepted for single-operator use.
func withCustomer(c *gin.Context, st *store.Store, route string, mutate func(*models.Customer) error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusBadRequest, route, "invalid id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	customer, err := st.LoadCustomer(ctx, id)
	if err == store.ErrNotFound {
		respondWithError(c, http.StatusNotFound, route, "customer not found")
		return
	}
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, route, "store error")
		return
	}

	if err := mutate(customer); err != nil {
		var notFound saleNotFoundError
		if errors.As(err, &notFound) {
			respondWithError(c, http.StatusNotFound, route, err.Error())
			return
		}
		respondWithError(c, http.StatusBadRequest, route, err.Error())
		return
	}

	if err := st.SaveCustomer(ctx, customer); err != nil {
		log.Printf("[%s] save failed: %v", route, err)
		respondWithError(c, http.StatusInternalServerError, route, "store error")
		return
	}

	c.JSON(http.StatusOK, customerResponse(customer))
}

type saleNotFoundError struct {
	SaleID int
}

func (e saleNotFoundError) Error() string {
	return "sale not found"
}

/* =========================
   APPEND TO EMBEDDED COLLECTIONS
========================= */

func AddCustomerForklift(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /customers/:id/forklifts"
		defer handlePanic(c, route)

		var req ownedProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "name and price required")
			return
		}

		withCustomer(c, st, route, func(customer *models.Customer) error {
			customer.AddForklift(models.Forklift{
				ID:     req.ID,
				Name:   strings.TrimSpace(req.Name),
				Price:  req.Price,
				IsPaid: req.IsPaid,
			})
			return nil
		})
	}
}

func AddCustomerServicePart(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /customers/:id/service-parts"
		defer handlePanic(c, route)

		var req ownedProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "name and price required")
			return
		}

		withCustomer(c, st, route, func(customer *models.Customer) error {
			customer.AddServicePart(models.ServicePart{
				ID:     req.ID,
				Name:   strings.TrimSpace(req.Name),
				Price:  req.Price,
				IsPaid: req.IsPaid,
			})
			return nil
		})
	}
}

func AddCustomerSale(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /customers/:id/sales"
		defer handlePanic(c, route)

		var req createSaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		sale, err := buildSaleFromRequest(req, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		withCustomer(c, st, route, func(customer *models.Customer) error {
			sale.ID = len(customer.Sales) + 1
			customer.AddSale(sale)
			return nil
		})
	}
}

/* =========================
   ASSOCIATE ITEM WITH A SALE
========================= */

// AddSaleItem resolves a catalog product by name and appends it as an
// item on an existing sale of the customer.
func AddSaleItem(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /customers/:id/sales/:saleId/items"
		defer handlePanic(c, route)

		saleID, err := strconv.Atoi(c.Param("saleId"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid sale id")
			return
		}

		var req associateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "name required")
			return
		}

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			respondWithError(c, http.StatusBadRequest, route, "quantity must be greater than zero")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		product, err := st.FindProductByName(ctx, strings.TrimSpace(req.Name))
		if err == store.ErrNotFound {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		withCustomer(c, st, route, func(customer *models.Customer) error {
			for i := range customer.Sales {
				if customer.Sales[i].ID == saleID {
					customer.Sales[i].Items = append(customer.Sales[i].Items, models.Item{
						Product:  product,
						Quantity: quantity,
						IsPaid:   req.IsPaid,
					})
					return nil
				}
			}
			return saleNotFoundError{SaleID: saleID}
		})
	}
}

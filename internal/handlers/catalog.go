package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"forkliftcrm/internal/models"
	"forkliftcrm/internal/store"
)

/* =========================
   REQUEST DTOs
========================= */

type catalogProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

/* =========================
   FORKLIFTS
========================= */

func CreateForklift(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /forklifts"
		defer handlePanic(c, route)

		var req catalogProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "name and price required")
			return
		}

		if req.Price <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "invalid price")
			return
		}

		forklift := models.Forklift{
			Name:  strings.TrimSpace(req.Name),
			Price: req.Price,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := st.CreateForklift(ctx, &forklift); err != nil {
			log.Println("[CATALOG] [ERROR] forklift create failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		c.JSON(http.StatusCreated, forklift)
	}
}

func GetForklifts(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /forklifts"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		forklifts, err := st.Forklifts(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "forklifts could not be fetched")
			return
		}
		c.JSON(http.StatusOK, forklifts)
	}
}

/* =========================
   SERVICE PARTS
========================= */

func CreateServicePart(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /service-parts"
		defer handlePanic(c, route)

		var req catalogProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "name and price required")
			return
		}

		if req.Price <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "invalid price")
			return
		}

		part := models.ServicePart{
			Name:  strings.TrimSpace(req.Name),
			Price: req.Price,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := st.CreateServicePart(ctx, &part); err != nil {
			log.Println("[CATALOG] [ERROR] service part create failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		c.JSON(http.StatusCreated, part)
	}
}

func GetServiceParts(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /service-parts"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		parts, err := st.ServiceParts(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "service parts could not be fetched")
			return
		}
		c.JSON(http.StatusOK, parts)
	}
}

/* =========================
   SALES
========================= */

func CreateSale(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /sales"
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

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := st.CreateSale(ctx, &sale); err != nil {
			log.Println("[CATALOG] [ERROR] sale create failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		c.JSON(http.StatusCreated, sale)
	}
}

func GetSales(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /sales"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		sales, err := st.SalesRecords(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "sales could not be fetched")
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

/* =========================
   HEALTH
========================= */

func Healthz(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ensureStoreConnection(c.Request.Context(), st); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"forkliftcrm/internal/config"
	"forkliftcrm/internal/database"
	"forkliftcrm/internal/handlers"
	"forkliftcrm/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureCustomerIndexes(db); err != nil {
		log.Printf("⚠️ customer index warning: %v", err)
	}
	if err := database.EnsureCatalogIndexes(db); err != nil {
		log.Printf("⚠️ catalog index warning: %v", err)
	}

	st := store.New(db)

	r := gin.Default()

	r.GET("/healthz", handlers.Healthz(st))

	r.POST("/customers", handlers.CreateCustomer(st))
	r.GET("/customers", handlers.GetCustomers(st))
	r.GET("/customers/:id", handlers.GetCustomer(st))

	r.POST("/customers/:id/forklifts", handlers.AddCustomerForklift(st))
	r.POST("/customers/:id/service-parts", handlers.AddCustomerServicePart(st))
	r.POST("/customers/:id/sales", handlers.AddCustomerSale(st))
	r.POST("/customers/:id/sales/:saleId/items", handlers.AddSaleItem(st))
	r.POST("/customers/:id/payments", handlers.MarkPayment(st))

	r.POST("/forklifts", handlers.CreateForklift(st))
	r.GET("/forklifts", handlers.GetForklifts(st))
	r.POST("/service-parts", handlers.CreateServicePart(st))
	r.GET("/service-parts", handlers.GetServiceParts(st))
	r.POST("/sales", handlers.CreateSale(st))
	r.GET("/sales", handlers.GetSales(st))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureCustomerIndexes creates lookup indexes on the customers
// collection. The name index is deliberately NOT unique: duplicate
// customer names are legal, and name lookup resolves them by fetch
// order.
func EnsureCustomerIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("customers").Indexes()

	idIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetName("id_lookup"),
	}
	nameIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("name_lookup"),
	}

	log.Println("EnsureCustomerIndexes: creating id_lookup and name_lookup indexes")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{idIndex, nameIndex})
	if err != nil {
		log.Println("EnsureCustomerIndexes: index error:", err)
		return err
	}
	log.Println("EnsureCustomerIndexes: indexes created")
	return nil
}

// EnsureCatalogIndexes creates the name lookup index on both product
// collections. Also not unique, for the same reason.
func EnsureCatalogIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	nameIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("name_lookup"),
	}

	for _, collection := range []string{"forklifts", "service_parts"} {
		log.Printf("EnsureCatalogIndexes: creating name_lookup index on %s", collection)
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, nameIndex); err != nil {
			log.Printf("EnsureCatalogIndexes: %s index error: %v", collection, err)
			return err
		}
	}
	log.Println("EnsureCatalogIndexes: indexes created")
	return nil
}

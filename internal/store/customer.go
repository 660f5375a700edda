package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"forkliftcrm/internal/models"
)

// LoadCustomer fetches one customer document by id and reconstructs
// the full aggregate graph. The store-assigned key is dropped in the
// decode (the domain struct has no field for it), as is any stray
// stored total_owed value from older writers.
func (s *Store) LoadCustomer(ctx context.Context, id int) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Collection(Customers).FindOne(ctx, bson.M{"id": id}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// LoadCustomerByName is the lossy convenience lookup: it resolves the
// name over the fetched customer list, so with duplicate names the
// first record in fetch order wins. Callers that cannot tolerate the
// ambiguity use LoadCustomer with the id.
func (s *Store) LoadCustomerByName(ctx context.Context, name string) (*models.Customer, error) {
	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return firstCustomerNamed(customers, name)
}

// firstCustomerNamed scans the fetched list in order and returns the
// first customer matching name, or ErrNotFound.
func firstCustomerNamed(customers []models.Customer, name string) (*models.Customer, error) {
	for i := range customers {
		if customers[i].Name == name {
			return &customers[i], nil
		}
	}
	return nil, ErrNotFound
}

// ListCustomers returns every customer in fetch order.
func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	cursor, err := s.db.Collection(Customers).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// SaveCustomer serializes the whole aggregate graph (sales, items,
// products included) and upserts it as one document under the
// customer's id. Full-document overwrite; see Store.Put.
func (s *Store) SaveCustomer(ctx context.Context, customer *models.Customer) error {
	return s.Put(ctx, Customers, customer.ID, customer)
}

// CreateCustomer assigns the next id and saves the new customer.
func (s *Store) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	id, err := s.NextID(ctx, Customers)
	if err != nil {
		return err
	}
	customer.ID = id
	return s.SaveCustomer(ctx, customer)
}

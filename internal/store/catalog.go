package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"forkliftcrm/internal/models"
)

// The catalog collections hold the top-level product and sale records
// the operator picks from when associating items with a customer.
// Copies embedded inside customer documents are independent of these;
// nothing keeps the two in sync.

func (s *Store) CreateForklift(ctx context.Context, forklift *models.Forklift) error {
	id, err := s.NextID(ctx, Forklifts)
	if err != nil {
		return err
	}
	forklift.ID = id
	return s.Put(ctx, Forklifts, forklift.ID, forklift)
}

func (s *Store) Forklifts(ctx context.Context) ([]models.Forklift, error) {
	cursor, err := s.db.Collection(Forklifts).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forklifts []models.Forklift
	if err := cursor.All(ctx, &forklifts); err != nil {
		return nil, err
	}
	return forklifts, nil
}

func (s *Store) CreateServicePart(ctx context.Context, part *models.ServicePart) error {
	id, err := s.NextID(ctx, ServiceParts)
	if err != nil {
		return err
	}
	part.ID = id
	return s.Put(ctx, ServiceParts, part.ID, part)
}

func (s *Store) ServiceParts(ctx context.Context) ([]models.ServicePart, error) {
	cursor, err := s.db.Collection(ServiceParts).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var parts []models.ServicePart
	if err := cursor.All(ctx, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

func (s *Store) CreateSale(ctx context.Context, sale *models.Sale) error {
	id, err := s.NextID(ctx, Sales)
	if err != nil {
		return err
	}
	sale.ID = id
	return s.Put(ctx, Sales, sale.ID, sale)
}

func (s *Store) SalesRecords(ctx context.Context) ([]models.Sale, error) {
	cursor, err := s.db.Collection(Sales).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sales []models.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// FindProductByName scans service parts first, then forklifts, and
// returns the first catalog entry matching name. Names are not unique;
// first match in fetch order wins, mirroring how the selection list
// has always been built.
func (s *Store) FindProductByName(ctx context.Context, name string) (models.Product, error) {
	parts, err := s.ServiceParts(ctx)
	if err != nil {
		return models.Product{}, err
	}
	for _, part := range parts {
		if part.Name == name {
			return models.ServicePartProduct(part), nil
		}
	}

	forklifts, err := s.Forklifts(ctx)
	if err != nil {
		return models.Product{}, err
	}
	for _, forklift := range forklifts {
		if forklift.Name == name {
			return models.ForkliftProduct(forklift), nil
		}
	}

	return models.Product{}, ErrNotFound
}

package models

// ServicePart is a sellable spare part, structurally identical to
// Forklift.
type ServicePart struct {
	ID     int     `bson:"id" json:"id"`
	Name   string  `bson:"name" json:"name"`
	Price  float64 `bson:"price" json:"price"`
	IsPaid bool    `bson:"is_paid" json:"isPaid"`
}

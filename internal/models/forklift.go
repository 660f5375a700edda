package models

// Forklift is a sellable machine. The document store assigns its own
// opaque key (`_id`) on first insert; it is not part of the domain
// shape and is stripped on reconstruction.
type Forklift struct {
	ID     int     `bson:"id" json:"id"`
	Name   string  `bson:"name" json:"name"`
	Price  float64 `bson:"price" json:"price"`
	IsPaid bool    `bson:"is_paid" json:"isPaid"`
}

package models

// Item is a line entry inside a sale: one product, a quantity and a
// payment flag. Items have no identity of their own; they are looked
// up by product name, so two items sharing a product name are
// indistinguishable to the mark operations.
type Item struct {
	Product  Product `bson:"product" json:"product"`
	Quantity int     `bson:"quantity" json:"quantity"`
	IsPaid   bool    `bson:"is_paid" json:"isPaid"`
}

package models

// Sale is a dated transaction grouping items. TotalCost is stored as
// entered and is allowed to drift from the items list; ItemsCost gives
// the recomputed figure for callers that want to compare.
type Sale struct {
	ID        int     `bson:"id" json:"id"`
	Date      ISOTime `bson:"date" json:"date"`
	Items     []Item  `bson:"items" json:"items"`
	TotalCost float64 `bson:"total_cost" json:"totalCost"`
}

// ItemsCost sums price times quantity over all items, regardless of
// payment status.
func (s Sale) ItemsCost() float64 {
	total := 0.0
	for _, item := range s.Items {
		total += item.Product.Price() * float64(item.Quantity)
	}
	return total
}

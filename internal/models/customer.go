package models

// Customer is the aggregate root. The embedded collections are
// denormalized copies owned by the customer document, not references
// into the top-level catalog collections.
type Customer struct {
	ID             int           `bson:"id" json:"id"`
	Name           string        `bson:"name" json:"name"`
	ContactDetails string        `bson:"contact_details" json:"contactDetails"`
	Forklifts      []Forklift    `bson:"forklifts" json:"forklifts"`
	ServiceParts   []ServicePart `bson:"service_parts" json:"serviceParts"`
	Sales          []Sale        `bson:"sales" json:"sales"`
}

func (c *Customer) AddForklift(f Forklift) {
	c.Forklifts = append(c.Forklifts, f)
}

func (c *Customer) AddServicePart(p ServicePart) {
	c.ServiceParts = append(c.ServiceParts, p)
}

func (c *Customer) AddSale(s Sale) {
	c.Sales = append(c.Sales, s)
}

// TotalOwed sums the stored total cost of every sale. It is derived on
// each call and never persisted; payment flags do not reduce it.
func (c *Customer) TotalOwed() float64 {
	total := 0.0
	for _, sale := range c.Sales {
		total += sale.TotalCost
	}
	return total
}

// MarkForkliftPaid flips the first forklift matching name to paid.
// An unmatched name is a silent no-op; callers that need confirmation
// compare state before and after.
func (c *Customer) MarkForkliftPaid(name string) {
	c.setForkliftPaid(name, true)
}

func (c *Customer) MarkForkliftUnpaid(name string) {
	c.setForkliftPaid(name, false)
}

func (c *Customer) setForkliftPaid(name string, paid bool) {
	for i := range c.Forklifts {
		if c.Forklifts[i].Name == name {
			c.Forklifts[i].IsPaid = paid
			return
		}
	}
}

// MarkServicePartPaid flips the first service part matching name to
// paid, with the same silent-miss policy as MarkForkliftPaid.
func (c *Customer) MarkServicePartPaid(name string) {
	c.setServicePartPaid(name, true)
}

func (c *Customer) MarkServicePartUnpaid(name string) {
	c.setServicePartPaid(name, false)
}

func (c *Customer) setServicePartPaid(name string, paid bool) {
	for i := range c.ServiceParts {
		if c.ServiceParts[i].Name == name {
			c.ServiceParts[i].IsPaid = paid
			return
		}
	}
}

// MarkItemPaid flips the first item whose product name matches,
// scanning sales in order and items within each sale in order. Only
// that single item changes even when later sales contain an item with
// the same product name. Unmatched names are a silent no-op.
func (c *Customer) MarkItemPaid(name string) {
	c.setItemPaid(name, true)
}

func (c *Customer) MarkItemUnpaid(name string) {
	c.setItemPaid(name, false)
}

func (c *Customer) setItemPaid(name string, paid bool) {
	for i := range c.Sales {
		for j := range c.Sales[i].Items {
			if c.Sales[i].Items[j].Product.Name() == name {
				c.Sales[i].Items[j].IsPaid = paid
				return
			}
		}
	}
}

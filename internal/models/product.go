package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ProductKind discriminates the closed set of product variants.
type ProductKind string

const (
	KindForklift    ProductKind = "forklift"
	KindServicePart ProductKind = "service_part"
)

// Product is a tagged union over Forklift and ServicePart. Exactly one
// of the two pointers is set, matching Kind.
type Product struct {
	Kind        ProductKind
	Forklift    *Forklift
	ServicePart *ServicePart
}

func ForkliftProduct(f Forklift) Product {
	return Product{Kind: KindForklift, Forklift: &f}
}

func ServicePartProduct(p ServicePart) Product {
	return Product{Kind: KindServicePart, ServicePart: &p}
}

// Name returns the name of whichever variant is set.
func (p Product) Name() string {
	switch p.Kind {
	case KindForklift:
		return p.Forklift.Name
	case KindServicePart:
		return p.ServicePart.Name
	default:
		return ""
	}
}

func (p Product) Price() float64 {
	switch p.Kind {
	case KindForklift:
		return p.Forklift.Price
	case KindServicePart:
		return p.ServicePart.Price
	default:
		return 0
	}
}

// productDocument is the flat persisted shape shared by both variants.
// IsPaid is a pointer so legacy documents without a kind tag can still
// be classified: before the tag existed only service parts carried an
// is_paid field.
type productDocument struct {
	Kind   ProductKind `bson:"kind,omitempty" json:"kind,omitempty"`
	ID     int         `bson:"id" json:"id"`
	Name   string      `bson:"name" json:"name"`
	Price  float64     `bson:"price" json:"price"`
	IsPaid *bool       `bson:"is_paid,omitempty" json:"isPaid,omitempty"`
}

func (p Product) document() (productDocument, error) {
	switch p.Kind {
	case KindForklift:
		if p.Forklift == nil {
			return productDocument{}, fmt.Errorf("product kind %q has no forklift value", p.Kind)
		}
		return productDocument{
			Kind:   KindForklift,
			ID:     p.Forklift.ID,
			Name:   p.Forklift.Name,
			Price:  p.Forklift.Price,
			IsPaid: &p.Forklift.IsPaid,
		}, nil
	case KindServicePart:
		if p.ServicePart == nil {
			return productDocument{}, fmt.Errorf("product kind %q has no service part value", p.Kind)
		}
		return productDocument{
			Kind:   KindServicePart,
			ID:     p.ServicePart.ID,
			Name:   p.ServicePart.Name,
			Price:  p.ServicePart.Price,
			IsPaid: &p.ServicePart.IsPaid,
		}, nil
	default:
		return productDocument{}, fmt.Errorf("unknown product kind %q", p.Kind)
	}
}

func productFromDocument(doc productDocument) (Product, error) {
	kind := doc.Kind
	if kind == "" {
		// Legacy documents carry no kind tag; only service parts were
		// persisted with an is_paid field back then.
		if doc.IsPaid != nil {
			kind = KindServicePart
		} else {
			kind = KindForklift
		}
	}

	paid := false
	if doc.IsPaid != nil {
		paid = *doc.IsPaid
	}

	switch kind {
	case KindForklift:
		return ForkliftProduct(Forklift{ID: doc.ID, Name: doc.Name, Price: doc.Price, IsPaid: paid}), nil
	case KindServicePart:
		return ServicePartProduct(ServicePart{ID: doc.ID, Name: doc.Name, Price: doc.Price, IsPaid: paid}), nil
	default:
		return Product{}, fmt.Errorf("cannot decode product kind %q", kind)
	}
}

// MarshalBSONValue stores the union as a single flat document with a
// kind tag, keeping new writes consistent even though legacy documents
// were written without one.
func (p Product) MarshalBSONValue() (bsontype.Type, []byte, error) {
	doc, err := p.document()
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(doc)
}

// UnmarshalBSONValue accepts tagged documents and legacy untagged
// ones, allowing old customer records to be decoded without failing
// the entire read.
func (p *Product) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t != bsontype.EmbeddedDocument {
		return fmt.Errorf("cannot decode %s into Product", t)
	}

	var doc productDocument
	if err := bson.UnmarshalValue(t, data, &doc); err != nil {
		return err
	}

	decoded, err := productFromDocument(doc)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var doc productDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	decoded, err := productFromDocument(doc)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ISOTime is a timestamp persisted as ISO-8601 text rather than a
// native BSON datetime, matching the document shape the system has
// always written.
type ISOTime struct {
	time.Time
}

func NewISOTime(t time.Time) ISOTime {
	return ISOTime{Time: t}
}

// MarshalBSONValue always stores the timestamp as an RFC 3339 string.
func (t ISOTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Format(time.RFC3339Nano))
}

// UnmarshalBSONValue accepts both string and datetime BSON types, so
// documents written by tools that used native datetimes still decode.
func (t *ISOTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	switch bt {
	case bsontype.Null:
		*t = ISOTime{}
		return nil
	case bsontype.String:
		var value string
		if err := bson.UnmarshalValue(bt, data, &value); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, value)
		}
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", value, err)
		}
		t.Time = parsed
		return nil
	case bsontype.DateTime:
		var value time.Time
		if err := bson.UnmarshalValue(bt, data, &value); err != nil {
			return err
		}
		t.Time = value
		return nil
	default:
		return fmt.Errorf("cannot decode %s into ISOTime", bt)
	}
}

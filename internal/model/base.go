package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"truth_buddy_backend/internal/util"

	"gorm.io/gorm"
)

// UUIDBase is embedded by every entity. IDs are opaque strings assigned on
// creation; rows only ever carry a creation timestamp.
type UUIDBase struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *UUIDBase) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = util.GenerateID()
	}
	return
}

// RecordID and StampNew let the local fallback store manage entities without
// knowing their concrete type. The remote path never calls StampNew; there
// the database and the BeforeCreate hook assign ids.
func (b *UUIDBase) RecordID() string {
	return b.ID
}

func (b *UUIDBase) StampNew(id string, createdAt time.Time) {
	if b.ID == "" {
		b.ID = id
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = createdAt
	}
}

// StringList is stored as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// Contains reports whether s is present in the list.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

var errUnsupportedJSONValue = errors.New("unsupported value type for JSON column")

package model

import (
	"database/sql/driver"
	"encoding/json"
)

// VerificationResult is the structured outcome of a content check, stored as
// a JSON column.
type VerificationResult struct {
	IsReliable bool   `json:"is_reliable"`
	Confidence int    `json:"confidence"`
	Sources    int    `json:"sources"`
	Analysis   string `json:"analysis"`
}

func (r VerificationResult) Value() (driver.Value, error) {
	b, err := json.Marshal(r)
	return string(b), err
}

func (r *VerificationResult) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return errUnsupportedJSONValue
	}
}

// swagger:model VerificationRequest
type VerificationRequest struct {
	UUIDBase
	UserID             string              `gorm:"type:varchar(36);index" json:"user_id"`
	ContentText        string              `gorm:"type:text" json:"content_text,omitempty"`
	FileURL            string              `gorm:"type:text" json:"file_url,omitempty"`
	FileName           string              `gorm:"size:255" json:"file_name,omitempty"`
	VerificationResult *VerificationResult `gorm:"type:json" json:"verification_result,omitempty"`
}

func (VerificationRequest) TableName() string {
	return "verification_requests"
}

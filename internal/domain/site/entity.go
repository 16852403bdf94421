package site

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Site is a physical work location shifts are planned against.
type Site struct {
	ID           string
	TenantID     string
	Code         string
	Name         string
	Address      *string
	ContactInfo  *string
	OpeningHours OpeningHours
	ManagerID    *string
	Capacity     int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OpeningHours maps a day identifier (monday..sunday) to its opening
// window. Stored as JSONB.
type OpeningHours map[string]DayHours

type DayHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

var DayIdentifiers = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Value implements driver.Valuer for database storage
func (oh OpeningHours) Value() (driver.Value, error) {
	if len(oh) == 0 {
		return nil, nil
	}
	return json.Marshal(oh)
}

// Scan implements sql.Scanner for database retrieval
func (oh *OpeningHours) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan OpeningHours: invalid type")
	}

	return json.Unmarshal(bytes, oh)
}

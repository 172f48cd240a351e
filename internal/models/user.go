package models

import "time"

// User represents an application user. UserID is the externally assigned
// business identifier; costs reference it directly, so all lookups go
// through it rather than the surrogate primary key.
type User struct {
	ID            uint       `gorm:"primaryKey" json:"-"`
	UserID        int64      `gorm:"uniqueIndex;not null" json:"id"`
	FirstName     string     `gorm:"not null" json:"first_name"`
	LastName      string     `gorm:"not null" json:"last_name"`
	Birthday      *time.Time `json:"birthday,omitempty"`
	MaritalStatus string     `json:"marital_status,omitempty"`

	// TotalCosts is a denormalized running total of the user's cost sums.
	// The cost entries remain the source of truth; this field is advanced
	// by the ledger service in the same transaction that persists a cost.
	TotalCosts float64 `gorm:"not null;default:0" json:"total_costs"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// Cost is a single immutable ledger entry. Entries are never updated or
// deleted once created. UserID references the owning user's business id;
// existence is checked at write time, not enforced by the database.
type Cost struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      int64     `gorm:"index:idx_costs_user_created;not null" json:"userid"`
	Description string    `gorm:"not null" json:"description"`
	Category    Category  `gorm:"not null" json:"category"`
	Sum         float64   `gorm:"not null" json:"sum"`
	CreatedAt   time.Time `gorm:"index:idx_costs_user_created" json:"createdAt"`
}

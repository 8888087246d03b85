package models

import "time"

// Creator statuses
const (
	CreatorStatusActive    = "active"
	CreatorStatusSuspended = "suspended"
)

// Creator is a content creator who earns subscription revenue and
// withdraws it through the payout engine.
type Creator struct {
	ID          uint   `gorm:"primarykey"`
	Email       string `gorm:"uniqueIndex;not null"`
	DisplayName string `gorm:"not null"`
	// AvailableBalance is the withdrawable balance in whole currency
	// units. It is maintained by the external ledger/reconciliation
	// process; this service only reads it.
	AvailableBalance int64  `gorm:"not null;default:0"`
	Status           string `gorm:"not null;default:'active'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

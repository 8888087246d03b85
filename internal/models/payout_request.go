package models

import "time"

// Payout request statuses. A request starts pending; the external
// reconciliation process, never this service's quote engine, moves it
// to completed or failed.
const (
	PayoutStatusPending   = "pending"
	PayoutStatusCompleted = "completed"
	PayoutStatusFailed    = "failed"
)

// Payout tracks as persisted.
const (
	PayoutTrackStandard  = "standard"
	PayoutTrackExpedited = "expedited"
)

// PayoutRequest is the immutable record of a confirmed payout quote: a
// financial promise to the creator. Every fee component and the
// settlement date are flattened in, exactly as quoted, so the record
// stays auditable even after the fee schedule changes. Only Status and
// UpdatedAt ever change after creation.
type PayoutRequest struct {
	ID        uint   `gorm:"primarykey"`
	PublicID  string `gorm:"uniqueIndex;not null"`
	CreatorID uint   `gorm:"index;not null"`

	Track           string `gorm:"not null"`
	RequestedAmount int64  `gorm:"not null"`
	PlatformFee     int64  `gorm:"not null"`
	PlatformFeeTax  int64  `gorm:"not null"`
	ExpediteFee     int64  `gorm:"not null;default:0"`
	ExpediteFeeTax  int64  `gorm:"not null;default:0"`
	TransferFee     int64  `gorm:"not null"`
	TotalFees       int64  `gorm:"not null"`
	NetAmount       int64  `gorm:"not null"`

	RequestDate    time.Time `gorm:"not null"`
	SettlementDate time.Time `gorm:"not null"`

	// Destination fields supplied by the creator at confirmation.
	BankName         string
	BankAccountName  string
	BankAccountLast4 string

	Status    string `gorm:"not null;default:'pending'"`
	Metadata  JSON   `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

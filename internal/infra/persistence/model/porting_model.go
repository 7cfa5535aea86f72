package model

import (
	"time"

	"gorm.io/datatypes"
)

// PortingModel is the GORM-specific struct for the 'portings' table.
// Done mirrors the last step so the partial unique index allows one open transfer per number.
type PortingModel struct {
	ID            string         `gorm:"type:text;primary_key"`
	SessionID     string         `gorm:"type:text;not null;index"`
	OrderID       string         `gorm:"type:text;index"`
	PhoneNumber   string         `gorm:"type:text;not null;uniqueIndex:idx_portings_open_phone,where:done = false"`
	Carrier       string         `gorm:"type:text;not null"`
	AccountNumber string         `gorm:"type:text;not null"`
	PINHash       string         `gorm:"column:pin_hash;type:text;not null"`
	Steps         datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Done          bool           `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PortingModel) TableName() string {
	return "portings"
}

// PortingStepModel is the JSON shape of one step inside PortingModel.Steps.
type PortingStepModel struct {
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

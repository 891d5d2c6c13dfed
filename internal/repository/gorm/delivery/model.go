package deliverygorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryModel maps to the "deliveries" table.
type DeliveryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	From        string     `gorm:"column:from_number;size:16;not null"`
	To          string     `gorm:"column:to_number;size:16;not null;index"`
	Body        string     `gorm:"type:text;not null"`
	Status      string     `gorm:"size:20;not null;index"`
	MessageSID  string     `gorm:"column:message_sid;size:64;index"`
	StatusCode  int        `gorm:"not null;default:0"`
	RawResponse string     `gorm:"type:text"`
	Error       string     `gorm:"type:text"`
	SentAt      *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (DeliveryModel) TableName() string {
	return "deliveries"
}

func (m *DeliveryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

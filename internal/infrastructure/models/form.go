package models

import (
	"time"

	"github.com/google/uuid"
)

type Form struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null;default:''"`
	OwnerAddress string    `gorm:"type:varchar(64);not null;index"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Fields []Field `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
}

// Field rows use an autoincrement key on purpose: reads order by id ASC, so
// ascending creation order is the read order.
type Field struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	FormID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(16);not null"`
	Label       string    `gorm:"type:varchar(255);not null"`
	Placeholder string    `gorm:"type:varchar(255);not null;default:''"`
	Required    bool      `gorm:"not null;default:false"`
}

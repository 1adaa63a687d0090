package announcement

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Announcement struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title     string         `gorm:"size:255;not null"`
	Date      datatypes.Date `gorm:"not null"`
	Content   string         `gorm:"type:text;not null"`
	CreatedBy *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Announcement) TableName() string {
	return "announcements"
}

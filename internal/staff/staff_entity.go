package staff

import (
	"strings"
	"time"

	"go-hrms/internal/shared/identity"

	"github.com/google/uuid"
)

type Staff struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	StaffNumber    string        `gorm:"size:20;not null"`
	FirstName      string        `gorm:"size:100;not null"`
	LastName       string        `gorm:"size:100;not null"`
	Email          string        `gorm:"size:255;not null"`
	Password       string        `gorm:"size:255;not null"`
	IdentityNumber string        `gorm:"type:char(11);not null"`
	Phone          string        `gorm:"size:11;not null"`
	Address        string        `gorm:"type:text;not null"`
	BirthDate      *time.Time    `gorm:"type:date"`
	Gender         string        `gorm:"size:10;not null"`
	Position       string        `gorm:"size:100;not null"`
	Role           identity.Role `gorm:"type:varchar(20);not null"`
	UnitID         *uuid.UUID    `gorm:"type:uuid"`
	CreatedAt      time.Time     `gorm:"autoCreateTime"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime"`

	Unit *UnitRef `gorm:"foreignKey:UnitID"`
}

func (Staff) TableName() string {
	return "users"
}

func (s Staff) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// UnitRef is the slice of units needed to label a staff record.
type UnitRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (UnitRef) TableName() string {
	return "units"
}

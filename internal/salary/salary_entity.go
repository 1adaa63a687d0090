package salary

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Salary struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null"`
	PayDate         time.Time       `gorm:"type:date;not null"`
	NetSalary       decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	GrossSalary     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	PayrollFilePath string          `gorm:"size:255;not null"`
	Notes           string          `gorm:"type:text;not null"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`

	User *UserRef `gorm:"foreignKey:UserID"`
}

func (Salary) TableName() string {
	return "salaries"
}

// UserRef is the part of a user shown next to a salary record.
type UserRef struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffNumber string
	FirstName   string
	LastName    string
}

func (UserRef) TableName() string {
	return "users"
}

func (u UserRef) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

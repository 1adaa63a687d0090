package leave

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Leave struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	LeaveType  Type       `gorm:"type:varchar(20);not null"`
	StartDate  time.Time  `gorm:"type:date;not null"`
	EndDate    time.Time  `gorm:"type:date;not null"`
	DaysCount  int        `gorm:"not null"`
	Reason     string     `gorm:"type:text;not null"`
	Status     Status     `gorm:"type:varchar(20);not null;default:PENDING"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	Owner    *Person `gorm:"foreignKey:UserID"`
	Reviewer *Person `gorm:"foreignKey:ReviewedBy"`
}

func (Leave) TableName() string {
	return "leaves"
}

func (l Leave) Period() Period {
	return Period{Start: l.StartDate, End: l.EndDate}
}

func (l Leave) Booking() Booking {
	return Booking{ID: l.ID, UserID: l.UserID, Period: l.Period()}
}

// Person is the read-only view of a users row needed by leave listings.
type Person struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
}

func (Person) TableName() string {
	return "users"
}

func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

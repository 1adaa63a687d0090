package leave

import (
	"time"

	"github.com/google/uuid"
)

// Period is an inclusive range of calendar days.
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) Equal(o Period) bool {
	return p.Start.Equal(o.Start) && p.End.Equal(o.End)
}

// Overlaps reports whether two inclusive periods share at least one day.
// A single-day period (Start == End) overlaps itself and any period containing that day.
func Overlaps(a, b Period) bool {
	return !a.Start.After(b.End) && !a.End.Before(b.Start)
}

// Booking is the part of an existing leave request the overlap check looks at.
type Booking struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Period Period
}

// CheckOverlap reports whether p collides with any of owner's bookings,
// ignoring excludeID (the request being edited). Bookings of other owners
// never conflict.
func CheckOverlap(existing []Booking, owner uuid.UUID, p Period, excludeID *uuid.UUID) bool {
	for _, b := range existing {
		if b.UserID != owner {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if Overlaps(p, b.Period) {
			return true
		}
	}
	return false
}

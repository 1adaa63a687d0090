package leave

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestOverlaps_MatchesIntervalRule(t *testing.T) {
	within := func(d, s, e int) bool { return d >= s && d <= e }

	for s := 0; s < 7; s++ {
		for e := s; e < 7; e++ {
			for s2 := 0; s2 < 7; s2++ {
				for e2 := s2; e2 < 7; e2++ {
					existing := Period{Start: day(s), End: day(e)}
					candidate := Period{Start: day(s2), End: day(e2)}

					want := s2 <= e && e2 >= s
					threeClause := within(s2, s, e) || within(e2, s, e) || (s2 <= s && e2 >= e)

					assert.Equal(t, want, Overlaps(candidate, existing), "[%d,%d] vs [%d,%d]", s2, e2, s, e)
					assert.Equal(t, threeClause, Overlaps(candidate, existing), "[%d,%d] vs [%d,%d]", s2, e2, s, e)
					assert.Equal(t, Overlaps(candidate, existing), Overlaps(existing, candidate))
				}
			}
		}
	}
}

func TestOverlaps_Boundaries(t *testing.T) {
	existing := Period{Start: day(10), End: day(12)}

	assert.True(t, Overlaps(Period{Start: day(12), End: day(15)}, existing), "shared last day")
	assert.True(t, Overlaps(Period{Start: day(8), End: day(10)}, existing), "shared first day")
	assert.False(t, Overlaps(Period{Start: day(13), End: day(15)}, existing), "adjacent after")
	assert.False(t, Overlaps(Period{Start: day(7), End: day(9)}, existing), "adjacent before")
	assert.True(t, Overlaps(Period{Start: day(11), End: day(11)}, existing), "single day inside")
	assert.True(t, Overlaps(Period{Start: day(1), End: day(20)}, existing), "containing")
}

func TestCheckOverlap(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	existingID := uuid.New()
	existing := []Booking{
		{ID: existingID, UserID: owner, Period: Period{Start: day(10), End: day(12)}},
	}

	t.Run("same owner conflict", func(t *testing.T) {
		assert.True(t, CheckOverlap(existing, owner, Period{Start: day(12), End: day(15)}, nil))
	})

	t.Run("no conflict after range", func(t *testing.T) {
		assert.False(t, CheckOverlap(existing, owner, Period{Start: day(13), End: day(15)}, nil))
	})

	t.Run("other owners never conflict", func(t *testing.T) {
		for s := 0; s < 20; s++ {
			for e := s; e < 20; e++ {
				assert.False(t, CheckOverlap(existing, other, Period{Start: day(s), End: day(e)}, nil))
			}
		}
	})

	t.Run("excluded id is ignored", func(t *testing.T) {
		assert.False(t, CheckOverlap(existing, owner, Period{Start: day(10), End: day(12)}, &existingID))
	})

	t.Run("empty history", func(t *testing.T) {
		assert.False(t, CheckOverlap(nil, owner, Period{Start: day(1), End: day(1)}, nil))
	})
}

func TestStatusAndType(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, Status("pending").Valid())
	assert.True(t, StatusApproved.Reviewed())
	assert.True(t, StatusRejected.Reviewed())
	assert.False(t, StatusPending.Reviewed())
	assert.Equal(t, "Approved", StatusApproved.Label())

	assert.True(t, TypeBereavement.Valid())
	assert.False(t, Type("HOLIDAY").Valid())
	assert.Equal(t, "Sick Leave", TypeSick.Label())
	assert.Equal(t, "HOLIDAY", Type("HOLIDAY").Label())
}

func TestParseFields(t *testing.T) {
	valid := LeaveFields{LeaveType: "annual", StartDate: "2025-03-10", EndDate: "2025-03-10", DaysCount: 1, Reason: "  family trip "}

	f, err := parseFields(valid)
	assert.NoError(t, err)
	assert.Equal(t, TypeAnnual, f.leaveType)
	assert.Equal(t, "family trip", f.reason)
	assert.True(t, f.period.Start.Equal(f.period.End))

	bad := valid
	bad.StartDate, bad.EndDate = "2025-03-12", "2025-03-10"
	_, err = parseFields(bad)
	assert.Error(t, err)

	bad = valid
	bad.Reason = "   "
	_, err = parseFields(bad)
	assert.Error(t, err)

	bad = valid
	bad.DaysCount = 0
	_, err = parseFields(bad)
	assert.Error(t, err)
}

package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/dashboard"
	dashboardMock "go-hrms/internal/dashboard/mock"
	"go-hrms/internal/leave"
	leaveMock "go-hrms/internal/leave/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type serviceDeps struct {
	service dashboard.Service
	repo    *dashboardMock.MockRepository
	leaves  *leaveMock.MockRepository
}

func setupServiceTest(t *testing.T) serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := dashboardMock.NewMockRepository(ctrl)
	leaves := leaveMock.NewMockRepository(ctrl)
	return serviceDeps{
		service: dashboard.NewService(repo, leaves, zap.NewNop()),
		repo:    repo,
		leaves:  leaves,
	}
}

func ymd(v string) time.Time {
	d, _ := time.Parse(time.DateOnly, v)
	return d
}

func ptr[T any](v T) *T { return &v }

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles every section", func(t *testing.T) {
		deps := setupServiceTest(t)
		day := ymd("2025-12-30")
		owner := uuid.New()
		hired := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

		deps.repo.EXPECT().CountStaff(gomock.Any()).Return(int64(12), nil)
		deps.repo.EXPECT().CountUnits(gomock.Any()).Return(int64(3), nil)
		deps.repo.EXPECT().UnitDistribution(gomock.Any()).Return([]dashboard.UnitShare{{Name: "Finance", Value: 4}, {Name: "Legal", Value: 0}}, nil)
		deps.leaves.EXPECT().ListApprovedOn(gomock.Any(), day).Return([]leave.Leave{{
			ID: uuid.New(), UserID: owner, LeaveType: leave.TypeSick, Status: leave.StatusApproved,
			StartDate: ymd("2025-12-29"), EndDate: ymd("2025-12-31"),
			Owner: &leave.Person{ID: owner, FirstName: "Una", LastName: "Tester"},
		}}, nil)
		deps.leaves.EXPECT().CountByStatus(gomock.Any(), leave.StatusPending).Return(int64(2), nil)
		deps.repo.EXPECT().RecentlyHired(gomock.Any(), 5).Return([]dashboard.StaffBrief{
			{ID: uuid.New(), FirstName: "Ada", LastName: "Lee", Email: "ada@example.com", CreatedAt: hired},
		}, nil)
		deps.repo.EXPECT().UpcomingBirthdays(gomock.Any(), day, 5).Return([]dashboard.StaffBrief{
			{ID: uuid.New(), FirstName: "Bo", LastName: "Yu", BirthDate: ptr(ymd("1992-12-31"))},
			{ID: uuid.New(), FirstName: "Cy", LastName: "Ng", BirthDate: ptr(ymd("1990-01-02"))},
		}, nil)

		resp, err := deps.service.Summary(ctx, day)

		require.NoError(t, err)
		assert.Equal(t, "2025-12-30", resp.Date)
		assert.Equal(t, int64(12), resp.TotalStaff)
		assert.Equal(t, int64(3), resp.TotalUnits)
		assert.Len(t, resp.UnitDistribution, 2)
		assert.Equal(t, int64(2), resp.PendingLeaves)

		require.Len(t, resp.OnLeaveToday, 1)
		assert.Equal(t, "Una Tester", resp.OnLeaveToday[0].FullName)
		assert.Equal(t, "Sick Leave", resp.OnLeaveToday[0].TypeLabel)
		assert.Equal(t, "2025-12-31", resp.OnLeaveToday[0].EndDate)

		require.Len(t, resp.RecentlyHired, 1)
		assert.Equal(t, "Ada Lee", resp.RecentlyHired[0].FullName)

		require.Len(t, resp.UpcomingBirthdays, 2)
		assert.Equal(t, "2025-12-31", resp.UpcomingBirthdays[0].NextOn)
		assert.Equal(t, "2026-01-02", resp.UpcomingBirthdays[1].NextOn)
	})

	t.Run("leap day birthday in a common year", func(t *testing.T) {
		deps := setupServiceTest(t)
		day := ymd("2025-03-01")

		deps.repo.EXPECT().CountStaff(gomock.Any()).Return(int64(1), nil)
		deps.repo.EXPECT().CountUnits(gomock.Any()).Return(int64(0), nil)
		deps.repo.EXPECT().UnitDistribution(gomock.Any()).Return(nil, nil)
		deps.leaves.EXPECT().ListApprovedOn(gomock.Any(), day).Return(nil, nil)
		deps.leaves.EXPECT().CountByStatus(gomock.Any(), leave.StatusPending).Return(int64(0), nil)
		deps.repo.EXPECT().RecentlyHired(gomock.Any(), 5).Return(nil, nil)
		deps.repo.EXPECT().UpcomingBirthdays(gomock.Any(), day, 5).Return([]dashboard.StaffBrief{
			{ID: uuid.New(), FirstName: "Lea", BirthDate: ptr(ymd("1996-02-29"))},
		}, nil)

		resp, err := deps.service.Summary(ctx, day)

		require.NoError(t, err)
		assert.Empty(t, resp.OnLeaveToday)
		assert.NotNil(t, resp.UnitDistribution)
		require.Len(t, resp.UpcomingBirthdays, 1)
		assert.Equal(t, "2025-03-01", resp.UpcomingBirthdays[0].NextOn)
	})

	t.Run("any failing query fails the summary", func(t *testing.T) {
		deps := setupServiceTest(t)
		day := ymd("2025-06-10")
		boom := errors.New("db down")

		deps.repo.EXPECT().CountStaff(gomock.Any()).Return(int64(0), nil).AnyTimes()
		deps.repo.EXPECT().CountUnits(gomock.Any()).Return(int64(0), nil).AnyTimes()
		deps.repo.EXPECT().UnitDistribution(gomock.Any()).Return(nil, nil).AnyTimes()
		deps.leaves.EXPECT().ListApprovedOn(gomock.Any(), day).Return(nil, nil).AnyTimes()
		deps.leaves.EXPECT().CountByStatus(gomock.Any(), leave.StatusPending).Return(int64(0), boom).AnyTimes()
		deps.repo.EXPECT().RecentlyHired(gomock.Any(), 5).Return(nil, nil).AnyTimes()
		deps.repo.EXPECT().UpcomingBirthdays(gomock.Any(), day, 5).Return(nil, nil).AnyTimes()

		_, err := deps.service.Summary(ctx, day)

		assert.ErrorIs(t, err, boom)
	})
}

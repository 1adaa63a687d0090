package dashboard

import (
	"context"
	"time"

	"go-hrms/internal/leave"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentLimit   = 5
	birthdayLimit = 5
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context, day time.Time) (SummaryResponse, error)
}

type service struct {
	repo   Repository
	leaves leave.Repository
	logger *zap.Logger
}

func NewService(repo Repository, leaves leave.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, leaves: leaves, logger: l}
}

// Summary gathers the management overview for day. The queries are
// independent and run concurrently; the first failure cancels the rest.
func (s *service) Summary(ctx context.Context, day time.Time) (SummaryResponse, error) {
	var (
		resp     = SummaryResponse{Date: day.Format(time.DateOnly)}
		onLeave  []leave.Leave
		recent   []StaffBrief
		upcoming []StaffBrief
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resp.TotalStaff, err = s.repo.CountStaff(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.TotalUnits, err = s.repo.CountUnits(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.UnitDistribution, err = s.repo.UnitDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		onLeave, err = s.leaves.ListApprovedOn(gctx, day)
		return err
	})
	g.Go(func() (err error) {
		resp.PendingLeaves, err = s.leaves.CountByStatus(gctx, leave.StatusPending)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.repo.RecentlyHired(gctx, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		upcoming, err = s.repo.UpcomingBirthdays(gctx, day, birthdayLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard summary failed", zap.String("day", resp.Date), zap.Error(err))
		return SummaryResponse{}, err
	}

	if resp.UnitDistribution == nil {
		resp.UnitDistribution = []UnitShare{}
	}
	resp.OnLeaveToday = make([]OnLeave, 0, len(onLeave))
	for _, l := range onLeave {
		item := OnLeave{
			LeaveID:   l.ID.String(),
			UserID:    l.UserID.String(),
			LeaveType: string(l.LeaveType),
			TypeLabel: l.LeaveType.Label(),
			StartDate: l.StartDate.Format(time.DateOnly),
			EndDate:   l.EndDate.Format(time.DateOnly),
		}
		if l.Owner != nil {
			item.FullName = l.Owner.FullName()
		}
		resp.OnLeaveToday = append(resp.OnLeaveToday, item)
	}

	resp.RecentlyHired = make([]RecentStaff, 0, len(recent))
	for _, r := range recent {
		resp.RecentlyHired = append(resp.RecentlyHired, RecentStaff{
			ID:        r.ID.String(),
			FullName:  r.FullName(),
			Email:     r.Email,
			CreatedAt: r.CreatedAt,
		})
	}

	resp.UpcomingBirthdays = make([]Birthday, 0, len(upcoming))
	for _, r := range upcoming {
		if r.BirthDate == nil {
			continue
		}
		resp.UpcomingBirthdays = append(resp.UpcomingBirthdays, Birthday{
			ID:        r.ID.String(),
			FullName:  r.FullName(),
			BirthDate: r.BirthDate.Format(time.DateOnly),
			NextOn:    nextOccurrence(*r.BirthDate, day).Format(time.DateOnly),
		})
	}

	return resp, nil
}

// nextOccurrence is the first anniversary of birth on or after day. Feb 29
// falls on Mar 1 in common years.
func nextOccurrence(birth, day time.Time) time.Time {
	y, m, d := day.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	next := time.Date(y, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(y+1, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next
}

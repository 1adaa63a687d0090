package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/leave"
	notificationerrors "go-hrms/internal/notification/errors"
	"go-hrms/internal/shared/identity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	NotifyLeaveReviewed(ctx context.Context, eventID string, event events.LeaveReviewedEvent) error
	ListMine(ctx context.Context, actor identity.Actor, q ListQuery) ([]NotificationResponse, int64, error)
	UnreadCount(ctx context.Context, actor identity.Actor) (int64, error)
	MarkRead(ctx context.Context, actor identity.Actor, id string) error
	MarkAllRead(ctx context.Context, actor identity.Actor) (int64, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

// NotifyLeaveReviewed stores an inbox entry for the leave owner. Malformed
// events are dropped with a warning since redelivery cannot fix them.
func (s *service) NotifyLeaveReviewed(ctx context.Context, eventID string, event events.LeaveReviewedEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		s.logger.Warn("leave reviewed event without valid user",
			zap.String("event_id", eventID),
			zap.String("user_id", event.UserID),
		)
		return nil
	}
	status := leave.Status(event.Status)
	if !status.Reviewed() {
		s.logger.Warn("leave reviewed event with unexpected status",
			zap.String("event_id", eventID),
			zap.String("status", event.Status),
		)
		return nil
	}

	n := &Notification{
		ID:        uuid.New(),
		EventID:   eventID,
		UserID:    userID,
		Kind:      KindLeaveReviewed,
		Title:     fmt.Sprintf("Leave request %s", status.Label()),
		Body:      reviewedBody(event, status),
		CreatedAt: s.now().UTC(),
	}
	if leaveID, err := uuid.Parse(event.LeaveID); err == nil {
		n.LeaveID = &leaveID
	}

	inserted, err := s.repo.Create(ctx, n)
	if err != nil {
		s.logger.Error("store notification failed",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
		return err
	}
	if !inserted {
		s.logger.Info("notification already stored for event", zap.String("event_id", eventID))
	}
	return nil
}

func reviewedBody(event events.LeaveReviewedEvent, status leave.Status) string {
	period := event.StartDate
	if event.EndDate != "" && event.EndDate != event.StartDate {
		period = event.StartDate + " to " + event.EndDate
	}
	return fmt.Sprintf("Your %s request for %s was %s.",
		leave.Type(event.LeaveType).Label(), period, strings.ToLower(status.Label()))
}

func (s *service) ListMine(ctx context.Context, actor identity.Actor, q ListQuery) ([]NotificationResponse, int64, error) {
	items, total, err := s.repo.ListByUser(ctx, actor.UserID, q.Unread, q.ListQuery)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("user_id", actor.ID()), zap.Error(err))
		return nil, 0, err
	}

	resp := make([]NotificationResponse, len(items))
	for i, n := range items {
		resp[i] = mapToResponse(n)
	}
	return resp, total, nil
}

func (s *service) UnreadCount(ctx context.Context, actor identity.Actor) (int64, error) {
	return s.repo.CountUnread(ctx, actor.UserID)
}

func (s *service) MarkRead(ctx context.Context, actor identity.Actor, id string) error {
	notificationID, err := uuid.Parse(id)
	if err != nil {
		return notificationerrors.ErrNotificationNotFound
	}

	ok, err := s.repo.MarkRead(ctx, actor.UserID, notificationID, s.now().UTC())
	if err != nil {
		s.logger.Error("mark notification read failed", zap.String("notification_id", id), zap.Error(err))
		return err
	}
	if !ok {
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, actor identity.Actor) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, actor.UserID, s.now().UTC())
	if err != nil {
		s.logger.Error("mark all notifications read failed", zap.String("user_id", actor.ID()), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Kind:      n.Kind,
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.ReadAt != nil,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
	if n.LeaveID != nil {
		id := n.LeaveID.String()
		resp.LeaveID = &id
	}
	return resp
}

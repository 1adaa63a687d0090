package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go-hrms/internal/events"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/identity"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxReasonLength = 1000

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	// Own requests of the calling user.
	Submit(ctx context.Context, actor identity.Actor, req SubmitLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, actor identity.Actor, q ListQuery) ([]LeaveResponse, int64, error)
	GetMine(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error)
	UpdateMine(ctx context.Context, actor identity.Actor, id string, req SubmitLeaveRequest) (LeaveResponse, error)
	DeleteMine(ctx context.Context, actor identity.Actor, id string) error

	// Administration.
	Create(ctx context.Context, actor identity.Actor, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, q ListQuery) ([]LeaveResponse, int64, error)
	ReviewQueue(ctx context.Context, q ListQuery) ([]LeaveResponse, int64, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Update(ctx context.Context, actor identity.Actor, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error)
	Delete(ctx context.Context, actor identity.Actor, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

// NewService wires the leave workflow. outbox may be nil, in which case no
// events are queued.
func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, now: time.Now, logger: l}
}

func (s *service) Submit(ctx context.Context, actor identity.Actor, req SubmitLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("submit leave requested",
		zap.String("actor_id", actor.ID()),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	if err := ensureNoStatus(req.Status); err != nil {
		s.logger.Warn("submit leave with status refused", zap.String("actor_id", actor.ID()), zap.String("status", req.Status))
		return LeaveResponse{}, err
	}
	f, err := parseFields(req.LeaveFields)
	if err != nil {
		s.logger.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.ensureNoOverlap(ctx, qtx, actor.UserID, f.period, nil); err != nil {
		return LeaveResponse{}, err
	}

	l := &Leave{
		ID:     uuid.New(),
		UserID: actor.UserID,
		Status: StatusPending,
	}
	f.applyTo(l)

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueSubmitted(ctx, tx, l); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("user_id", actor.ID()),
	)

	return mapToResponse(*l), nil
}

func (s *service) ListMine(ctx context.Context, actor identity.Actor, q ListQuery) ([]LeaveResponse, int64, error) {
	owner := actor.UserID
	return s.list(ctx, ListFilter{Query: q, UserID: &owner})
}

func (s *service) GetMine(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error) {
	leaveID, err := parseLeaveID(id)
	if err != nil {
		return LeaveResponse{}, err
	}

	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	// other users' requests are reported as missing
	if l.UserID != actor.UserID {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return mapToResponse(*l), nil
}

func (s *service) UpdateMine(ctx context.Context, actor identity.Actor, id string, req SubmitLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("update own leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actor.ID()),
	)

	leaveID, err := parseLeaveID(id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if err := ensureNoStatus(req.Status); err != nil {
		return LeaveResponse{}, err
	}
	f, err := parseFields(req.LeaveFields)
	if err != nil {
		s.logger.Warn("update own leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update own leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := s.findOwnPending(ctx, qtx, actor, leaveID)
	if err != nil {
		return LeaveResponse{}, err
	}

	if err := s.ensureNoOverlap(ctx, qtx, actor.UserID, f.period, &l.ID); err != nil {
		return LeaveResponse{}, err
	}

	f.applyTo(l)
	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update own leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update own leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("update own leave success", zap.String("leave_id", id))

	return mapToResponse(*l), nil
}

func (s *service) DeleteMine(ctx context.Context, actor identity.Actor, id string) error {
	leaveID, err := parseLeaveID(id)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := s.findOwnPending(ctx, qtx, actor, leaveID); err != nil {
		return err
	}
	if err := qtx.Delete(ctx, leaveID); err != nil {
		s.logger.Error("delete own leave failed", zap.String("leave_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("delete own leave success", zap.String("leave_id", id), zap.String("actor_id", actor.ID()))
	return nil
}

func (s *service) Create(ctx context.Context, actor identity.Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("actor_id", actor.ID()),
		zap.String("user_id", req.UserID),
		zap.String("status", req.Status),
	)

	ownerID, err := uuid.Parse(strings.TrimSpace(req.UserID))
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidUserID
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return LeaveResponse{}, err
	}
	f, err := parseFields(req.LeaveFields)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.ensureNoOverlap(ctx, qtx, ownerID, f.period, nil); err != nil {
		return LeaveResponse{}, err
	}

	l := &Leave{
		ID:     uuid.New(),
		UserID: ownerID,
		Status: status,
	}
	f.applyTo(l)

	if status.Reviewed() {
		s.stampReview(l, actor.UserID)
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if status.Reviewed() {
		err = s.enqueueReviewed(ctx, tx, l)
	} else {
		err = s.enqueueSubmitted(ctx, tx, l)
	}
	if err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("user_id", ownerID.String()),
		zap.String("status", string(status)),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]LeaveResponse, int64, error) {
	return s.list(ctx, ListFilter{Query: q})
}

func (s *service) ReviewQueue(ctx context.Context, q ListQuery) ([]LeaveResponse, int64, error) {
	pending := StatusPending
	return s.list(ctx, ListFilter{Query: q, Status: &pending})
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	leaveID, err := parseLeaveID(id)
	if err != nil {
		return LeaveResponse{}, err
	}

	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, actor identity.Actor, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("update leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actor.ID()),
		zap.String("target_status", req.Status),
	)

	leaveID, err := parseLeaveID(id)
	if err != nil {
		return LeaveResponse{}, err
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return LeaveResponse{}, err
	}
	f, err := parseFields(req.LeaveFields)
	if err != nil {
		s.logger.Warn("update leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if f.period.Equal(l.Period()) {
		s.logger.Debug("update leave dates unchanged, overlap check skipped", zap.String("leave_id", id))
	} else if err := s.ensureNoOverlap(ctx, qtx, l.UserID, f.period, &l.ID); err != nil {
		return LeaveResponse{}, err
	}

	from := l.Status
	f.applyTo(l)
	l.Status = status

	reviewed := false
	switch {
	case from == StatusPending && status.Reviewed():
		s.stampReview(l, actor.UserID)
		reviewed = true
	case from.Reviewed() && status == StatusPending:
		l.ReviewedBy = nil
		l.ReviewedAt = nil
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if reviewed {
		if err := s.enqueueReviewed(ctx, tx, l); err != nil {
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("update leave success",
		zap.String("leave_id", id),
		zap.String("from_status", string(from)),
		zap.String("status", string(l.Status)),
	)

	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error) {
	return s.review(ctx, actor, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error) {
	return s.review(ctx, actor, id, StatusRejected)
}

func (s *service) review(ctx context.Context, actor identity.Actor, id string, target Status) (LeaveResponse, error) {
	s.logger.Debug("review leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actor.ID()),
		zap.String("target_status", string(target)),
	)

	leaveID, err := parseLeaveID(id)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if l.Status != StatusPending {
		s.logger.Warn("review leave invalid transition",
			zap.String("leave_id", id),
			zap.String("from_status", string(l.Status)),
			zap.String("to_status", string(target)),
		)
		return LeaveResponse{}, leaveerrors.ErrAlreadyReviewed
	}

	l.Status = target
	s.stampReview(l, actor.UserID)

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("review leave persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", string(target)),
			zap.Error(err),
		)
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueReviewed(ctx, tx, l); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("review leave commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("review leave success",
		zap.String("leave_id", id),
		zap.String("status", string(target)),
		zap.String("reviewed_by", actor.ID()),
	)
	return mapToResponse(*l), nil
}

// Delete removes a request regardless of its status.
func (s *service) Delete(ctx context.Context, actor identity.Actor, id string) error {
	leaveID, err := parseLeaveID(id)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByIDForUpdate(ctx, leaveID); err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, leaveID); err != nil {
		s.logger.Error("delete leave failed", zap.String("leave_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("delete leave success", zap.String("leave_id", id), zap.String("actor_id", actor.ID()))
	return nil
}

func (s *service) list(ctx context.Context, f ListFilter) ([]LeaveResponse, int64, error) {
	leaves, total, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(leaves), total, nil
}

// findOwnPending loads a request for an owner-side write: it must belong to
// the actor and still be pending.
func (s *service) findOwnPending(ctx context.Context, qtx Repository, actor identity.Actor, id uuid.UUID) (*Leave, error) {
	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if l.UserID != actor.UserID {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	if l.Status != StatusPending {
		s.logger.Warn("owner change on reviewed leave refused",
			zap.String("leave_id", id.String()),
			zap.String("status", string(l.Status)),
		)
		return nil, leaveerrors.ErrNotPending
	}
	return l, nil
}

// ensureNoOverlap locks the owner row and checks p against the owner's other
// requests. Must run inside the write transaction.
func (s *service) ensureNoOverlap(ctx context.Context, qtx Repository, owner uuid.UUID, p Period, excludeID *uuid.UUID) error {
	if err := qtx.LockUser(ctx, owner); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrUserNotFound
		}
		s.logger.Error("leave owner lock failed", zap.String("user_id", owner.String()), zap.Error(err))
		return err
	}

	bookings, err := qtx.FindBookings(ctx, owner)
	if err != nil {
		s.logger.Error("leave overlap check failed", zap.Error(err))
		return err
	}
	if CheckOverlap(bookings, owner, p, excludeID) {
		s.logger.Warn("leave overlap detected",
			zap.String("user_id", owner.String()),
			zap.String("start_date", p.Start.Format(apperror.DateLayout)),
			zap.String("end_date", p.End.Format(apperror.DateLayout)),
		)
		return leaveerrors.ErrLeaveOverlap
	}
	return nil
}

func (s *service) stampReview(l *Leave, reviewer uuid.UUID) {
	now := s.now().UTC()
	l.ReviewedBy = &reviewer
	l.ReviewedAt = &now
}

func (s *service) enqueueSubmitted(ctx context.Context, tx *sql.Tx, l *Leave) error {
	rid := contextutil.GetRequestID(ctx)
	return s.enqueue(ctx, tx, l, events.LeaveSubmittedTopic, events.LeaveSubmittedEvent{
		EventType:  "leave_submitted",
		RequestID:  rid,
		LeaveID:    l.ID.String(),
		UserID:     l.UserID.String(),
		LeaveType:  string(l.LeaveType),
		StartDate:  l.StartDate.Format(apperror.DateLayout),
		EndDate:    l.EndDate.Format(apperror.DateLayout),
		DaysCount:  l.DaysCount,
		Status:     string(l.Status),
		OccurredAt: s.now().UTC(),
	}, "leave_submitted")
}

func (s *service) enqueueReviewed(ctx context.Context, tx *sql.Tx, l *Leave) error {
	if l.ReviewedBy == nil || l.ReviewedAt == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	return s.enqueue(ctx, tx, l, events.LeaveReviewedTopic, events.LeaveReviewedEvent{
		EventType:  "leave_reviewed",
		RequestID:  rid,
		LeaveID:    l.ID.String(),
		UserID:     l.UserID.String(),
		LeaveType:  string(l.LeaveType),
		StartDate:  l.StartDate.Format(apperror.DateLayout),
		EndDate:    l.EndDate.Format(apperror.DateLayout),
		Status:     string(l.Status),
		ReviewedBy: l.ReviewedBy.String(),
		ReviewedAt: *l.ReviewedAt,
		OccurredAt: s.now().UTC(),
	}, "leave_reviewed")
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, l *Leave, topic string, event any, eventType string) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal leave event failed", zap.String("event_type", eventType), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave",
		AggregateID:   l.ID.String(),
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("leave outbox persist failed",
			zap.String("leave_id", l.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

type fields struct {
	leaveType Type
	period    Period
	daysCount int
	reason    string
}

func (f fields) applyTo(l *Leave) {
	l.LeaveType = f.leaveType
	l.StartDate = f.period.Start
	l.EndDate = f.period.End
	l.DaysCount = f.daysCount
	l.Reason = f.reason
}

// parseFields repeats the binding checks so the workflow holds for callers
// other than the HTTP handlers.
func parseFields(in LeaveFields) (fields, error) {
	lt := Type(strings.ToUpper(strings.TrimSpace(in.LeaveType)))
	if !lt.Valid() {
		return fields{}, leaveerrors.ErrInvalidLeaveType
	}

	start, err := parseDate(in.StartDate)
	if err != nil {
		return fields{}, leaveerrors.ErrInvalidStartDate
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return fields{}, leaveerrors.ErrInvalidEndDate
	}
	if start.After(end) {
		return fields{}, leaveerrors.ErrInvalidRange
	}

	if in.DaysCount < 1 {
		return fields{}, leaveerrors.ErrInvalidDaysCount
	}

	reason := strings.TrimSpace(in.Reason)
	if reason == "" || utf8.RuneCountInString(reason) > maxReasonLength {
		return fields{}, leaveerrors.ErrInvalidReason
	}

	return fields{
		leaveType: lt,
		period:    Period{Start: start, End: end},
		daysCount: in.DaysCount,
		reason:    reason,
	}, nil
}

func parseStatus(v string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(v)))
	if !st.Valid() {
		return "", leaveerrors.ErrInvalidStatus
	}
	return st, nil
}

// ensureNoStatus rejects owner requests that try to pick their own status.
func ensureNoStatus(v string) error {
	v = strings.TrimSpace(v)
	if v == "" || Status(strings.ToUpper(v)) == StatusPending {
		return nil
	}
	return leaveerrors.ErrStatusNotAllowed
}

func parseLeaveID(id string) (uuid.UUID, error) {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, leaveerrors.ErrLeaveNotFound
	}
	return leaveID, nil
}

func parseDate(v string) (time.Time, error) {
	return time.Parse(apperror.DateLayout, strings.TrimSpace(v))
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:             l.ID.String(),
		UserID:         l.UserID.String(),
		LeaveType:      string(l.LeaveType),
		LeaveTypeLabel: l.LeaveType.Label(),
		StartDate:      l.StartDate.Format(apperror.DateLayout),
		EndDate:        l.EndDate.Format(apperror.DateLayout),
		DaysCount:      l.DaysCount,
		Reason:         l.Reason,
		Status:         string(l.Status),
		StatusLabel:    l.Status.Label(),
	}
	if l.Owner != nil {
		resp.UserName = l.Owner.FullName()
	}
	if l.ReviewedBy != nil {
		v := l.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if l.Reviewer != nil {
		v := l.Reviewer.FullName()
		resp.ReviewerName = &v
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	if !l.CreatedAt.IsZero() {
		resp.CreatedAt = l.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}

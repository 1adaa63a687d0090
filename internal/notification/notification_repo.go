package notification

import (
	"context"
	"time"

	"go-hrms/internal/shared/scope"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "event_id", "user_id", "kind", "title", "body", "leave_id", "read_at", "created_at"}

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	// Create stores n unless a notification for the same event and user exists.
	// The boolean reports whether a row was inserted.
	Create(ctx context.Context, n *Notification) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, q scope.ListQuery) ([]Notification, int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID, at time.Time) (bool, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) (bool, error) {
	query, args, err := psql.Insert("notifications").
		Columns("id", "event_id", "user_id", "kind", "title", "body", "leave_id", "created_at").
		Values(n.ID, n.EventID, n.UserID, n.Kind, n.Title, n.Body, n.LeaveID, n.CreatedAt).
		Suffix("ON CONFLICT (event_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func ownedBy(userID uuid.UUID, unreadOnly bool) sq.And {
	cond := sq.And{sq.Eq{"user_id": userID}}
	if unreadOnly {
		cond = append(cond, sq.Eq{"read_at": nil})
	}
	return cond
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, q scope.ListQuery) ([]Notification, int64, error) {
	q = q.Normalize()
	where := ownedBy(userID, unreadOnly)

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("notifications").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	query, args, err := psql.Select(columns...).
		From("notifications").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(q.PageSize)).
		Offset(uint64(q.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	items := make([]Notification, 0, q.PageSize)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").From("notifications").Where(ownedBy(userID, true)).ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	err = r.db.GetContext(ctx, &n, query, args...)
	return n, err
}

// MarkRead is idempotent: an already read notification still reports true.
func (r *repository) MarkRead(ctx context.Context, userID, id uuid.UUID, at time.Time) (bool, error) {
	query, args, err := psql.Update("notifications").
		Set("read_at", sq.Expr("COALESCE(read_at, ?)", at)).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *repository) MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	query, args, err := psql.Update("notifications").
		Set("read_at", at).
		Where(ownedBy(userID, true)).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

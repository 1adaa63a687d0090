package announcement

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	announcementerrors "go-hrms/internal/announcement/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/identity"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeedKey is a hash of cached feed pages keyed by "page:page_size".
const (
	FeedKey      = "announcements:feed"
	feedCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=announcement_service.go -destination=mock/announcement_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor identity.Actor, req AnnouncementRequest) (AnnouncementResponse, error)
	List(ctx context.Context, q scope.ListQuery) ([]AnnouncementResponse, int64, error)
	Feed(ctx context.Context, q scope.ListQuery) ([]AnnouncementResponse, int64, error)
	GetByID(ctx context.Context, id string) (AnnouncementResponse, error)
	Update(ctx context.Context, actor identity.Actor, id string, req AnnouncementRequest) (AnnouncementResponse, error)
	Delete(ctx context.Context, actor identity.Actor, id string) error
}

type feedPage struct {
	Items []AnnouncementResponse `json:"items"`
	Total int64                  `json:"total"`
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService builds the announcement service. rdb may be nil to disable caching.
func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("announcement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("announcement.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, actor identity.Actor, req AnnouncementRequest) (AnnouncementResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	date, err := parseDate(req.Date)
	if err != nil {
		return AnnouncementResponse{}, err
	}

	author := actor.UserID
	a := &Announcement{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(req.Title),
		Date:      date,
		Content:   strings.TrimSpace(req.Content),
		CreatedBy: &author,
	}
	if a.Title == "" {
		return AnnouncementResponse{}, apperror.RequiredField("title")
	}
	if a.Content == "" {
		return AnnouncementResponse{}, apperror.RequiredField("content")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AnnouncementResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, a); err != nil {
		s.logger.Error("create announcement failed", zap.String("request_id", rid), zap.Error(err))
		return AnnouncementResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AnnouncementResponse{}, err
	}
	s.invalidate(ctx)
	s.logger.Info("create announcement success",
		zap.String("request_id", rid),
		zap.String("announcement_id", a.ID.String()),
		zap.String("actor_id", actor.ID()),
	)

	return mapToResponse(*a), nil
}

func (s *service) List(ctx context.Context, q scope.ListQuery) ([]AnnouncementResponse, int64, error) {
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		s.logger.Error("list announcements failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(items), total, nil
}

// Feed is the read-only listing everyone sees; pages are cached until the next write.
func (s *service) Feed(ctx context.Context, q scope.ListQuery) ([]AnnouncementResponse, int64, error) {
	q = scope.ListQuery{Page: q.Page, PageSize: q.PageSize}.Normalize()
	field := fmt.Sprintf("%d:%d", q.Page, q.PageSize)

	if s.rdb != nil {
		cached, err := s.rdb.HGet(ctx, FeedKey, field).Result()
		if err == nil {
			var page feedPage
			if err := json.Unmarshal([]byte(cached), &page); err == nil {
				return page.Items, page.Total, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("read announcement cache failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(FeedKey+":"+field, func() (any, error) {
		items, total, err := s.repo.List(ctx, q)
		if err != nil {
			return nil, err
		}
		page := feedPage{Items: mapToListResponse(items), Total: total}

		if s.rdb != nil {
			if data, err := json.Marshal(page); err == nil {
				if err := s.rdb.HSet(ctx, FeedKey, field, data).Err(); err != nil {
					s.logger.Warn("cache announcements failed", zap.Error(err))
				} else if err := s.rdb.Expire(ctx, FeedKey, feedCacheTTL).Err(); err != nil {
					s.logger.Warn("expire announcement cache failed", zap.Error(err))
				}
			}
		}
		return page, nil
	})
	if err != nil {
		s.logger.Error("load announcement feed failed", zap.Error(err))
		return nil, 0, err
	}

	page := v.(feedPage)
	return page.Items, page.Total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AnnouncementResponse, error) {
	announcementID, err := uuid.Parse(id)
	if err != nil {
		return AnnouncementResponse{}, announcementerrors.ErrAnnouncementNotFound
	}

	a, err := s.repo.FindByID(ctx, announcementID)
	if err != nil {
		return AnnouncementResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, actor identity.Actor, id string, req AnnouncementRequest) (AnnouncementResponse, error) {
	announcementID, err := uuid.Parse(id)
	if err != nil {
		return AnnouncementResponse{}, announcementerrors.ErrAnnouncementNotFound
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return AnnouncementResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AnnouncementResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, announcementID)
	if err != nil {
		return AnnouncementResponse{}, mapRepositoryError(err)
	}
	a.Title = strings.TrimSpace(req.Title)
	a.Date = date
	a.Content = strings.TrimSpace(req.Content)

	if err := qtx.Update(ctx, a); err != nil {
		return AnnouncementResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AnnouncementResponse{}, err
	}
	s.invalidate(ctx)
	s.logger.Info("update announcement success", zap.String("announcement_id", id), zap.String("actor_id", actor.ID()))

	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, actor identity.Actor, id string) error {
	announcementID, err := uuid.Parse(id)
	if err != nil {
		return announcementerrors.ErrAnnouncementNotFound
	}

	if err := s.repo.Delete(ctx, announcementID); err != nil {
		return mapRepositoryError(err)
	}
	s.invalidate(ctx)
	s.logger.Info("delete announcement success", zap.String("announcement_id", id), zap.String("actor_id", actor.ID()))
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, FeedKey).Err(); err != nil {
		s.logger.Error("invalidate announcement cache failed", zap.String("key", FeedKey), zap.Error(err))
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return announcementerrors.ErrAnnouncementNotFound
	}
	return err
}

func parseDate(raw string) (datatypes.Date, error) {
	d, err := time.Parse(apperror.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return datatypes.Date{}, announcementerrors.ErrInvalidDate
	}
	return datatypes.Date(d), nil
}

func mapToResponse(a Announcement) AnnouncementResponse {
	resp := AnnouncementResponse{
		ID:        a.ID.String(),
		Title:     a.Title,
		Date:      time.Time(a.Date).Format(apperror.DateLayout),
		Content:   a.Content,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
	if a.CreatedBy != nil {
		by := a.CreatedBy.String()
		resp.CreatedBy = &by
	}
	return resp
}

func mapToListResponse(items []Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, len(items))
	for i, a := range items {
		out[i] = mapToResponse(a)
	}
	return out
}

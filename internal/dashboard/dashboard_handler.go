package dashboard

import (
	"net/http"
	"time"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	now     func() time.Time
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, now: time.Now, logger: l}
}

// Summary serves GET /management/dashboard. ?date=YYYY-MM-DD overrides today.
func (h *Handler) Summary(c *gin.Context) {
	day := h.now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse(apperror.DateLayout, v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid date",
				map[string]string{"date": "date must be in YYYY-MM-DD format"})
			return
		}
		day = parsed
	}

	resp, err := h.service.Summary(c.Request.Context(), day)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("dashboard request failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.Error(err),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

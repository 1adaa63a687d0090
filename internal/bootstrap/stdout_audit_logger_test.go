package bootstrap_test

import (
	"context"
	"testing"

	"go-hrms/internal/bootstrap"
	"go-hrms/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-9")
	audit.Log(ctx, bootstrap.AuditLog{Action: "LEAVE_REVIEWED", Message: "approved", Meta: map[string]any{"leave_id": "l-1"}})

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "audit", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "LEAVE_REVIEWED", fields["action"])
	assert.Equal(t, "req-9", fields["request_id"])
}

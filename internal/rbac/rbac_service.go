package rbac

import (
	"sort"
	"sync"

	"go-hrms/internal/shared/identity"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(policy map[identity.Role][]Permission) error
	Enforce(req EnforceRequest) (bool, error)
	PermissionsFor(role string) ([]string, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

// LoadPolicy replaces the enforcer policy with the given role matrix.
func (s *service) LoadPolicy(policy map[identity.Role][]Permission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for child, parent := range roleParents {
		if _, err := s.enforcer.AddGroupingPolicy(string(child), string(parent)); err != nil {
			return err
		}
	}

	count := 0
	for role, perms := range policy {
		for _, p := range perms {
			if _, err := s.enforcer.AddPolicy(string(role), p.Resource, p.Action); err != nil {
				return err
			}
			count++
		}
	}
	s.logger.Info("rbac policy loaded", zap.Int("roles", len(policy)), zap.Int("permissions", count))
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsFor(role string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(perms))
	seen := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		// p = [sub, obj, act]
		if len(p) < 3 {
			continue
		}
		key := Permission{Resource: p[1], Action: p[2]}.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out, nil
}

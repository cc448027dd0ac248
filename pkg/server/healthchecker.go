package server

import (
	"context"
	"log/slog"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// NamedHealthChecker reports healthy only when every registered check passes.
type NamedHealthChecker struct {
	checks map[string]HealthChecker
}

func NewNamedHealthChecker() *NamedHealthChecker {
	return &NamedHealthChecker{checks: make(map[string]HealthChecker)}
}

func (hc *NamedHealthChecker) Add(name string, check HealthChecker) *NamedHealthChecker {
	hc.checks[name] = check
	return hc
}

func (hc *NamedHealthChecker) Healthy(ctx context.Context) bool {
	healthy := true
	for name, check := range hc.checks {
		if !check.Healthy(ctx) {
			slog.Warn("Health check failed", "check", name)
			healthy = false
		}
	}
	return healthy
}

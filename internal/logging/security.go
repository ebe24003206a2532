// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit events with a fixed schema, separate from
// application logs so they can be routed to an audit sink.
type SecurityLogger struct {
	l *zap.Logger
}

// NewSecurityLogger wraps a zap logger in the audit event schema.
func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) AuthzGrant(subject, target, role string) {
	s.l.Info("authorization grant",
		zap.String("event", "authz_grant"),
		zap.String("subject", subject),
		zap.String("target", target),
		zap.String("role", role),
	)
}

func (s *SecurityLogger) AuthzRevoke(subject, target string) {
	s.l.Info("authorization revoke",
		zap.String("event", "authz_revoke"),
		zap.String("subject", subject),
		zap.String("target", target),
	)
}

func (s *SecurityLogger) DraftModified(subject, tenantID string) {
	s.l.Info("draft modified",
		zap.String("event", "draft_modified"),
		zap.String("subject", subject),
		zap.String("tenant_id", tenantID),
	)
}

func (s *SecurityLogger) StatusTransition(subject, tenantID, from, to string) {
	s.l.Info("status transition",
		zap.String("event", "status_transition"),
		zap.String("subject", subject),
		zap.String("tenant_id", tenantID),
		zap.String("from", from),
		zap.String("to", to),
	)
}

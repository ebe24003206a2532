// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"context"
	"fmt"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/mail"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

const approvalSubject = "Your institution application has been approved"

// Dispatcher sends the approval notification for a draft. It is invoked once
// per approval transition, after the transition has been persisted.
type Dispatcher struct {
	client       mail.EmailClientInterface
	dashboardURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// DispatchApproval sends exactly one approval email for the draft. The error
// it returns is informational only; callers log it and move on.
func (d *Dispatcher) DispatchApproval(ctx context.Context, draft *types.InstitutionDraft) error {
	ctx, span := d.tracer.Start(ctx, "institution.Dispatcher.DispatchApproval")
	defer span.End()

	if draft.UserEmail == "" {
		d.logger.Warnf("draft for tenant %s has no submitter email, skipping approval notification", draft.TenantID)
		return nil
	}

	html := approvalBody(draft, d.dashboardURL)

	if err := d.client.Send(ctx, draft.UserEmail, draft.InstitutionName, approvalSubject, html); err != nil {
		return fmt.Errorf("%w: approval email for tenant %s: %v", ErrNotificationFailed, draft.TenantID, err)
	}

	d.logger.Debugf("approval notification sent for tenant %s to %s", draft.TenantID, draft.UserEmail)

	return nil
}

func approvalBody(draft *types.InstitutionDraft, dashboardURL string) string {
	return fmt.Sprintf(
		"<p>Hello,</p>"+
			"<p>The application for <strong>%s</strong> has been approved.</p>"+
			"<p>You can review your organization at <a href=%q>%s</a>.</p>",
		draft.InstitutionName, dashboardURL, dashboardURL,
	)
}

// NewDispatcher returns a Dispatcher delivering through the given mail client.
func NewDispatcher(client mail.EmailClientInterface, dashboardURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Dispatcher {
	d := new(Dispatcher)

	d.client = client
	d.dashboardURL = dashboardURL

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}

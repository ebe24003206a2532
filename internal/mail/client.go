// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

var _ EmailClientInterface = (*Client)(nil)

type Client struct {
	client   *sendgrid.Client
	from     string
	fromName string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(apiKey, from, fromName string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (c *Client) Send(ctx context.Context, to, toName, subject, html string) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.Send")
	defer span.End()

	message := sgmail.NewSingleEmail(
		sgmail.NewEmail(c.fromName, c.from),
		subject,
		sgmail.NewEmail(toName, to),
		"",
		html,
	)

	response, err := c.client.SendWithContext(ctx, message)

	available := 1.0
	if err != nil || (response != nil && response.StatusCode >= 400) {
		available = 0
	}
	if merr := c.monitor.SetDependencyAvailability(map[string]string{"component": "mail", "service": "sendgrid"}, available); merr != nil {
		c.logger.Errorf("failed to set mail availability metric: %v", merr)
	}

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("mail provider returned status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}

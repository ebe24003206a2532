// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/onboarding-service/internal/logging"
)

var _ EmailClientInterface = (*NoopClient)(nil)

// NoopClient logs instead of sending. Used when mail delivery is disabled.
type NoopClient struct {
	logger logging.LoggerInterface
}

func NewNoopClient(logger logging.LoggerInterface) *NoopClient {
	return &NoopClient{logger: logger}
}

func (c *NoopClient) Send(ctx context.Context, to, toName, subject, html string) error {
	c.logger.Infof("mail delivery disabled, skipping email to %s with subject %q", to, subject)
	return nil
}

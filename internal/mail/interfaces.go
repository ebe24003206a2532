// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

// EmailClientInterface is the outbound mail provider boundary. Implementations
// must treat every call as best-effort; callers decide whether a failure is
// fatal.
type EmailClientInterface interface {
	Send(ctx context.Context, to, toName, subject, html string) error
}

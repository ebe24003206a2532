// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"errors"
)

// Terminal, deterministic outcomes are reported to the caller as-is. Only
// ErrStoreUnavailable is ambiguous: the caller must retry and re-read to
// learn whether the write landed.
var (
	ErrDraftNotFound     = errors.New("institution draft not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrIncompleteDraft   = errors.New("draft is missing required fields")
	ErrStoreUnavailable  = errors.New("backing store unavailable")
	ErrShuttingDown      = errors.New("service is shutting down")

	// ErrNotificationFailed is soft: transitions never roll back on it, the
	// failure is logged and the email is lost.
	ErrNotificationFailed = errors.New("notification delivery failed")
)

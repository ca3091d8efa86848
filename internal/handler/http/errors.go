// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is raised by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	// It is the only authentication failure that maps to 403; everything
	// else about a present-but-bad credential maps to 401.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
)

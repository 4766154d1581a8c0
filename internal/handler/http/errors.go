// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request, before any service is
// called. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not a JSON object
	// of the expected shape.
	ErrInvalidJSON = errors.New("request body is not valid JSON")

	// ErrInvalidCourseID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidCourseID = errors.New("course id must be a positive integer")

	// ErrNoAuthenticatedUser is returned by a protected handler that finds
	// no identity in the request context. It indicates a routing mistake.
	ErrNoAuthenticatedUser = errors.New("no authenticated user in request context")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email address already exists.
	ErrEmailAlreadyExists = errors.New("email address already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup key.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrMissingRequiredField is returned when the database rejects a row
	// because a NOT NULL column was left empty.
	ErrMissingRequiredField = errors.New("required field is missing")

	// ErrCourseNotFound is returned when the targeted course does not exist.
	ErrCourseNotFound = errors.New("course was not found")

	// ErrCourseNotOwned is returned when a course exists but belongs to a
	// different user than the one attempting to mutate it.
	ErrCourseNotOwned = errors.New("course is owned by another user")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnknownDriver is returned when the configured database driver is
	// neither postgres nor sqlite.
	ErrUnknownDriver = errors.New("unknown database driver")
)

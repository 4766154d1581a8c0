// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input validation rules for users and
// courses.
//
// Validators collect every problem they find into a [ValidationError] so
// that the transport layer can enumerate the failing fields to the client.
// Optional field names passed to Validate restrict the checks to a subset.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword when the candidate does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns the salted bcrypt hash of password.
//
// cost outside [bcrypt.MinCost, bcrypt.MaxCost] (including zero) falls back
// to [bcrypt.DefaultCost].
//
// Example usage:
//
//	hash, err := utils.HashPassword("pw", 0)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a plaintext candidate with a bcrypt hash.
// bcrypt performs the comparison in constant time.
//
// Returns nil on match, [ErrPasswordMismatch] on mismatch, or a wrapped
// error when hash is not a valid bcrypt hash.
func CheckPassword(hash, candidate string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}

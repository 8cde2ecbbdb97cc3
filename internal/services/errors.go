// Package services defines the business logic for form intake, admin reads of
// submissions, and the public catalog and content. This file centralizes the
// service-level errors so handlers can map them to HTTP results consistently.
package services

import (
	"errors"
	"strings"
)

var (
	// ErrUnauthorized means the caller presented no valid session.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden means the session is valid but its profile is missing,
	// inactive, or not an admin.
	ErrForbidden = errors.New("admin access required")

	// ErrSubmissionNotFound indicates no form submission has the given id.
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrServiceNotFound indicates no service has the given slug.
	ErrServiceNotFound = errors.New("service not found")

	// ErrBlogPostNotFound indicates no published post has the given slug.
	ErrBlogPostNotFound = errors.New("blog post not found")

	// ErrAuthorNotFound indicates no author has the given name.
	ErrAuthorNotFound = errors.New("author not found")
)

// ValidationError lists the fields that stopped a submission. Missing holds
// required fields that were absent or blank; Invalid holds fields that were
// present but unusable.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return "validation failed"
	}
	return strings.Join(parts, "; ")
}

// PersistenceError wraps a storage failure during Op.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }

// Package handlers defines the error codes returned in every error envelope.
//
// Codes are lowercase snake_case and stable; clients branch on them rather
// than on message text. Each handler picks the most specific code and passes
// it to fail() with the matching HTTP status.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "validation_failed",
//	  "error": "missing required fields: email",
//	  "missing": ["email"]
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeValidation       = "validation_failed"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)

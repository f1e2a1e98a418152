/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the three error kinds of spec §7 as a small typed
  error, keeping each failure surfaced exactly once at the HTTP boundary.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package httpapi

import "net/http"

// kind classifies a request failure per spec §7.
type kind int

const (
	kindInputRejected kind = iota
	kindEncodingFailed
	kindInternal
)

// apiError is the error type surfaced to callers of /api/embed. Every
// failure path in this package produces exactly one apiError, which maps
// directly onto the ok=false JSON response (spec §6).
type apiError struct {
	k      kind
	reason string
}

func (e *apiError) Error() string { return e.reason }

// inputRejected reports a malformed or oversized request (spec §7).
func inputRejected(reason string) *apiError { return &apiError{k: kindInputRejected, reason: reason} }

// encodingFailed reports a PNG re-encoding failure (spec §7).
func encodingFailed(reason string) *apiError { return &apiError{k: kindEncodingFailed, reason: reason} }

// internalError reports any other failure during embedding (spec §7).
func internalError(reason string) *apiError { return &apiError{k: kindInternal, reason: reason} }

// statusCode returns the HTTP status to use for e's kind.
func (e *apiError) statusCode() int {
	switch e.k {
	case kindInputRejected:
		return http.StatusBadRequest
	case kindEncodingFailed, kindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

package errors

import (
	stderrors "errors"
	"net/http"
)

// Code values are the stable wire error codes returned to callers.
type Code string

const (
	CodeInvalidCSR       Code = "ERR_INVALID_CSR"
	CodeDecryptionFailed Code = "ERR_DECRYPTION_FAILED"
	CodeExpectedFields   Code = "ERR_EXPECTED_FIELDS"
	CodeUnknownType      Code = "ERR_UNKNOWN_TYPE"
	CodeNotFound         Code = "ERR_NOT_FOUND"
	CodeRouteNotFound    Code = "ERR_ROUTE_NOT_FOUND"
	CodeUnauthenticated  Code = "ERR_UNAUTHENTICATED"
	CodeInternal         Code = "ERR_INTERNAL"
)

// CodeOf extracts the wire code from err, defaulting to ERR_INTERNAL so
// unexpected failures never leak internals.
func CodeOf(err error) Code {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// HTTPStatus maps a wire code to its HTTP-equivalent status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeInvalidCSR, CodeDecryptionFailed, CodeExpectedFields, CodeUnknownType:
		return http.StatusBadRequest
	case CodeNotFound, CodeRouteNotFound:
		return http.StatusNotFound
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

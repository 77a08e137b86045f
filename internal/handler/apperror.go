package handler

import "net/http"

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrInvalidRequest   = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request"}
	ErrValidationFailed = &AppError{http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed"}
	ErrResourceNotFound = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrInternalError    = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrInvalidPartyRole = &AppError{http.StatusBadRequest, "INVALID_PARTY_ROLE", "Party role must be customer or supplier"}
	ErrInvalidCurrency  = &AppError{http.StatusBadRequest, "INVALID_CURRENCY", "Invalid currency"}

	// Balance cannot be computed from the data as stored; the consumer
	// shows "balance unavailable" instead of a number.
	ErrRateUnavailable      = &AppError{http.StatusUnprocessableEntity, "RATE_UNAVAILABLE", "Exchange rate unavailable for conversion"}
	ErrUnclassifiedDocument = &AppError{http.StatusUnprocessableEntity, "UNCLASSIFIED_DOCUMENT", "A document could not be classified for this party role"}
	ErrInvalidAmount        = &AppError{http.StatusUnprocessableEntity, "INVALID_AMOUNT", "A document carries a negative amount"}
)

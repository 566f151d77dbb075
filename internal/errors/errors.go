package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nf, ok := err.(*NotFoundError); ok {
		return nf, true
	}
	return nil, false
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflictError(err error) (*ConflictError, bool) {
	if ce, ok := err.(*ConflictError); ok {
		return ce, true
	}
	return nil, false
}

// CatalogUnavailableError marks a failed or malformed room-type catalog fetch.
type CatalogUnavailableError struct {
	Message string
	Cause   error
}

func (e *CatalogUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CatalogUnavailableError) Unwrap() error {
	return e.Cause
}

func NewCatalogUnavailableError(message string, cause error) *CatalogUnavailableError {
	return &CatalogUnavailableError{Message: message, Cause: cause}
}

func IsCatalogUnavailableError(err error) (*CatalogUnavailableError, bool) {
	if cu, ok := err.(*CatalogUnavailableError); ok {
		return cu, true
	}
	return nil, false
}

// Dispatch error codes.
const (
	DispatchMissingEmail  = "MISSING_EMAIL"
	DispatchProviderError = "PROVIDER_ERROR"
)

// DispatchError marks a payment-link email that could not be sent. The draft
// is left untouched; no retry is attempted.
type DispatchError struct {
	Code    string
	Message string
	Cause   error
}

func (e *DispatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DispatchError) Unwrap() error {
	return e.Cause
}

func NewDispatchError(code string, message string, cause error) *DispatchError {
	return &DispatchError{Code: code, Message: message, Cause: cause}
}

func IsDispatchError(err error) (*DispatchError, bool) {
	if de, ok := err.(*DispatchError); ok {
		return de, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

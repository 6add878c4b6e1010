package errors

import (
	"net/http"

	"homehub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Request-shape errors
	ErrIncompleteRequest = NewBaseError(
		http.StatusBadRequest,
		"INCOMPLETE_REQUEST",
		"Received an incomplete request.",
		"",
	)

	ErrUnrecognizedDeviceType = NewBaseError(
		http.StatusBadRequest,
		"UNRECOGNIZED_DEVICE_TYPE",
		"Device type not recognized.",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"User email already registered.",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Could not create user.",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Could not update user.",
		"",
	)

	// Controller-related errors
	ErrControllerNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTROLLER_NOT_FOUND",
		"Controller serial number is incorrect.",
		"",
	)

	ErrControllerUnclaimed = NewBaseError(
		http.StatusNotFound,
		"CONTROLLER_UNCLAIMED",
		"Controller has not been registered.",
		"",
	)

	ErrControllerClaimed = NewBaseError(
		http.StatusConflict,
		"CONTROLLER_CLAIMED",
		"Controller already assigned to a user.",
		"",
	)

	ErrControllerCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTROLLER_CREATION_FAILED",
		"Could not create controller.",
		"",
	)

	ErrControllerUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTROLLER_UPDATE_FAILED",
		"Could not assign user to controller.",
		"",
	)

	// Registration left a user without a bound controller. The transaction
	// rolls the user back; callers must never see this as a plain success.
	ErrRegistrationIncomplete = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_INCOMPLETE",
		"Registration could not be completed.",
		"",
	)

	// Entry-related errors
	ErrEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTRY_NOT_FOUND",
		"Entry not found.",
		"",
	)

	ErrEntryCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENTRY_CREATION_FAILED",
		"Could not create entry.",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Permission denied.",
		"",
	)

	ErrTokenSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_SAVE_FAILED",
		"Could not save token.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	ErrMethodNotSupported = NewBaseError(
		http.StatusMethodNotAllowed,
		"METHOD_NOT_SUPPORTED",
		"Operation not supported for this resource.",
		"",
	)

	// A uniqueness invariant was violated at read time. Indicates corrupted
	// state, not a recoverable request error.
	ErrDataIntegrityFault = NewBaseError(
		http.StatusInternalServerError,
		"DATA_INTEGRITY_FAULT",
		"Stored data violates a uniqueness invariant.",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found.",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

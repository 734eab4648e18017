package failure

import (
	"errors"
	"net/http"

	"github.com/lib/pq"

	"vetclinic/shared/constant"
)

// Failure is a user-facing error carrying the HTTP status it should be reported with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

// IncorrectData returns a Failure for requests that break a validation or booking rule.
func IncorrectData(msg string) *Failure {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// ResourceNotFound returns a Failure for unknown resources. Authorization failures on
// owned resources use it too so callers cannot probe for existence.
func ResourceNotFound(msg string) *Failure {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// BadRequest wraps err as an IncorrectData failure; nil stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return IncorrectData(err.Error())
}

func BadRequestFromString(msg string) error {
	return IncorrectData(msg)
}

func NotFound(msg string) error {
	return ResourceNotFound(msg)
}

func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// InternalError returns a Failure for unexpected errors; nil stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

// GetCode returns the status code of a Failure anywhere in err's chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsExclusionViolation reports whether err carries a postgres exclusion constraint violation.
func IsExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeExclusionViolation
	}

	return false
}

// ConstraintName returns the violated constraint of a postgres error, or an empty string.
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}

	return constant.Empty
}

package common

import (
	"errors"
	"fmt"
	"net/http"

	"forum/pkg/logger"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("not authorized")
	ErrValidation   = errors.New("validation failed")
)

// PublicError is an error whose message may be shown to the client.
// Its kind is one of the sentinels above.
type PublicError struct {
	kind error
	msg  string
}

func (e *PublicError) Error() string { return e.msg }
func (e *PublicError) Unwrap() error { return e.kind }

func NotFoundf(format string, args ...interface{}) error {
	return &PublicError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...interface{}) error {
	return &PublicError{kind: ErrForbidden, msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &PublicError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// ValidationError reports the first violated field of a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return ErrValidation }

// StatusCode maps an error to the HTTP status the client sees.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError logs err and writes the matching status with a client-safe message.
// Internal errors never leak their detail.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		logger.Log(r.Context()).Errorf("%s %s: %v", r.Method, r.URL.Path, err)
		WriteMsg(w, "internal server error", code)
		return
	}
	logger.Log(r.Context()).Infof("%s %s: %v", r.Method, r.URL.Path, err)

	var verr *ValidationError
	if errors.As(err, &verr) {
		WriteMsg(w, verr.Message, code)
		return
	}
	var perr *PublicError
	if errors.As(err, &perr) {
		WriteMsg(w, perr.msg, code)
		return
	}
	WriteMsg(w, http.StatusText(code), code)
}

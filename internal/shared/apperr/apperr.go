package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	Invalid      Kind = "invalid"       // client-side validation failed, never sent upstream
	Network      Kind = "network"       // transport failed before a response arrived
	API          Kind = "api"           // upstream responded with a failure status
	StaleSession Kind = "stale_session" // token present but expired or rejected upstream
	NotFound     Kind = "not_found"
	Forbidden    Kind = "forbidden"
	Internal     Kind = "internal"
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.PublicMsg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.PublicMsg)
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.Err }

// Constructors (PublicMsg must stay short and safe to display)
func InvalidErr(publicMsg string, fields map[string]string) *AppError {
	return &AppError{Kind: Invalid, PublicMsg: publicMsg, Fields: fields}
}
func NetworkErr(err error) *AppError {
	return &AppError{Kind: Network, PublicMsg: "Could not reach the server. Check your connection.", Err: err}
}
func APIErr(status int, publicMsg string) *AppError {
	return &AppError{Kind: API, Status: status, PublicMsg: publicMsg}
}
func StaleSessionErr(publicMsg string) *AppError {
	if publicMsg == "" {
		publicMsg = "Your session has expired. Please sign in again."
	}
	return &AppError{Kind: StaleSession, Status: http.StatusUnauthorized, PublicMsg: publicMsg}
}
func NotFoundErr(publicMsg string) *AppError {
	return &AppError{Kind: NotFound, PublicMsg: publicMsg}
}
func ForbiddenErr(publicMsg string) *AppError {
	return &AppError{Kind: Forbidden, PublicMsg: publicMsg}
}

// Wrap: internal error without a public message (default 500)
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return &AppError{Kind: Internal, PublicMsg: "Something went wrong.", Err: err}
}

func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsStaleSession reports whether err must clear the session and force
// a return to the login state.
func IsStaleSession(err error) bool {
	ae, ok := As(err)
	return ok && ae.Kind == StaleSession
}

func HTTPStatus(err error) int {
	if ae, ok := As(err); ok {
		switch ae.Kind {
		case Invalid:
			return http.StatusBadRequest
		case StaleSession:
			return http.StatusUnauthorized
		case Forbidden:
			return http.StatusForbidden
		case NotFound:
			return http.StatusNotFound
		case Network:
			return http.StatusBadGateway
		case API:
			if ae.Status >= 400 {
				return ae.Status
			}
			return http.StatusBadGateway
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

func PublicMessage(err error) string {
	if ae, ok := As(err); ok && ae.PublicMsg != "" {
		return ae.PublicMsg
	}
	return "Something went wrong."
}

package services

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure so transports can map it uniformly.
type Kind string

const (
	KindNotFound     Kind = "notFound"
	KindConflict     Kind = "conflict"
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindUpstream     Kind = "upstream"
)

// ServiceError carries a client-safe Message and, optionally, the underlying cause.
type ServiceError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func NotFound(msg string) error {
	return &ServiceError{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &ServiceError{Kind: KindConflict, Message: msg}
}

func Validation(msg string) error {
	return &ServiceError{Kind: KindValidation, Message: msg}
}

func Unauthorized(msg string, err error) error {
	return &ServiceError{Kind: KindUnauthorized, Message: msg, Err: err}
}

func Upstream(msg string, err error) error {
	return &ServiceError{Kind: KindUpstream, Message: msg, Err: err}
}

// KindOf returns the kind of err, or "" for errors that are not ServiceErrors.
func KindOf(err error) Kind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// MessageOf returns the client-safe message of err, or fallback when err is
// not a ServiceError. Internal error text never reaches clients.
func MessageOf(err error, fallback string) string {
	var se *ServiceError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}

package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeForbidden     Code = "FORBIDDEN"
	CodeNotFound      Code = "NOT_FOUND"
	CodeStateConflict Code = "STATE_CONFLICT"
	CodeServer        Code = "SERVER_ERROR"
	CodeNetwork       Code = "NETWORK_ERROR"
)

// Metadata carries display policy per code. PublicMessage is the generic
// fallback shown when the server did not supply one of its own.
type Metadata struct {
	Retryable     bool
	PublicMessage string
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Retryable:     false,
		PublicMessage: "please correct the highlighted fields",
	},
	CodeUnauthorized: {
		Retryable:     false,
		PublicMessage: "session expired, sign in again",
	},
	CodeForbidden: {
		Retryable:     false,
		PublicMessage: "you are not allowed to perform this action",
	},
	CodeNotFound: {
		Retryable:     false,
		PublicMessage: "requested record was not found",
	},
	CodeStateConflict: {
		Retryable:     false,
		PublicMessage: "this record no longer allows that change",
	},
	CodeServer: {
		Retryable:     true,
		PublicMessage: "something went wrong, try again",
	},
	CodeNetwork: {
		Retryable:     true,
		PublicMessage: "network unavailable, try again",
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeServer]
}

// FromStatus maps an HTTP response status onto a client error code.
func FromStatus(status int) Code {
	switch status {
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return CodeStateConflict
	case http.StatusBadRequest:
		return CodeValidation
	default:
		if status >= 400 && status < 500 {
			return CodeValidation
		}
		return CodeServer
	}
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeServer
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// IsValidation reports whether any error in the chain is a validation error.
func IsValidation(err error) bool {
	typed := As(err)
	return typed != nil && typed.Code() == CodeValidation
}

// UserMessage resolves the display string for an error: the server- or
// validator-provided message when present, else the code's public fallback.
// Error state is never persisted; callers show this once and move on.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	typed := As(err)
	if typed == nil {
		return MetadataFor(CodeServer).PublicMessage
	}
	if msg := typed.Message(); msg != "" {
		return msg
	}
	return MetadataFor(typed.Code()).PublicMessage
}

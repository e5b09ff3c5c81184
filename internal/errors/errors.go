package appErrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindInvalidCredentials
	KindUnauthorized
	KindNotFound
	KindAIService
	KindEmail
	KindBilling
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindAIService:
		return "ai_service"
	case KindEmail:
		return "email"
	case KindBilling:
		return "billing"
	case KindConfiguration:
		return "configuration"
	default:
		return "internal"
	}
}

// Error carries a Kind plus a user-facing message and the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return e.Message + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

var ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "Invalid credentials"}

var ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "Unauthorized"}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) error {
	return New(KindValidation, message)
}

func NewCampaignNotFound(id uint) error {
	return New(KindNotFound, fmt.Sprintf("campaign with ID %d not found", id))
}

func NewBusinessNotFound(id uint) error {
	return New(KindNotFound, fmt.Sprintf("business with ID %d not found", id))
}

// KindOf reports KindInternal for errors that carry no Kind.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// UserMessage renders err the way it is shown to the browser.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *Error
	if !errors.As(err, &appErr) {
		return "Something went wrong, please try again"
	}

	switch appErr.Kind {
	case KindAIService:
		return "AI Error: " + detail(appErr)
	case KindEmail:
		return "Email Error: " + detail(appErr)
	case KindBilling:
		return "Billing Error: " + detail(appErr)
	case KindUnauthorized:
		return "Unauthorized"
	case KindInvalidCredentials:
		return "Invalid credentials"
	case KindInternal:
		return "Something went wrong, please try again"
	default:
		return appErr.Error()
	}
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindUnauthorized:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindAIService, KindEmail, KindBilling:
		return http.StatusBadGateway
	case KindConfiguration:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// detail prefers the raw cause so transport errors reach the user verbatim.
func detail(e *Error) string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

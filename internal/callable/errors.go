package callable

import (
	"fmt"
	"net/http"
)

// Code машинный вид ошибки callable-протокола.
type Code string

const (
	CodeInvalidArgument Code = "invalid-argument"
	CodeInternal        Code = "internal"
)

// Status каноническое имя кода, которое ожидают клиентские SDK.
func (c Code) Status() string {
	switch c {
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "INTERNAL"
	}
}

// HTTPStatus транспортный статус ответа для кода.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error ошибка, которая уходит вызывающему как есть.
type Error struct {
	Code    Code
	Message string
	Details string
}

func NewError(code Code, message string, details string) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

func (e *Error) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.Details)
}

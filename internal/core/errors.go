package core

import "fmt"

// Stable error codes shared by every adapter. Callers branch on Code, never
// on message text.
const (
	CodeHTTPError        = "HttpError"
	CodeAPIError         = "ApiError"
	CodeDeserializeError = "DeserializeError"
	CodeNotFound         = "NotFound"
	CodeNotImplemented   = "NotImplemented"
	CodeBadRequest       = "BadRequest"
)

// Error carries a machine-matchable code, a human message and an optional
// free-form detail (typically the raw upstream body). Detail is diagnostic
// only and is never parsed.
type Error struct {
	Code    string
	Message string
	Detail  string
}

func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func NewErrorDetail(code, message, detail string) *Error {
	return &Error{Code: code, Message: message, Detail: detail}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Is(code string) bool {
	return e != nil && e.Code == code
}

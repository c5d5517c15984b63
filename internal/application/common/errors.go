package common

import (
	"errors"
	"fmt"
)

// Kind classifies an application error. The delivery layer maps kinds to
// status codes; services never pick a status themselves.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindNotOwned
	KindMissingCredential
	KindInvalidCredential
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindNotOwned:
		return "not_owned"
	case KindMissingCredential:
		return "missing_credential"
	case KindInvalidCredential:
		return "invalid_credential"
	default:
		return "internal"
	}
}

// Error carries a client-safe Message. Err is the cause and is only ever
// logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

const (
	MsgMissingCredentials = "Missing username and/or password"
	MsgUsernameTaken      = "Username already taken"
	MsgBadLogin           = "Incorrect username or password"
	MsgUserNotFound       = "User not found"
	MsgTitleRequired      = "Title is required"
	MsgPostNotOwned       = "Post not found or user not authorized"
	MsgTokenNotFound      = "Access token not found"
	MsgInvalidToken       = "Invalid token"
	MsgInternal           = "Internal server error"
)

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NotOwned() *Error {
	return &Error{Kind: KindNotOwned, Message: MsgPostNotOwned}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: err}
}

// KindOf reports the kind of err, KindInternal for anything that is not
// an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

package model

import "errors"

var (
	// ErrNotFound is returned by stores when no record matches.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned by the user store on a duplicate email.
	ErrEmailTaken = errors.New("email is taken")
)

// ErrorKind classifies errors returned to API clients.
type ErrorKind string

const (
	KindAuthRequired       ErrorKind = "AUTH_REQUIRED"
	KindNotFound           ErrorKind = "NOT_FOUND"
	KindInvalidCredentials ErrorKind = "INVALID_CREDENTIALS"
	KindUpload             ErrorKind = "UPLOAD_ERROR"
	KindConflict           ErrorKind = "CONFLICT"
	KindStore              ErrorKind = "STORE_ERROR"
	KindInternal           ErrorKind = "INTERNAL"
)

// Error is an error with a client-facing message and a kind.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func NewErrAuthRequired() *Error {
	return &Error{Kind: KindAuthRequired, Message: "You need to be logged in."}
}

func NewErrUserNotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "No user found with this email address."}
}

func NewErrInvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "Incorrect password."}
}

func NewErrNoFile() *Error {
	return &Error{Kind: KindUpload, Message: "No file received."}
}

// NewErrUpload carries the collaborator's own message, without the wrapping added on the way up.
func NewErrUpload(err error) *Error {
	return &Error{Kind: KindUpload, Message: rootCause(err).Error(), Err: err}
}

func NewErrMediaUnavailable() *Error {
	return &Error{Kind: KindUpload, Message: "Media storage is not configured."}
}

func NewErrUnsupportedMedia(mime string) *Error {
	return &Error{Kind: KindUpload, Message: "Unsupported file type " + mime + ", only images are accepted."}
}

func NewErrEmailTaken() *Error {
	return &Error{Kind: KindConflict, Message: "A user with this email address already exists.", Err: ErrEmailTaken}
}

// NewErrStore carries the store's own message, without the wrapping added on the way up.
func NewErrStore(err error) *Error {
	return &Error{Kind: KindStore, Message: rootCause(err).Error(), Err: err}
}

// rootCause returns the innermost error of a single-cause wrap chain.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

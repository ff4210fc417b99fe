package errors

import "github.com/pkg/errors"

// Kind tags an error with how the delivery layer should surface it.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindDependency
)

// Error is a kind-tagged failure. Validation and conflict errors carry a
// field -> message mapping that goes straight into the response body.
type Error struct {
	kind    Kind
	message string
	fields  map[string]string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Fields() map[string]string {
	return e.fields
}

func Validation(fields map[string]string) *Error {
	return &Error{kind: KindValidation, message: "validation failed", fields: fields}
}

func Conflict(field, message string) *Error {
	return &Error{kind: KindConflict, message: message, fields: map[string]string{field: message}}
}

func NotFound(field, message string) *Error {
	return &Error{kind: KindNotFound, message: message, fields: map[string]string{field: message}}
}

func Dependency(message string) *Error {
	return &Error{kind: KindDependency, message: message}
}

var (
	ErrUserNotFound       = NotFound("user", "user doesn't exists")
	ErrEmailAlreadyExists = Conflict("email", "email already exists")
	ErrDb                 = Dependency("database error")
)

// KindOf unwraps err down to the first kind-tagged error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindUnknown
}

func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields()
	}
	return nil
}

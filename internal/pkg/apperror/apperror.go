package apperror

import "fmt"

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	// KindValidation is a field-level, user-correctable input failure.
	KindValidation Kind = iota
	// KindNotFound means a referenced entity is absent.
	KindNotFound
	// KindUnauthenticated means the caller must authenticate first.
	KindUnauthenticated
	// KindForbidden means the caller is authenticated but under-privileged.
	KindForbidden
	// KindTransition means a status change is not legal for the entity.
	KindTransition
	// KindPersistence wraps a backend/storage failure, treated as retryable.
	KindPersistence
)

type AppError struct {
	Kind    Kind
	Message string
	// Fields holds per-field reasons for validation failures.
	Fields map[string]string
	// Err is the underlying cause, kept for logging only.
	Err error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string, fields map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Unauthenticated(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func Transition(message string) *AppError {
	return &AppError{Kind: KindTransition, Message: message}
}

func Persistence(err error) *AppError {
	return &AppError{Kind: KindPersistence, Message: "a storage error occurred, please retry", Err: err}
}

// Is reports whether err is an AppError of the given kind.
func Is(err error, kind Kind) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Kind == kind
}

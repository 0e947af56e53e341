package usecase

import (
	"errors"
	"fmt"
)

// Kind classifies a business-rule failure so the delivery layer can decide
// how to render it without string-matching messages.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindDuplicate         Kind = "duplicate"
	KindConflict          Kind = "conflict"
	KindInsufficientStock Kind = "insufficient_stock"
)

// BusinessError is a typed business-rule failure. Message texts are part of
// the legacy response contract and are rendered to clients verbatim, hence
// the sentence casing.
type BusinessError struct {
	Kind    Kind
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func newBusinessError(kind Kind, format string, args ...any) *BusinessError {
	return &BusinessError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationError(format string, args ...any) *BusinessError {
	return newBusinessError(KindValidation, format, args...)
}

func notFoundError(format string, args ...any) *BusinessError {
	return newBusinessError(KindNotFound, format, args...)
}

func duplicateError(format string, args ...any) *BusinessError {
	return newBusinessError(KindDuplicate, format, args...)
}

func conflictError(format string, args ...any) *BusinessError {
	return newBusinessError(KindConflict, format, args...)
}

func insufficientStockError(format string, args ...any) *BusinessError {
	return newBusinessError(KindInsufficientStock, format, args...)
}

// KindOf extracts the business kind from an error chain. The second return
// is false for infrastructure errors.
func KindOf(err error) (Kind, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}

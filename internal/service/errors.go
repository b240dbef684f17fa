package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("invalid field value")
	ErrDeliveryNotFound = errors.New("order id not found")
	ErrTableIO          = errors.New("delivery table io failed")
	ErrMalformedRow     = errors.New("malformed delivery row")
	ErrHeaderMismatch   = errors.New("table header does not match delivery layout")
	ErrSnapshotDisabled = errors.New("snapshot export is disabled")
)

// 校验字段名
const (
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldQuantity = "quantity"
)

// ValidationError 字段校验失败
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ErrorKind 错误分类
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindIO
	KindValidation
	KindNotFound
	KindMalformedRow
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io_error"
	case KindValidation:
		return "validation_error"
	case KindNotFound:
		return "not_found"
	case KindMalformedRow:
		return "malformed_row"
	default:
		return "unknown"
	}
}

// KindOf 将错误归类
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrDeliveryNotFound):
		return KindNotFound
	case errors.Is(err, ErrMalformedRow), errors.Is(err, ErrHeaderMismatch):
		return KindMalformedRow
	case errors.Is(err, ErrTableIO):
		return KindIO
	default:
		return KindUnknown
	}
}

// ValidationField 返回校验失败的字段名
func ValidationField(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Field
	}
	return ""
}

func wrapTableIO(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrTableIO, op, err)
}

package erroring

import (
	"errors"
	"strings"
)

// Error is a chain of items, the first one holding the root cause and every
// later one the context added while the error travelled up.
type Error struct {
	Items []*ErrorItem `json:"items,omitempty"`
}

type ErrorItem struct {
	Type    *DimensionType `json:"type,omitempty"`
	Trace   *Trace         `json:"trace,omitempty"`
	Message *string        `json:"message,omitempty"`
	Error   error          `json:"error,omitempty"`
}

func NewError(dimensionType DimensionType, message string, err error) *Error {
	trace := NewTrace(1)
	item := &ErrorItem{
		Type:    &dimensionType,
		Trace:   trace,
		Message: &message,
		Error:   nil,
	}

	var e *Error
	if err != nil && errors.As(err, &e) {
		e.Items = append(e.Items, item)
		return e
	}

	item.Error = err
	return &Error{
		Items: []*ErrorItem{item},
	}
}

// Error renders the messages from the outermost item inwards followed by the root cause.
func (r *Error) Error() string {
	parts := make([]string, 0, len(r.Items)+1)
	for i := len(r.Items) - 1; i >= 0; i-- {
		if message := r.Items[i].Message; message != nil && *message != "" {
			parts = append(parts, *message)
		}
	}
	if cause := r.Unwrap(); cause != nil {
		parts = append(parts, cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (r *Error) Unwrap() error {
	if len(r.Items) == 0 {
		return nil
	}
	return r.Items[0].Error
}

// Type is the dimension type of the item that started the chain.
func (r *Error) Type() DimensionType {
	if len(r.Items) == 0 || r.Items[0].Type == nil {
		return DimensionTypeOperation
	}
	return *r.Items[0].Type
}

// Message is the message of the item that started the chain.
func (r *Error) Message() string {
	if len(r.Items) == 0 || r.Items[0].Message == nil {
		return ""
	}
	return *r.Items[0].Message
}

// TypeOf returns the dimension type carried by err, or DimensionTypeOperation
// when err is not a chain.
func TypeOf(err error) DimensionType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type()
	}
	return DimensionTypeOperation
}

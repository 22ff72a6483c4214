package errors

import (
	"errors"
	"fmt"
	"strings"
)

func New(text string) error {
	return errors.New(text)
}

func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// MultiError aggregates multiple errors into one message, one "- " item per error.
type MultiError struct {
	prefix string
	errors []string
}

func NewMultiError() *MultiError {
	return &MultiError{}
}

func Wrap(prefix string, err error) *MultiError {
	e := &MultiError{}
	e.SetPrefix(prefix + ":")
	e.Add(err)
	return e
}

func (e *MultiError) Len() int {
	return len(e.errors)
}

func (e *MultiError) SetPrefix(prefix string) {
	e.prefix = prefix
}

func (e *MultiError) Add(err error) {
	if v, ok := err.(*MultiError); ok { // nolint: errorlint
		for _, item := range v.Errors() {
			e.doAdd(item)
		}
	} else {
		e.doAdd(err.Error())
	}
}

func (e *MultiError) AddRaw(err string) {
	e.errors = append(e.errors, err)
}

func (e *MultiError) Errors() []string {
	return e.errors
}

// ErrorOrNil returns nil if no error was added.
func (e *MultiError) ErrorOrNil() error {
	if e.Len() == 0 {
		return nil
	}
	return e
}

func (e *MultiError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	msg := strings.Join(e.errors, "\n")
	if e.prefix != "" {
		return e.prefix + "\n" + msg
	}

	return msg
}

func (e *MultiError) doAdd(err string) {
	err = strings.TrimLeft(err, "- ")
	e.errors = append(e.errors, fmt.Sprintf("- %s", err))
}

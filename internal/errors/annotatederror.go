package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// AnnotatedError includes more context than a plain error that is useful for troubleshooting.
type AnnotatedError struct {
	// msg describes what was being attempted when the error happened.
	msg string
	// pc is the program counter for the location of the error provided by runtime.Callers.
	pc uintptr
	// attrs are slog attributes that are added to the log event to provide more context for the error.
	attrs []slog.Attr
	// err is the wrapped error, nil for errors created with New.
	err error
}

func annotate(skip int, err error, msg string, attrs []slog.Attr) AnnotatedError {
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	return AnnotatedError{
		msg:   msg,
		pc:    pcs[0],
		attrs: attrs,
		err:   err,
	}
}

// New creates a new AnnotatedError with the given message and attributes.
func New(msg string, attrs ...slog.Attr) error {
	// Skip runtime.Callers, annotate and this function.
	return annotate(3, nil, msg, attrs) //nolint:mnd // see above.
}

// NewSentinel creates a plain error without other context that can be used as sentinel error that can be detected
// with errors.Is.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap adds a message, the caller location and attributes to err. Wrapping a nil error returns nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return annotate(3, err, msg, attrs) //nolint:mnd // skip runtime.Callers, annotate and Wrap.
}

// Error implements error interface.
func (err AnnotatedError) Error() string {
	if err.err == nil {
		return err.msg
	}
	return fmt.Sprintf("%s: %s", err.msg, err.err.Error())
}

// Unwrap makes the wrapped error reachable for errors.Is and errors.As.
func (err AnnotatedError) Unwrap() error {
	return err.err
}

// LogValue formats the error for useful logging.
func (err AnnotatedError) LogValue() slog.Value {
	// Retrieve the source location of the error so that developers can locate it faster.
	frames := runtime.CallersFrames([]uintptr{err.pc})
	source, _ := frames.Next()
	attrs := []slog.Attr{
		slog.String("message", err.Error()),
		slog.String("source", fmt.Sprintf("%s:%d", source.File, source.Line)),
	}
	attrs = append(attrs, err.attrs...)

	// Collect the attributes of the wrapped annotated errors, innermost last.
	var inner AnnotatedError
	if errors.As(err.err, &inner) {
		attrs = append(attrs, inner.collectAttrs()...)
	}

	return slog.GroupValue(attrs...)
}

func (err AnnotatedError) collectAttrs() []slog.Attr {
	attrs := append([]slog.Attr(nil), err.attrs...)
	var inner AnnotatedError
	if errors.As(err.err, &inner) {
		attrs = append(attrs, inner.collectAttrs()...)
	}
	return attrs
}

// SlogError returns a slog attribute under the key "error" so that annotated errors get logged with their context.
func SlogError(err error) slog.Attr {
	var annotated AnnotatedError
	if errors.As(err, &annotated) {
		// Keep the complete message chain even if the outermost error is a plain one.
		group := annotated.LogValue().Group()
		group[0] = slog.String("message", err.Error())
		return slog.Attr{Key: "error", Value: slog.GroupValue(group...)}
	}
	return slog.String("error", err.Error())
}

// As exposes stdlib errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is exposes stdlib errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap exposes stdlib errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

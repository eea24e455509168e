package errors

import (
	"fmt"
	"reflect"
)

const (
	// SuccessCode signals to the host that processing was successful and
	// no error is returned.
	SuccessCode = 0

	// All unclassified errors that do not provide an error code are
	// clubbed under an internal error code and a generic message instead
	// of a detailed error string.
	internalCode uint32 = 1
	internalLog         = "internal error"
)

// HostInfo returns the error information as consumed by the host execution
// environment. Returned code and log message should be used as the program
// result. Any error that does not provide Code information is categorized
// as an error with code 1.
//
// When not running in a debug mode all messages of errors that do not
// provide Code information are replaced with generic "internal error".
func HostInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessCode, ""
	}

	// Only non-internal errors information can be exposed. Any error
	// that does not explicitly expose its state by providing an error
	// code must be silenced.
	if code := errCode(err); code != internalCode {
		if debug {
			// Try to trigger full information formatting. This
			// might produce a stacktrace.
			return code, fmt.Sprintf("%+v", err)
		}
		return code, err.Error()
	}

	if debug {
		return internalCode, fmt.Sprintf("%+v", err)
	}

	// For internal errors hide the original error message and return
	// generic data.
	return internalCode, internalLog
}

type coder interface {
	Code() uint32
}

// errCode tests if given error contains an error code and returns the value
// of it if available. This function is testing for the causer interface as
// well and unwraps the error.
func errCode(err error) uint32 {
	for {
		if c, ok := err.(coder); ok {
			return c.Code()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalCode
		}
	}
}

// errIsNil returns true if value represented by the given error is nil.
//
// Most of the time a simple == check is enough. There is a very narrow case
// when user provides an error as a struct pointer that is nil but the
// interface value is not.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}

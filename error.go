package driverget

import "fmt"

const (
	// ErrBinaryNotFound error code
	ErrBinaryNotFound = "binary does not exist"
	// ErrRunBinary error code
	ErrRunBinary = "cannot run binary"
	// ErrRequest error code
	ErrRequest = "request failed"
	// ErrParseVersion error code
	ErrParseVersion = "cannot parse version"
	// ErrDownload error code
	ErrDownload = "cannot download archive"
	// ErrExtract error code
	ErrExtract = "cannot extract archive"
)

// Error ...
type Error struct {
	Err     error
	Code    string
	Details interface{}
}

// Error ...
func (e *Error) Error() string {
	msg := fmt.Sprintf("[driverget] %s: %v", e.Code, e.Details)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap ...
func (e *Error) Unwrap() error {
	return e.Err
}

// IsError type matches
func IsError(err error, code string) bool {
	if err == nil {
		return false
	}

	e, ok := err.(*Error)
	if !ok {
		return false
	}

	return e.Code == code
}

package api

import (
	"errors"
	"fmt"
)

// Error is the normalized failure descriptor for transport operations.
// Network failures carry StatusCode 0; server rejections carry the HTTP
// status; malformed success bodies carry the status with a generic message.
type Error struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsNetwork reports whether the request never produced an HTTP response.
func (e *Error) IsNetwork() bool {
	return e.StatusCode == 0
}

// AsError unwraps err into the normalized descriptor, when it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

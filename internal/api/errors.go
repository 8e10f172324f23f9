package api

import (
	"errors"
	"fmt"
)

// StatusError is an application failure: the server answered with an error
// status. It must propagate to the caller instead of triggering the local
// fallback, so real validation and authorization failures stay visible.
type StatusError struct {
	Status int
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Status)
}

// ConnError is a connectivity failure: the request never produced a server
// response (dial failure, DNS failure, timeout, cancelled context).
type ConnError struct {
	Err error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("connectivity failure: %v", e.Err)
}

func (e *ConnError) Unwrap() error {
	return e.Err
}

// IsConnectivity reports whether err is a connectivity failure eligible for
// mirror fallback.
func IsConnectivity(err error) bool {
	var ce *ConnError
	return errors.As(err, &ce)
}

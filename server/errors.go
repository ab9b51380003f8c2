package server

import "errors"

// ErrServiceRequired is returned when a service is not provided.
var ErrServiceRequired = errors.New("service required")

package server

import "errors"

// ErrNotFound is returned by a PageFunc when the request does not name a
// page. Handler answers it with 404.
var ErrNotFound = errors.New("server: page not found")

package http

import "errors"

var errNotConfigured = errors.New("content source not configured")

package middleware

import "errors"

var (
	errMissingAuthHeader   = errors.New("missing Authorization header")
	errMissingBearerPrefix = errors.New("missing Bearer header prefix")
)

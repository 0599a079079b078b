package client

import (
	"context"
	"os"
)

// TokenSource supplies the bearer token attached to every mutating call.
// It is consulted once per operation so token refresh and expiry stay the
// identity provider's problem.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns the same token on every call.
type StaticTokenSource string

func (s StaticTokenSource) Token(context.Context) (string, error) {
	return string(s), nil
}

// EnvTokenSource reads the token from an environment variable on every call.
type EnvTokenSource string

func (e EnvTokenSource) Token(context.Context) (string, error) {
	return os.Getenv(string(e)), nil
}

// TokenFunc adapts a function to a TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

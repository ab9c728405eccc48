package transport

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// TokenSource is the secret-fetch collaborator: it returns the access token
// attached to install-mode submissions.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func(ctx context.Context) (string, error)

// Token calls the wrapped function.
func (f TokenSourceFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticToken returns a TokenSource that always yields the given token.
func StaticToken(token string) TokenSource {
	return TokenSourceFunc(func(context.Context) (string, error) {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			return "", fmt.Errorf("transport: static token is empty")
		}
		return trimmed, nil
	})
}

// EnvToken returns a TokenSource reading the token from an environment
// variable at fetch time.
func EnvToken(name string) TokenSource {
	return TokenSourceFunc(func(context.Context) (string, error) {
		token := strings.TrimSpace(os.Getenv(name))
		if token == "" {
			return "", fmt.Errorf("transport: environment variable %s is empty", name)
		}
		return token, nil
	})
}

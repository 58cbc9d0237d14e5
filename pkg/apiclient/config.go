package apiclient

import (
	"context"
	"fmt"
	"time"
)

// Resolver produces a credential value per request. It receives the built
// request so it can pick different credentials per operation.
type Resolver func(ctx context.Context, req RequestOptions) (string, error)

// Static wraps a fixed value. An empty value resolves to nothing.
func Static(value string) Resolver {
	if value == "" {
		return nil
	}
	return func(context.Context, RequestOptions) (string, error) {
		return value, nil
	}
}

// Config carries the connection settings shared by every call.
type Config struct {
	BaseURL         string `validate:"required,url"`
	Version         string
	WithCredentials bool
	Token           Resolver
	Username        Resolver
	Password        Resolver
	Headers         map[string]string
	Timeout         time.Duration `validate:"gte=0"`
}

// Validate checks the configuration fields
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid client config: %w", err)
	}
	return nil
}

func resolve(ctx context.Context, r Resolver, req RequestOptions) (string, error) {
	if r == nil {
		return "", nil
	}
	return r(ctx, req)
}

package apiclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// authorize sets the Authorization header from the configured resolvers.
// A token wins over basic credentials.
func (c *Client) authorize(ctx context.Context, httpReq *http.Request, req RequestOptions) error {
	token, err := resolve(ctx, c.cfg.Token, req)
	if err != nil {
		return fmt.Errorf("resolving token: %w", err)
	}
	if token != "" {
		c.checkExpiry(ctx, token)
		httpReq.Header.Set("Authorization", "Bearer "+token)
		return nil
	}

	username, err := resolve(ctx, c.cfg.Username, req)
	if err != nil {
		return fmt.Errorf("resolving username: %w", err)
	}
	password, err := resolve(ctx, c.cfg.Password, req)
	if err != nil {
		return fmt.Errorf("resolving password: %w", err)
	}
	if username != "" || password != "" {
		creds := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
		httpReq.Header.Set("Authorization", "Basic "+creds)
	}
	return nil
}

// checkExpiry warns about JWT bearer tokens already past their exp claim.
// Tokens that are not JWTs are passed through untouched.
func (c *Client) checkExpiry(ctx context.Context, token string) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(c.now()) {
		c.logger.LogTokenExpired(ctx, claims.ExpiresAt.Time)
	}
}

// TokenExpiry returns the exp claim of a JWT, or false when it has none.
func TokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Package tenant carries the resolved tenant id through request
// contexts. The HTTP middleware resolves it once per request, from the
// token claims or the configured demo tenant, and every service reads
// it from here.
package tenant

import (
	"context"
	"errors"
)

type ctxKey struct{}

var ErrMissingTenant = errors.New("no tenant in context")

func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, tenantID)
}

func FromContext(ctx context.Context) (string, error) {
	tenantID, ok := ctx.Value(ctxKey{}).(string)
	if !ok || tenantID == "" {
		return "", ErrMissingTenant
	}
	return tenantID, nil
}

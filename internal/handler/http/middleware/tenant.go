package middleware

import (
	"net/http"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
	"github.com/go-chi/jwtauth/v5"
)

// ResolveTenant puts the tenant id from the token claims into the
// request context and binds it on the database session. Requests
// without a tenant claim fall back to defaultTenantID, which covers
// the demo deployment where no sign-in exists.
func ResolveTenant(client *database.Client, defaultTenantID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			tenantID := defaultTenantID

			if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
				if claimed, ok := claims["tenant_id"].(string); ok && claimed != "" {
					tenantID = claimed
				}
			}

			ctx := tenant.WithTenant(r.Context(), tenantID)
			client.SetCurrentTenant(ctx, tenantID)

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

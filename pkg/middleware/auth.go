package middleware

import (
	"net/http"
	"strings"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer access token and puts the resolved
// principal (customer id + role) into the request context.
func Auth(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseAccessToken(jwtSecret, parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetPrincipalContext(r.Context(), claims.CustomerID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires an authenticated principal with the admin role.
// Must run after Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			customerID, ok := utils.GetCustomerIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || role != string(entity.RoleAdmin) {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("customer_id", customerID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Copyright (c) 2026 Animura. All rights reserved.
// Author: dev@animura.app

package middleware

import (
	"net/http"
	"strings"

	"github.com/animura/animura/internal/platform/constants"
	"github.com/animura/animura/internal/platform/ctxutil"
	"github.com/animura/animura/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify service tokens.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing mocks to be injected during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.ServiceClaims, error)
}

// Authenticate parses an optional Bearer token and, when valid, attaches the
// service claims to the request context.
//
// Requests without a token proceed unauthenticated; role enforcement happens
// per-route via [RequireRole]. A malformed or expired token is rejected
// immediately rather than silently downgraded to anonymous.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			header := request.Header.Get(constants.HeaderAuthorization)
			if header == "" {
				next.ServeHTTP(writer, request)
				return
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Malformed authorization header")
				return
			}

			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
				return
			}

			ctx := ctxutil.WithService(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole guards a route group behind a minimum service role.
//
// It must be mounted after [Authenticate] in the chain.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			claims := ctxutil.GetService(request.Context())
			if claims == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			if !sec.RoleAtLeast(claims.Role, role) {
				writeError(writer, http.StatusForbidden, "FORBIDDEN", "Insufficient privileges")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

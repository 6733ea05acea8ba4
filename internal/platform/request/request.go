// Copyright (c) 2026 Animura. All rights reserved.
// Author: dev@animura.app

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/animura/animura/internal/platform/apperr"
	"github.com/animura/animura/internal/platform/ctxutil"
	"github.com/animura/animura/internal/platform/sec"
	"github.com/animura/animura/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns validate.ErrInvalidJSON if decoding fails.
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Claims extracts the authenticated service claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.ServiceClaims {
	return ctxutil.GetService(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the claims.

Returns apperr.Unauthorized if the request carries no valid service token.
*/
func RequiredClaims(request *http.Request) (*sec.ServiceClaims, error) {
	claims := ctxutil.GetService(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

// Copyright (c) 2026 Animura. All rights reserved.
// Author: dev@animura.app

// Package sec provides cryptographic token management for service-to-service
// authentication.
//
// # Architecture
//
// Animura has no end-user accounts: the API is consumed by the scraping and
// posting collaborators plus operators. Callers authenticate with short-lived
// HS256 service tokens whose role claim gates mutating endpoints (catalog
// refresh, feed writes). This package isolates the security-sensitive signing
// code from the domain logic and is injected via the middleware's
// TokenVerifier interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceClaims is the payload embedded inside a service JWT.
//
// Embedding the caller name and role directly in the token lets the
// middleware authorize requests without any storage lookup.
type ServiceClaims struct {
	jwt.RegisteredClaims

	// Service is the logical caller name (e.g. "scraper", "poster", "ops").
	Service string `json:"svc"`
	// Role gates access to mutating endpoints.
	Role string `json:"rol"`
}

// TokenService signs and verifies HS256 service tokens.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a TokenService from a shared signing secret.
func NewTokenService(secret string, issuer string) (*TokenService, error) {
	if len(secret) < 32 {
		return nil, errors.New("sec: signing secret must be at least 32 bytes")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// GenerateToken creates a new signed service token.
func (service *TokenService) GenerateToken(serviceName, role string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := ServiceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   serviceName,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		Service: serviceName,
		Role:    role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string and returns
// its claims.
func (service *TokenService) VerifyToken(tokenString string) (*ServiceClaims, error) {
	claims := &ServiceClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithIssuer(service.issuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("sec: token verification failed: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("sec: token is invalid")
	}

	return claims, nil
}

// Copyright (c) 2026 Animura. All rights reserved.
// Author: dev@animura.app

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Tagging: fallback labels and hashtag rendering defaults.

Using this package keeps magic strings and magic numbers out of the
business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "animura-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	// HeaderXRequestID carries the correlation ID for log tracing.
	HeaderXRequestID = "X-Request-ID"

	// HeaderOrigin is inspected by the CORS middleware.
	HeaderOrigin = "Origin"

	// HeaderAuthorization carries the bearer service token.
	HeaderAuthorization = "Authorization"
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in service JWTs.
	AuthIssuer = "animura.app"

	// ServiceTokenTTL is the default lifetime of an issued service token.
	ServiceTokenTTL = 24 * time.Hour
)

// # Tagging

const (
	// FallbackVisibleTag is published when no catalog entity could be
	// resolved from a caption.
	FallbackVisibleTag = "AnimeArt"

	// DefaultTagSuffix is appended to every rendered hashtag so reposts
	// stay attributable to the channel.
	DefaultTagSuffix = "@animura.arts"
)

// # Database Schemas

const (
	SchemaRef  = "ref"
	SchemaFeed = "feed"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixResolved caches resolved tag sets keyed by caption digest.
	RedisPrefixResolved = "tags:resolved:"
)

// # Cache TTLs

const (
	// ResolvedTagsTTL bounds staleness of cached resolutions against
	// catalog snapshot refreshes.
	ResolvedTagsTTL = 6 * time.Hour
)

// Copyright (c) 2026 Animura. All rights reserved.
// Author: dev@animura.app

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// # Why UUIDv7?
//
// Feed posts are ingested in arrival order and keyed by UUIDv7; being
// time-sortable, the keys stay clustered-index friendly in PostgreSQL and
// avoid the index fragmentation common with random UUIDv4.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable; entropy failure is
// an unrecoverable system-level error.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

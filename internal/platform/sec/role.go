// Copyright (c) 2026 Animura. All rights reserved.
// Author: dev@animura.app

package sec

// Service roles, ordered by privilege.
const (
	// RoleAdmin may refresh catalog snapshots and mutate feed records.
	RoleAdmin = "admin"

	// RoleTagger may run tag resolution and persist results, but cannot
	// touch the reference catalog.
	RoleTagger = "tagger"

	// RoleReader has read-only access.
	RoleReader = "reader"
)

// roleRank maps each role to its privilege level for comparisons.
var roleRank = map[string]int{
	RoleReader: 1,
	RoleTagger: 2,
	RoleAdmin:  3,
}

// RoleAtLeast reports whether have grants at least the privileges of want.
// Unknown roles never satisfy any requirement.
func RoleAtLeast(have, want string) bool {
	haveRank, ok := roleRank[have]
	if !ok {
		return false
	}
	wantRank, ok := roleRank[want]
	if !ok {
		return false
	}
	return haveRank >= wantRank
}

// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Operator Roles

// Role represents the authorization level carried by an operator token.
type Role string

const (
	// Full control, including catalog reloads
	RoleAdmin Role = "admin"

	// Can inspect catalog state
	RoleOperator Role = "operator"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

func (r Role) level() int {
	switch r {
	case RoleAdmin:
		return 20
	case RoleOperator:
		return 10
	default:
		return 0
	}
}

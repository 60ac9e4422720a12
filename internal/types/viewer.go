package types

import "strings"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole maps anything other than "admin" to RoleUser.
func ParseRole(s string) Role {
	if Role(strings.ToLower(strings.TrimSpace(s))) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Viewer describes who is looking at the data. It is supplied by the client
// and is never treated as proof of identity.
type Viewer struct {
	Role     Role   `json:"role"`
	UserName string `json:"userName"`
}

type Permissions struct {
	CanManageProjects    bool `json:"canManageProjects"`
	CanManageCoworkers   bool `json:"canManageCoworkers"`
	CanDeleteCoworkers   bool `json:"canDeleteCoworkers"`
	CanManageTasks       bool `json:"canManageTasks"`
	CanManageAssignments bool `json:"canManageAssignments"`
}

func (v Viewer) Permissions() Permissions {
	admin := v.Role == RoleAdmin
	return Permissions{
		CanManageProjects:    admin,
		CanManageCoworkers:   admin,
		CanDeleteCoworkers:   admin,
		CanManageTasks:       true,
		CanManageAssignments: true,
	}
}

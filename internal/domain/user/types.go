package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleGuest     Role = "guest"
	RoleHost      Role = "host"
	RoleModerator Role = "moderator"
	RoleStaff     Role = "staff"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleHost, RoleModerator, RoleStaff:
		return true
	default:
		return false
	}
}
